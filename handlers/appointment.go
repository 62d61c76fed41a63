package handlers

import (
	"net/http"

	"clinibook/models"
	appointmentSvc "clinibook/services/appointment"
	"clinibook/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentSvc is wired by main before the routes are registered.
var AppointmentSvc appointmentSvc.AppointmentService

// GetAppointment returns one appointment visible to the caller.
func GetAppointment(c *gin.Context) {
	appt, err := AppointmentSvc.Get(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListDoctorAppointments lists a doctor's appointments.
func ListDoctorAppointments(c *gin.Context) {
	appts, err := AppointmentSvc.ListForDoctor(c.Request.Context(), actorFrom(c), c.Param("doctorID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListPatientAppointments lists a patient's appointments.
func ListPatientAppointments(c *gin.Context) {
	appts, err := AppointmentSvc.ListForPatient(c.Request.Context(), actorFrom(c), c.Param("patientID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// AcceptAppointment moves a pending appointment to Accepted.
func AcceptAppointment(c *gin.Context) {
	appt, err := AppointmentSvc.Accept(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RejectAppointment moves a pending appointment to Rejected.
func RejectAppointment(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	appt, err := AppointmentSvc.Reject(c.Request.Context(), actorFrom(c), c.Param("id"), input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointment cancels a pending or accepted appointment.
func CancelAppointment(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	appt, err := AppointmentSvc.Cancel(c.Request.Context(), actorFrom(c), c.Param("id"), input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// FinalizeAppointment closes an accepted appointment with the doctor's review.
func FinalizeAppointment(c *gin.Context) {
	var input struct {
		Review models.Review `json:"review"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	appt, err := AppointmentSvc.Finalize(c.Request.Context(), actorFrom(c), c.Param("id"), input.Review)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RateAppointment records the patient's rating for a finalized visit.
func RateAppointment(c *gin.Context) {
	var input struct {
		Rating int `json:"rating"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	appt, err := AppointmentSvc.Rate(c.Request.Context(), actorFrom(c), c.Param("id"), input.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// SubmitAppointmentSurvey records the patient's post-visit survey.
func SubmitAppointmentSurvey(c *gin.Context) {
	var input struct {
		Survey models.Survey `json:"survey"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	appt, err := AppointmentSvc.SubmitSurvey(c.Request.Context(), actorFrom(c), c.Param("id"), input.Survey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
