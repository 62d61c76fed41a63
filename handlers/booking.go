package handlers

import (
	"net/http"

	"clinibook/models"
	"clinibook/services/booking"
	"clinibook/utils"

	"github.com/gin-gonic/gin"
)

// BookingSvc is wired by main before the routes are registered.
var BookingSvc booking.BookingService

// StartBookingSession opens a booking session. Patients book for themselves;
// admins may book on a patient's behalf by naming the patient.
func StartBookingSession(c *gin.Context) {
	actor := actorFrom(c)

	var input struct {
		PatientID string `json:"patientId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	patientID := actor.ID
	switch actor.Role {
	case models.RolePatient:
	case models.RoleAdmin:
		if input.PatientID == "" {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", "'patientId' is required when an admin books on behalf of a patient")
			return
		}
		patientID = input.PatientID
	default:
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "only patients and admins may start a booking")
		return
	}

	session, err := BookingSvc.StartSession(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ownsBookingSession verifies the caller is the session's patient. Admins
// pass; anyone else holding a leaked session ID is refused.
func ownsBookingSession(c *gin.Context, sessionID string) bool {
	actor := actorFrom(c)
	if actor.Role == models.RoleAdmin {
		return true
	}
	session, err := BookingSvc.Session(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return false
	}
	if session.PatientID != actor.ID {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "the booking session belongs to another patient")
		return false
	}
	return true
}

// UpdateBookingSession applies the next selection to the session. Exactly one
// of the fields is expected per call; when several are present they are
// applied in flow order.
func UpdateBookingSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if !ownsBookingSession(c, sessionID) {
		return
	}

	var input struct {
		Specialty string `json:"specialty"`
		DoctorID  string `json:"doctorId"`
		Date      string `json:"date"`
		SlotLabel string `json:"slotLabel"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	var session *models.BookingSession
	var err error
	applied := false

	if input.Specialty != "" {
		if session, err = BookingSvc.SelectSpecialty(ctx, sessionID, input.Specialty); err != nil {
			respondError(c, err)
			return
		}
		applied = true
	}
	if input.DoctorID != "" {
		if session, err = BookingSvc.SelectDoctor(ctx, sessionID, input.DoctorID); err != nil {
			respondError(c, err)
			return
		}
		applied = true
	}
	if input.Date != "" {
		if session, err = BookingSvc.SelectDate(ctx, sessionID, input.Date); err != nil {
			respondError(c, err)
			return
		}
		applied = true
	}
	if input.SlotLabel != "" {
		if session, err = BookingSvc.SelectSlot(ctx, sessionID, input.SlotLabel); err != nil {
			respondError(c, err)
			return
		}
		applied = true
	}

	if !applied {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "provide one of 'specialty', 'doctorId', 'date' or 'slotLabel'")
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking books the selected slot and ends the session.
func ConfirmBooking(c *gin.Context) {
	if !ownsBookingSession(c, c.Param("sessionID")) {
		return
	}
	appt, err := BookingSvc.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelBookingSession discards an in-progress session.
func CancelBookingSession(c *gin.Context) {
	if !ownsBookingSession(c, c.Param("sessionID")) {
		return
	}
	if err := BookingSvc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
