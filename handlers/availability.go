package handlers

import (
	"net/http"

	"clinibook/models"
	"clinibook/services/scheduling"
	"clinibook/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilitySvc is wired by main before the routes are registered.
var AvailabilitySvc scheduling.AvailabilityService

// RegisterAvailability declares or replaces an availability window for a
// doctor. Doctors manage their own; admins may manage anyone's.
func RegisterAvailability(c *gin.Context) {
	actor := actorFrom(c)

	var input struct {
		DoctorID     string `json:"doctorId"`
		Specialty    string `json:"specialty"`
		DateKey      string `json:"dateKey"`
		Start        string `json:"start"`
		End          string `json:"end"`
		SlotDuration int    `json:"slotDuration"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	if actor.Role == models.RoleDoctor {
		input.DoctorID = actor.ID
	} else if actor.Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "only doctors and admins may register availability")
		return
	}

	start, err := models.ParseTimeOfDay(input.Start)
	if err != nil {
		respondError(c, err)
		return
	}
	end, err := models.ParseTimeOfDay(input.End)
	if err != nil {
		respondError(c, err)
		return
	}

	window := models.AvailabilityWindow{
		DoctorID:     input.DoctorID,
		Specialty:    input.Specialty,
		DateKey:      input.DateKey,
		Start:        start,
		End:          end,
		SlotDuration: input.SlotDuration,
	}
	if err := AvailabilitySvc.Register(c.Request.Context(), window); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, window)
}

// GetDoctorAvailability lists everything a doctor has declared.
func GetDoctorAvailability(c *gin.Context) {
	windows, err := AvailabilitySvc.WindowsForDoctor(c.Request.Context(), c.Param("doctorID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": windows})
}

// GetOpenSlots returns the bookable slots for a doctor, specialty and date.
func GetOpenSlots(c *gin.Context) {
	doctorID := c.Param("doctorID")
	specialty := c.Query("specialty")
	date := c.Query("date")
	if specialty == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "'specialty' and 'date' query parameters are required")
		return
	}

	slots, err := AvailabilitySvc.OpenSlots(c.Request.Context(), doctorID, specialty, date)
	if err != nil {
		respondError(c, err)
		return
	}

	labels := make([]string, 0, len(slots))
	for _, s := range slots {
		labels = append(labels, s.Label())
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots, "labels": labels})
}
