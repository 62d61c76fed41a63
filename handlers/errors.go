package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "clinibook/database/repository/appointment"
	"clinibook/middleware"
	"clinibook/models"
	appointmentSvc "clinibook/services/appointment"
	"clinibook/services/booking"
	"clinibook/services/scheduling"
	"clinibook/utils"

	"github.com/gin-gonic/gin"
)

// actorFrom reads the identity that ActorMiddleware stored on the context.
func actorFrom(c *gin.Context) appointmentSvc.Actor {
	return appointmentSvc.Actor{
		ID:   c.GetString(middleware.ActorIDKey),
		Role: c.MustGet(middleware.ActorRoleKey).(models.Role),
	}
}

// respondError maps service errors to HTTP statuses. Unknown errors become a
// 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var (
		invalidTime   *models.InvalidTimeFormatError
		invalidWindow *scheduling.InvalidWindowError
		conflict      *scheduling.AvailabilityConflictError
		incomplete    *booking.IncompleteBookingError
		transition    *appointmentSvc.InvalidTransitionError
		input         *appointmentSvc.InvalidInputError
	)

	switch {
	case errors.As(err, &invalidTime), errors.As(err, &invalidWindow),
		errors.As(err, &incomplete), errors.As(err, &input):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, "Availability conflict", err.Error())
	case errors.As(err, &transition),
		errors.Is(err, booking.ErrDuplicateBookingSameDay),
		errors.Is(err, booking.ErrSlotNoLongerAvailable):
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusGone, "Session expired", err.Error())
	case errors.Is(err, booking.ErrNotFound), errors.Is(err, appointmentRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, appointmentSvc.ErrNotAllowed):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
