package booking

import (
	"context"
	"time"

	appointmentRepo "clinibook/database/repository/appointment"
	userRepo "clinibook/database/repository/user"
	"clinibook/models"
	"clinibook/services/scheduling"
)

// BookingService drives the step-by-step booking flow. Each step loads the
// session, applies one selection, recomputes the choices the next step needs
// and saves the session back. Nothing touches the appointment store until
// Confirm.
type BookingService interface {
	// StartSession opens a session for a patient and returns it with the
	// bookable specialties filled in.
	StartSession(ctx context.Context, patientID string) (*models.BookingSession, error)
	// Session returns an in-progress session by ID.
	Session(ctx context.Context, sessionID string) (*models.BookingSession, error)
	// SelectSpecialty fixes the specialty and loads the matching doctors.
	SelectSpecialty(ctx context.Context, sessionID, specialty string) (*models.BookingSession, error)
	// SelectDoctor fixes the doctor and computes the dates inside the booking
	// horizon on which the doctor has at least one open slot.
	SelectDoctor(ctx context.Context, sessionID, doctorID string) (*models.BookingSession, error)
	// SelectDate fixes the date and loads the open slots for it.
	SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error)
	// SelectSlot fixes the slot by its label.
	SelectSlot(ctx context.Context, sessionID, slotLabel string) (*models.BookingSession, error)
	// Confirm atomically books the selected slot and discards the session.
	Confirm(ctx context.Context, sessionID string) (*models.Appointment, error)
	// CancelSession discards an in-progress session without booking.
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Users        userRepo.UserRepository
	Availability scheduling.AvailabilityService
	Appointments appointmentRepo.AppointmentRepository
	Sessions     SessionStore

	// HorizonDays bounds how far ahead a patient may book, counted from today.
	HorizonDays int
	// RejectedSlotsAreFree mirrors the availability service's setting so both
	// compute the same occupied set at confirmation time.
	RejectedSlotsAreFree bool

	// Now is the clock; tests override it.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
