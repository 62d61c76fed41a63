package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"clinibook/models"
)

// ErrSlotTaken is returned by CreateIfSlotFree when another appointment
// already occupies the candidate slot.
var ErrSlotTaken = errors.New("slot already taken")

// ErrNotFound is returned when no appointment matches the given ID.
var ErrNotFound = errors.New("appointment not found")

// Filter narrows appointment queries. Zero-valued fields are ignored.
type Filter struct {
	DoctorID      string
	PatientID     string
	Specialty     string
	Date          string
	ExcludeStates []models.AppointmentState
}

// AppointmentRepository defines data access for appointment records.
// Appointments are never deleted; state changes are in-place updates.
type AppointmentRepository interface {
	// Create persists a new appointment record.
	Create(ctx context.Context, appt *models.Appointment) error
	// CreateIfSlotFree persists the appointment only if no other record for
	// the same doctor, date and slot label is in an occupying state. The
	// freeing states (normally just Cancelled) are passed by the caller.
	CreateIfSlotFree(ctx context.Context, appt *models.Appointment, freeingStates []models.AppointmentState) error
	// GetByID retrieves an appointment by its ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// Find returns appointments matching the filter.
	Find(ctx context.Context, filter Filter) ([]models.Appointment, error)
	// UpdateState moves an appointment to a new state, storing the reason
	// under the field matching the target state (reject vs cancel).
	UpdateState(ctx context.Context, id string, state models.AppointmentState, reason string) error
	// SaveReview finalizes the appointment with the doctor's review.
	SaveReview(ctx context.Context, id string, review models.Review, completedAt time.Time) error
	// SaveRating attaches the patient's rating without a state change.
	SaveRating(ctx context.Context, id string, rating int) error
	// SaveSurvey attaches the patient's survey without a state change.
	SaveSurvey(ctx context.Context, id string, survey models.Survey) error
}
