package appointment

import (
	"context"
	"time"

	appointmentRepo "clinibook/database/repository/appointment"
	"clinibook/models"
)

// Actor identifies who is performing a lifecycle operation. It is taken from
// the gateway headers, never from the request body.
type Actor struct {
	ID   string
	Role models.Role
}

// AppointmentService manages the lifecycle of booked appointments.
type AppointmentService interface {
	// Get retrieves one appointment, checking the actor may see it.
	Get(ctx context.Context, actor Actor, id string) (*models.Appointment, error)
	// ListForDoctor returns a doctor's appointments, newest first.
	ListForDoctor(ctx context.Context, actor Actor, doctorID string) ([]models.Appointment, error)
	// ListForPatient returns a patient's appointments, newest first.
	ListForPatient(ctx context.Context, actor Actor, patientID string) ([]models.Appointment, error)
	// Accept moves a Pending appointment to Accepted.
	Accept(ctx context.Context, actor Actor, id string) (*models.Appointment, error)
	// Reject moves a Pending appointment to Rejected with a mandatory reason.
	Reject(ctx context.Context, actor Actor, id, reason string) (*models.Appointment, error)
	// Cancel moves a Pending or Accepted appointment to Cancelled with a
	// mandatory reason, freeing the slot.
	Cancel(ctx context.Context, actor Actor, id, reason string) (*models.Appointment, error)
	// Finalize moves an Accepted appointment to Finalized, attaching the
	// doctor's review.
	Finalize(ctx context.Context, actor Actor, id string, review models.Review) (*models.Appointment, error)
	// Rate attaches the patient's 1..10 rating to a Finalized appointment.
	Rate(ctx context.Context, actor Actor, id string, rating int) (*models.Appointment, error)
	// SubmitSurvey attaches the patient's survey to a Finalized appointment.
	SubmitSurvey(ctx context.Context, actor Actor, id string, survey models.Survey) (*models.Appointment, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Appointments appointmentRepo.AppointmentRepository

	// Now is the clock; tests override it.
	Now func() time.Time
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
