package appointment

import (
	"context"
	"strings"

	appointmentRepo "clinibook/database/repository/appointment"
	"clinibook/models"
	"clinibook/utils"

	"go.uber.org/zap"
)

// transitions is the full state machine. Rejected, Cancelled and Finalized
// are terminal.
var transitions = map[models.AppointmentState][]models.AppointmentState{
	models.StatePending:  {models.StateAccepted, models.StateRejected, models.StateCancelled},
	models.StateAccepted: {models.StateFinalized, models.StateCancelled},
}

func canTransition(from, to models.AppointmentState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *DefaultAppointmentService) Get(ctx context.Context, actor Actor, id string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(actor, appt) {
		return nil, ErrNotAllowed
	}
	return appt, nil
}

func (s *DefaultAppointmentService) ListForDoctor(ctx context.Context, actor Actor, doctorID string) ([]models.Appointment, error) {
	if actor.Role != models.RoleAdmin && !(actor.Role == models.RoleDoctor && actor.ID == doctorID) {
		return nil, ErrNotAllowed
	}
	return s.Appointments.Find(ctx, appointmentRepo.Filter{DoctorID: doctorID})
}

func (s *DefaultAppointmentService) ListForPatient(ctx context.Context, actor Actor, patientID string) ([]models.Appointment, error) {
	if actor.Role != models.RoleAdmin && !(actor.Role == models.RolePatient && actor.ID == patientID) {
		return nil, ErrNotAllowed
	}
	return s.Appointments.Find(ctx, appointmentRepo.Filter{PatientID: patientID})
}

// Accept is the assigned doctor taking the pending request.
func (s *DefaultAppointmentService) Accept(ctx context.Context, actor Actor, id string) (*models.Appointment, error) {
	appt, err := s.loadForTransition(ctx, id, models.StateAccepted)
	if err != nil {
		return nil, err
	}
	if !isAssignedDoctor(actor, appt) {
		return nil, ErrNotAllowed
	}
	return s.applyState(ctx, appt, models.StateAccepted, "")
}

// Reject is the assigned doctor declining the pending request. The reason is
// mandatory and shown to the patient.
func (s *DefaultAppointmentService) Reject(ctx context.Context, actor Actor, id, reason string) (*models.Appointment, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, &InvalidInputError{Reason: "a rejection reason is required"}
	}
	appt, err := s.loadForTransition(ctx, id, models.StateRejected)
	if err != nil {
		return nil, err
	}
	if !isAssignedDoctor(actor, appt) {
		return nil, ErrNotAllowed
	}
	return s.applyState(ctx, appt, models.StateRejected, reason)
}

// Cancel may come from either side, or from an admin, any time before the
// visit is finalized. Cancelling frees the slot for other patients.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, actor Actor, id, reason string) (*models.Appointment, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, &InvalidInputError{Reason: "a cancellation reason is required"}
	}
	appt, err := s.loadForTransition(ctx, id, models.StateCancelled)
	if err != nil {
		return nil, err
	}
	if !isParticipant(actor, appt) && actor.Role != models.RoleAdmin {
		return nil, ErrNotAllowed
	}
	return s.applyState(ctx, appt, models.StateCancelled, reason)
}

// Finalize closes an accepted appointment with the doctor's review. Both the
// write-up and the diagnosis must be present.
func (s *DefaultAppointmentService) Finalize(ctx context.Context, actor Actor, id string, review models.Review) (*models.Appointment, error) {
	if strings.TrimSpace(review.Text) == "" || strings.TrimSpace(review.Diagnosis) == "" {
		return nil, &InvalidInputError{Reason: "review text and diagnosis are required"}
	}
	appt, err := s.loadForTransition(ctx, id, models.StateFinalized)
	if err != nil {
		return nil, err
	}
	if !isAssignedDoctor(actor, appt) {
		return nil, ErrNotAllowed
	}

	completedAt := s.now()
	if err := s.Appointments.SaveReview(ctx, id, review, completedAt); err != nil {
		return nil, err
	}

	appt.State = models.StateFinalized
	appt.Review = &review
	appt.CompletedAt = &completedAt
	s.logTransition(appt)
	return appt, nil
}

// Rate records the patient's 1..10 score for a finalized visit.
func (s *DefaultAppointmentService) Rate(ctx context.Context, actor Actor, id string, rating int) (*models.Appointment, error) {
	if rating < 1 || rating > 10 {
		return nil, &InvalidInputError{Reason: "rating must be between 1 and 10"}
	}
	appt, err := s.loadFinalizedForPatient(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.Appointments.SaveRating(ctx, id, rating); err != nil {
		return nil, err
	}
	appt.Rating = rating
	return appt, nil
}

// SubmitSurvey records the patient's post-visit questionnaire. All three
// answers are required.
func (s *DefaultAppointmentService) SubmitSurvey(ctx context.Context, actor Actor, id string, survey models.Survey) (*models.Appointment, error) {
	if strings.TrimSpace(survey.Recommendation) == "" || strings.TrimSpace(survey.Advice) == "" {
		return nil, &InvalidInputError{Reason: "recommendation and advice are required"}
	}
	if survey.FacilityScore < 1 || survey.FacilityScore > 10 {
		return nil, &InvalidInputError{Reason: "facility score must be between 1 and 10"}
	}
	appt, err := s.loadFinalizedForPatient(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.Appointments.SaveSurvey(ctx, id, survey); err != nil {
		return nil, err
	}
	appt.Survey = &survey
	return appt, nil
}

func (s *DefaultAppointmentService) loadForTransition(ctx context.Context, id string, to models.AppointmentState) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTransition(appt.State, to) {
		return nil, &InvalidTransitionError{From: appt.State, To: to}
	}
	return appt, nil
}

func (s *DefaultAppointmentService) loadFinalizedForPatient(ctx context.Context, actor Actor, id string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RolePatient || actor.ID != appt.PatientID {
		return nil, ErrNotAllowed
	}
	if appt.State != models.StateFinalized {
		return nil, &InvalidInputError{Reason: "feedback can only be submitted on a finalized appointment"}
	}
	return appt, nil
}

func (s *DefaultAppointmentService) applyState(ctx context.Context, appt *models.Appointment, to models.AppointmentState, reason string) (*models.Appointment, error) {
	if err := s.Appointments.UpdateState(ctx, appt.ID, to, reason); err != nil {
		return nil, err
	}
	appt.State = to
	switch to {
	case models.StateRejected:
		appt.RejectReason = reason
	case models.StateCancelled:
		appt.CancelReason = reason
	}
	s.logTransition(appt)
	return appt, nil
}

func (s *DefaultAppointmentService) logTransition(appt *models.Appointment) {
	utils.GetLogger().Info("appointment state changed",
		zap.String("appointmentID", appt.ID),
		zap.String("state", string(appt.State)))
}

func isAssignedDoctor(actor Actor, appt *models.Appointment) bool {
	return actor.Role == models.RoleDoctor && actor.ID == appt.DoctorID
}

func isParticipant(actor Actor, appt *models.Appointment) bool {
	switch actor.Role {
	case models.RoleDoctor:
		return actor.ID == appt.DoctorID
	case models.RolePatient:
		return actor.ID == appt.PatientID
	default:
		return false
	}
}

func canView(actor Actor, appt *models.Appointment) bool {
	return actor.Role == models.RoleAdmin || isParticipant(actor, appt)
}
