package booking

import (
	"context"
	"fmt"

	appointmentRepo "clinibook/database/repository/appointment"
	"clinibook/models"
	"clinibook/services/scheduling"
	"clinibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a new booking session for the patient, assigns it a
// unique SessionID and stores it with the list of bookable specialties.
func (s *DefaultBookingService) StartSession(ctx context.Context, patientID string) (*models.BookingSession, error) {
	patient, err := s.Users.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient: %w", err)
	}
	if patient == nil {
		return nil, ErrNotFound
	}

	specialties, err := s.Users.ListSpecialties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}

	session := models.BookingSession{
		SessionID:   uuid.New().String(),
		PatientID:   patientID,
		Specialties: specialties,
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking session started",
		zap.String("sessionID", session.SessionID),
		zap.String("patientID", patientID))
	return &session, nil
}

// Session returns an in-progress session by ID.
func (s *DefaultBookingService) Session(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// SelectSpecialty records the chosen specialty and loads the doctors who
// practice it. Choosing again later in the flow resets the downstream steps.
func (s *DefaultBookingService) SelectSpecialty(ctx context.Context, sessionID, specialty string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !contains(session.Specialties, specialty) {
		return nil, fmt.Errorf("specialty %q is not offered", specialty)
	}

	doctors, err := s.Users.GetDoctorsBySpecialty(ctx, specialty)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctors for %s: %w", specialty, err)
	}
	summaries := make([]models.DoctorSummary, 0, len(doctors))
	for _, d := range doctors {
		summaries = append(summaries, models.DoctorSummary{ID: d.ID, FullName: d.FullName()})
	}

	session.Specialty = specialty
	session.Doctors = summaries
	session.DoctorID = ""
	session.AvailableDates = nil
	session.Date = ""
	session.CandidateSlots = nil
	session.SelectedSlot = nil

	if err := s.Sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDoctor records the chosen doctor and computes the dates inside the
// booking horizon on which the doctor has at least one open slot for the
// session's specialty.
func (s *DefaultBookingService) SelectDoctor(ctx context.Context, sessionID, doctorID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Specialty == "" {
		return nil, &IncompleteBookingError{Missing: []string{"specialty"}}
	}
	found := false
	for _, d := range session.Doctors {
		if d.ID == doctorID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("doctor %q is not in the offered list", doctorID)
	}

	dates, err := s.availableDates(ctx, doctorID, session.Specialty)
	if err != nil {
		return nil, err
	}

	session.DoctorID = doctorID
	session.AvailableDates = dates
	session.Date = ""
	session.CandidateSlots = nil
	session.SelectedSlot = nil

	if err := s.Sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate records the chosen date and loads the still-open slots for it.
func (s *DefaultBookingService) SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if missing := missingBefore(session, "date"); len(missing) > 0 {
		return nil, &IncompleteBookingError{Missing: missing}
	}
	if !contains(session.AvailableDates, date) {
		return nil, fmt.Errorf("date %q is not available for booking", date)
	}

	slots, err := s.Availability.OpenSlots(ctx, session.DoctorID, session.Specialty, date)
	if err != nil {
		return nil, err
	}

	session.Date = date
	session.CandidateSlots = slots
	session.SelectedSlot = nil

	if err := s.Sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSlot records the chosen slot by its label. The slot must be one of
// the candidates computed at date selection.
func (s *DefaultBookingService) SelectSlot(ctx context.Context, sessionID, slotLabel string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if missing := missingBefore(session, "slot"); len(missing) > 0 {
		return nil, &IncompleteBookingError{Missing: missing}
	}

	var selected *models.Slot
	for i := range session.CandidateSlots {
		if session.CandidateSlots[i].Label() == slotLabel {
			selected = &session.CandidateSlots[i]
			break
		}
	}
	if selected == nil {
		return nil, fmt.Errorf("slot %q is not among the offered slots", slotLabel)
	}

	session.SelectedSlot = selected
	if err := s.Sessions.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm books the selected slot. The duplicate-booking rule and the slot's
// continued availability are both re-checked here; the final free-slot check
// and insert run in one transaction so two patients confirming the same slot
// cannot both win.
func (s *DefaultBookingService) Confirm(ctx context.Context, sessionID string) (*models.Appointment, error) {
	logger := utils.GetLogger()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if missing := missingBefore(session, ""); len(missing) > 0 {
		return nil, &IncompleteBookingError{Missing: missing}
	}

	// One appointment per patient, specialty and day, regardless of state.
	existing, err := s.Appointments.Find(ctx, appointmentRepo.Filter{
		PatientID: session.PatientID,
		Specialty: session.Specialty,
		Date:      session.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check existing appointments: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrDuplicateBookingSameDay
	}

	// Re-check against the live open-slot set; the cached candidates may be
	// minutes old.
	open, err := s.Availability.OpenSlots(ctx, session.DoctorID, session.Specialty, session.Date)
	if err != nil {
		return nil, err
	}
	label := session.SelectedSlot.Label()
	stillOpen := false
	for _, slot := range open {
		if slot.Label() == label {
			stillOpen = true
			break
		}
	}
	if !stillOpen {
		return nil, ErrSlotNoLongerAvailable
	}

	appt := &models.Appointment{
		ID:          uuid.New().String(),
		DoctorID:    session.DoctorID,
		PatientID:   session.PatientID,
		Specialty:   session.Specialty,
		Date:        session.Date,
		Slot:        *session.SelectedSlot,
		Horario:     label,
		State:       models.StatePending,
		RequestedAt: s.now(),
	}
	if err := s.Appointments.CreateIfSlotFree(ctx, appt, s.freeingStates()); err != nil {
		if err == appointmentRepo.ErrSlotTaken {
			return nil, ErrSlotNoLongerAvailable
		}
		return nil, err
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		// The appointment exists; the stale session just ages out.
		logger.Warn("failed to delete booking session after confirmation",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("patientID", appt.PatientID),
		zap.String("date", appt.Date),
		zap.String("slot", appt.Horario))
	return appt, nil
}

// CancelSession discards an in-progress session. Cancelling a session that
// already expired is not an error.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// availableDates walks the booking horizon day by day, starting tomorrow, and
// keeps the dates with at least one open slot. The doctor's windows and
// appointments are each fetched once; per-date slots are computed in memory.
func (s *DefaultBookingService) availableDates(ctx context.Context, doctorID, specialty string) ([]string, error) {
	horizon := s.HorizonDays
	if horizon <= 0 {
		horizon = 15
	}

	windows, err := s.Availability.WindowsForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]models.AvailabilityWindow)
	for _, w := range windows {
		if w.Specialty == specialty {
			byKey[w.DateKey] = w
		}
	}
	if len(byKey) == 0 {
		return nil, nil
	}

	appts, err := s.Appointments.Find(ctx, appointmentRepo.Filter{DoctorID: doctorID})
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments for %s: %w", doctorID, err)
	}
	byDate := make(map[string][]models.Appointment)
	for _, a := range appts {
		byDate[a.Date] = append(byDate[a.Date], a)
	}

	var dates []string
	today := s.now()
	for i := 1; i <= horizon; i++ {
		day := today.AddDate(0, 0, i)
		date := day.Format(models.DateLayout)

		window, ok := byKey[date]
		if !ok {
			window, ok = byKey[models.WeekdayKey(day.Weekday())]
		}
		if !ok {
			continue
		}

		occupied := scheduling.OccupiedLabels(byDate[date], s.RejectedSlotsAreFree)
		if len(scheduling.FilterTaken(scheduling.GenerateSlots(window), occupied)) > 0 {
			dates = append(dates, date)
		}
	}
	return dates, nil
}

func (s *DefaultBookingService) freeingStates() []models.AppointmentState {
	states := []models.AppointmentState{models.StateCancelled}
	if s.RejectedSlotsAreFree {
		states = append(states, models.StateRejected)
	}
	return states
}

// missingBefore lists the selections absent from the session, stopping before
// the step being attempted. An empty upTo checks every step, for Confirm.
func missingBefore(session *models.BookingSession, upTo string) []string {
	var missing []string
	steps := []struct {
		name string
		done bool
	}{
		{"specialty", session.Specialty != ""},
		{"doctor", session.DoctorID != ""},
		{"date", session.Date != ""},
		{"slot", session.SelectedSlot != nil},
	}
	for _, step := range steps {
		if step.name == upTo {
			break
		}
		if !step.done {
			missing = append(missing, step.name)
		}
	}
	return missing
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
