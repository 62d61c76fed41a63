package scheduling

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "clinibook/database/repository/appointment"
	availabilityRepo "clinibook/database/repository/availability"
	"clinibook/models"
	"clinibook/utils"

	"go.uber.org/zap"
)

// AvailabilityService manages declared availability and computes open slots.
type AvailabilityService interface {
	// Register validates and stores a window, rejecting overlaps with the
	// doctor's other specialties on the same key before anything is written.
	Register(ctx context.Context, window models.AvailabilityWindow) error
	// WindowFor resolves the effective window for a doctor, specialty and
	// calendar date. A nil result with nil error means no availability.
	WindowFor(ctx context.Context, doctorID, specialty, date string) (*models.AvailabilityWindow, error)
	// OpenSlots generates the bookable slots for a doctor, specialty and
	// date, minus slots consumed by existing appointments.
	OpenSlots(ctx context.Context, doctorID, specialty, date string) ([]models.Slot, error)
	// WindowsForDoctor lists everything a doctor has declared.
	WindowsForDoctor(ctx context.Context, doctorID string) ([]models.AvailabilityWindow, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	// RejectedSlotsAreFree controls whether a Rejected appointment frees its
	// slot. Historical behavior keeps it occupied, so main wires this false
	// unless configured otherwise.
	RejectedSlotsAreFree bool
}

func (s *DefaultAvailabilityService) Register(ctx context.Context, window models.AvailabilityWindow) error {
	logger := utils.GetLogger()

	if err := validateWindow(window); err != nil {
		return err
	}

	existing, err := s.conflictScanSet(ctx, window)
	if err != nil {
		return fmt.Errorf("failed to load existing availability: %w", err)
	}
	if conflicts := FindConflicts(existing, window); len(conflicts) > 0 {
		return &AvailabilityConflictError{Specialties: conflicts}
	}

	if err := s.Availability.Upsert(ctx, window); err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}

	logger.Info("availability registered",
		zap.String("doctorID", window.DoctorID),
		zap.String("specialty", window.Specialty),
		zap.String("dateKey", window.DateKey))
	return nil
}

func (s *DefaultAvailabilityService) WindowFor(ctx context.Context, doctorID, specialty, date string) (*models.AvailabilityWindow, error) {
	keys, err := models.ResolveDateKeys(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	// Most specific key first: a date override shadows the weekday entry.
	for _, key := range keys {
		window, err := s.Availability.GetWindow(ctx, doctorID, specialty, key)
		if err != nil {
			return nil, err
		}
		if window != nil {
			return window, nil
		}
	}
	return nil, nil
}

func (s *DefaultAvailabilityService) OpenSlots(ctx context.Context, doctorID, specialty, date string) ([]models.Slot, error) {
	window, err := s.WindowFor(ctx, doctorID, specialty, date)
	if err != nil {
		return nil, err
	}
	if window == nil {
		// No availability is a valid empty result, not an error.
		return nil, nil
	}

	appts, err := s.Appointments.Find(ctx, appointmentRepo.Filter{DoctorID: doctorID, Date: date})
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments for %s on %s: %w", doctorID, date, err)
	}

	occupied := OccupiedLabels(appts, s.RejectedSlotsAreFree)
	return FilterTaken(GenerateSlots(*window), occupied), nil
}

func (s *DefaultAvailabilityService) WindowsForDoctor(ctx context.Context, doctorID string) ([]models.AvailabilityWindow, error) {
	return s.Availability.GetByDoctor(ctx, doctorID)
}

// conflictScanSet collects every stored window that can be in effect at the
// same time as the candidate, across both key kinds. A date-keyed candidate
// competes with same-date windows plus recurring weekday windows whose
// specialty has no same-date override (an override shadows that specialty's
// weekday entry). A weekday-keyed candidate also competes with date overrides
// falling on that weekday, except on dates where the candidate's own
// specialty is itself overridden and its weekday window never applies.
func (s *DefaultAvailabilityService) conflictScanSet(ctx context.Context, candidate models.AvailabilityWindow) ([]models.AvailabilityWindow, error) {
	if d, err := time.Parse(models.DateLayout, candidate.DateKey); err == nil {
		sameDate, err := s.Availability.GetByDoctorAndKey(ctx, candidate.DoctorID, candidate.DateKey)
		if err != nil {
			return nil, err
		}
		recurring, err := s.Availability.GetByDoctorAndKey(ctx, candidate.DoctorID, models.WeekdayKey(d.Weekday()))
		if err != nil {
			return nil, err
		}
		overridden := make(map[string]bool, len(sameDate))
		for _, w := range sameDate {
			overridden[w.Specialty] = true
		}
		out := sameDate
		for _, w := range recurring {
			if !overridden[w.Specialty] {
				out = append(out, w)
			}
		}
		return out, nil
	}

	day, ok := models.ParseWeekdayKey(candidate.DateKey)
	if !ok {
		return nil, &InvalidWindowError{Reason: fmt.Sprintf("unrecognized date key %q", candidate.DateKey)}
	}
	all, err := s.Availability.GetByDoctor(ctx, candidate.DoctorID)
	if err != nil {
		return nil, err
	}

	ownOverrides := make(map[string]bool)
	for _, w := range all {
		if w.Specialty != candidate.Specialty {
			continue
		}
		if _, err := time.Parse(models.DateLayout, w.DateKey); err == nil {
			ownOverrides[w.DateKey] = true
		}
	}

	var out []models.AvailabilityWindow
	for _, w := range all {
		if w.DateKey == candidate.DateKey {
			out = append(out, w)
			continue
		}
		if d, err := time.Parse(models.DateLayout, w.DateKey); err == nil && d.Weekday() == day && !ownOverrides[w.DateKey] {
			out = append(out, w)
		}
	}
	return out, nil
}

func validateWindow(window models.AvailabilityWindow) error {
	if window.DoctorID == "" || window.Specialty == "" || window.DateKey == "" {
		return &InvalidWindowError{Reason: "doctor, specialty and date key are required"}
	}
	if !window.Start.Valid() || !window.End.Valid() {
		return &InvalidWindowError{Reason: "start and end must be within a single day"}
	}
	if window.Start.Compare(window.End) >= 0 {
		return &InvalidWindowError{Reason: "start must be before end"}
	}
	if window.SlotDuration < minSlotDuration || window.SlotDuration > maxSlotDuration {
		return &InvalidWindowError{
			Reason: fmt.Sprintf("slot duration must be between %d and %d minutes", minSlotDuration, maxSlotDuration),
		}
	}

	day, ok := keyWeekday(window.DateKey)
	if !ok {
		return &InvalidWindowError{Reason: fmt.Sprintf("unrecognized date key %q", window.DateKey)}
	}
	open, closing, openDay := ClinicHours(day)
	if !openDay {
		return &InvalidWindowError{Reason: "the clinic is closed on Sundays"}
	}
	if window.Start.Compare(open) < 0 || window.End.Compare(closing) > 0 {
		return &InvalidWindowError{
			Reason: fmt.Sprintf("window must fall within clinic hours %s-%s", open.Format(), closing.Format()),
		}
	}
	return nil
}

// keyWeekday resolves a date key (weekday name or literal date) to a weekday.
func keyWeekday(dateKey string) (time.Weekday, bool) {
	if day, ok := models.ParseWeekdayKey(dateKey); ok {
		return day, true
	}
	d, err := time.Parse(models.DateLayout, dateKey)
	if err != nil {
		return 0, false
	}
	return d.Weekday(), true
}
