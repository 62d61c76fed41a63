package scheduling

import (
	"context"
	"testing"
	"time"

	appointmentRepo "clinibook/database/repository/appointment"
	"clinibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityRepo struct {
	windows []models.AvailabilityWindow
}

func (r *fakeAvailabilityRepo) GetWindow(_ context.Context, doctorID, specialty, dateKey string) (*models.AvailabilityWindow, error) {
	for i, w := range r.windows {
		if w.DoctorID == doctorID && w.Specialty == specialty && w.DateKey == dateKey {
			return &r.windows[i], nil
		}
	}
	return nil, nil
}

func (r *fakeAvailabilityRepo) GetByDoctorAndKey(_ context.Context, doctorID, dateKey string) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for _, w := range r.windows {
		if w.DoctorID == doctorID && w.DateKey == dateKey {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) GetByDoctor(_ context.Context, doctorID string) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for _, w := range r.windows {
		if w.DoctorID == doctorID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) Upsert(_ context.Context, window models.AvailabilityWindow) error {
	for i, w := range r.windows {
		if w.DoctorID == window.DoctorID && w.Specialty == window.Specialty && w.DateKey == window.DateKey {
			r.windows[i] = window
			return nil
		}
	}
	r.windows = append(r.windows, window)
	return nil
}

type fakeAppointmentRepo struct {
	appts []models.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appt *models.Appointment) error {
	r.appts = append(r.appts, *appt)
	return nil
}

func (r *fakeAppointmentRepo) CreateIfSlotFree(_ context.Context, appt *models.Appointment, freeingStates []models.AppointmentState) error {
	freeing := make(map[models.AppointmentState]bool, len(freeingStates))
	for _, s := range freeingStates {
		freeing[s] = true
	}
	for _, a := range r.appts {
		if a.DoctorID == appt.DoctorID && a.Date == appt.Date && a.Horario == appt.Horario && !freeing[a.State] {
			return appointmentRepo.ErrSlotTaken
		}
	}
	r.appts = append(r.appts, *appt)
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	for i, a := range r.appts {
		if a.ID == id {
			return &r.appts[i], nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (r *fakeAppointmentRepo) Find(_ context.Context, filter appointmentRepo.Filter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if filter.DoctorID != "" && a.DoctorID != filter.DoctorID {
			continue
		}
		if filter.PatientID != "" && a.PatientID != filter.PatientID {
			continue
		}
		if filter.Specialty != "" && a.Specialty != filter.Specialty {
			continue
		}
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		excluded := false
		for _, s := range filter.ExcludeStates {
			if a.State == s {
				excluded = true
			}
		}
		if excluded {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateState(_ context.Context, id string, state models.AppointmentState, reason string) error {
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].State = state
			switch state {
			case models.StateRejected:
				r.appts[i].RejectReason = reason
			case models.StateCancelled:
				r.appts[i].CancelReason = reason
			}
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (r *fakeAppointmentRepo) SaveReview(_ context.Context, id string, review models.Review, completedAt time.Time) error {
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].State = models.StateFinalized
			r.appts[i].Review = &review
			r.appts[i].CompletedAt = &completedAt
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (r *fakeAppointmentRepo) SaveRating(_ context.Context, id string, rating int) error {
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].Rating = rating
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (r *fakeAppointmentRepo) SaveSurvey(_ context.Context, id string, survey models.Survey) error {
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].Survey = &survey
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func newService() (*DefaultAvailabilityService, *fakeAvailabilityRepo, *fakeAppointmentRepo) {
	avail := &fakeAvailabilityRepo{}
	appts := &fakeAppointmentRepo{}
	svc := &DefaultAvailabilityService{Availability: avail, Appointments: appts}
	return svc, avail, appts
}

func TestRegisterStoresValidWindow(t *testing.T) {
	svc, repo, _ := newService()
	err := svc.Register(context.Background(), window(8*60, 12*60, 30))
	require.NoError(t, err)
	require.Len(t, repo.windows, 1)
}

func TestRegisterRejectsOverlapAcrossSpecialties(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	first := window(8*60, 12*60, 30)
	first.Specialty = "Cardiology"
	require.NoError(t, svc.Register(ctx, first))

	second := window(10*60, 14*60, 30)
	second.Specialty = "Dermatology"
	err := svc.Register(ctx, second)

	var conflict *AvailabilityConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"Cardiology"}, conflict.Specialties)
}

func TestRegisterDateOverrideConflictsWithRecurring(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	recurring := window(8*60, 12*60, 30)
	recurring.Specialty = "Cardiology"
	recurring.DateKey = "monday"
	require.NoError(t, svc.Register(ctx, recurring))

	// An override on a Monday must be checked against the recurring Monday
	// windows of other specialties, not just same-date entries.
	override := window(11*60, 13*60, 30)
	override.Specialty = "Dermatology"
	override.DateKey = "2026-09-07"
	err := svc.Register(ctx, override)

	var conflict *AvailabilityConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"Cardiology"}, conflict.Specialties)
}

func TestRegisterRecurringConflictsWithDateOverride(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	override := window(11*60, 13*60, 30)
	override.Specialty = "Dermatology"
	override.DateKey = "2026-09-07"
	require.NoError(t, svc.Register(ctx, override))

	// The new Monday window would collide with the stored override on the
	// Monday it covers.
	recurring := window(8*60, 12*60, 30)
	recurring.Specialty = "Cardiology"
	recurring.DateKey = "monday"
	err := svc.Register(ctx, recurring)

	var conflict *AvailabilityConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"Dermatology"}, conflict.Specialties)
}

func TestRegisterOverrideShadowsOwnRecurringWindow(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	recurring := window(8*60, 12*60, 30)
	recurring.Specialty = "Cardiology"
	recurring.DateKey = "monday"
	require.NoError(t, svc.Register(ctx, recurring))

	cardioOverride := window(8*60, 10*60, 30)
	cardioOverride.Specialty = "Cardiology"
	cardioOverride.DateKey = "2026-09-07"
	require.NoError(t, svc.Register(ctx, cardioOverride))

	// On 2026-09-07 the Cardiology weekday window is shadowed by its own
	// override, so the 10:30-12:00 slot is genuinely free that day.
	dermaOverride := window(10*60+30, 12*60, 30)
	dermaOverride.Specialty = "Dermatology"
	dermaOverride.DateKey = "2026-09-07"
	assert.NoError(t, svc.Register(ctx, dermaOverride))

	// The recurring direction respects the same shadowing: a Dermatology
	// Monday window overlapping only the shadowed date is still a conflict
	// with the other Mondays' Cardiology schedule, checked independently.
	dermaRecurring := window(10*60+30, 12*60, 30)
	dermaRecurring.Specialty = "Dermatology"
	dermaRecurring.DateKey = "monday"
	var conflict *AvailabilityConflictError
	require.ErrorAs(t, svc.Register(ctx, dermaRecurring), &conflict)
	assert.Equal(t, []string{"Cardiology"}, conflict.Specialties)
}

func TestRegisterWeekdaySkipsOverridesOnShadowedDates(t *testing.T) {
	svc, repo, _ := newService()
	ctx := context.Background()

	// Cardiology is fully overridden on 2026-09-07; Dermatology holds the
	// late-morning override that day. A Cardiology Monday window overlapping
	// the Dermatology override does not conflict, because on that date the
	// weekday window never applies.
	cardioOverride := window(8*60, 10*60, 30)
	cardioOverride.Specialty = "Cardiology"
	cardioOverride.DateKey = "2026-09-07"
	dermaOverride := window(11*60, 13*60, 30)
	dermaOverride.Specialty = "Dermatology"
	dermaOverride.DateKey = "2026-09-07"
	repo.windows = []models.AvailabilityWindow{cardioOverride, dermaOverride}

	recurring := window(11*60, 12*60, 30)
	recurring.Specialty = "Cardiology"
	recurring.DateKey = "monday"
	assert.NoError(t, svc.Register(ctx, recurring))
}

func TestRegisterSameSpecialtyReplacesWindow(t *testing.T) {
	svc, repo, _ := newService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, window(8*60, 12*60, 30)))
	require.NoError(t, svc.Register(ctx, window(9*60, 13*60, 30)))
	require.Len(t, repo.windows, 1)
	assert.Equal(t, models.TimeOfDay(9*60), repo.windows[0].Start)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.AvailabilityWindow)
	}{
		{"missing doctor", func(w *models.AvailabilityWindow) { w.DoctorID = "" }},
		{"start after end", func(w *models.AvailabilityWindow) { w.Start, w.End = w.End, w.Start }},
		{"start equals end", func(w *models.AvailabilityWindow) { w.End = w.Start }},
		{"duration too short", func(w *models.AvailabilityWindow) { w.SlotDuration = 15 }},
		{"duration too long", func(w *models.AvailabilityWindow) { w.SlotDuration = 90 }},
		{"before opening", func(w *models.AvailabilityWindow) { w.Start = 7 * 60 }},
		{"past weekday close", func(w *models.AvailabilityWindow) { w.End = 20 * 60 }},
		{"sunday", func(w *models.AvailabilityWindow) { w.DateKey = "sunday" }},
		{"unknown key", func(w *models.AvailabilityWindow) { w.DateKey = "someday" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := window(8*60, 12*60, 30)
			tc.mutate(&w)
			err := svc.Register(ctx, w)
			var invalid *InvalidWindowError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestRegisterSaturdayHonorsEarlyClose(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	w := window(8*60, 15*60, 30)
	w.DateKey = "saturday"
	var invalid *InvalidWindowError
	require.ErrorAs(t, svc.Register(ctx, w), &invalid)

	w.End = 14 * 60
	assert.NoError(t, svc.Register(ctx, w))
}

func TestWindowForPrefersDateOverride(t *testing.T) {
	svc, repo, _ := newService()
	ctx := context.Background()

	weekly := window(8*60, 12*60, 30)
	weekly.DateKey = "monday"
	override := window(9*60, 11*60, 30)
	override.DateKey = "2026-09-07" // a Monday
	repo.windows = []models.AvailabilityWindow{weekly, override}

	got, err := svc.WindowFor(ctx, "doc-1", "Cardiology", "2026-09-07")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2026-09-07", got.DateKey)

	// A different Monday falls back to the recurring entry.
	got, err = svc.WindowFor(ctx, "doc-1", "Cardiology", "2026-09-14")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "monday", got.DateKey)
}

func TestOpenSlotsNoAvailability(t *testing.T) {
	svc, _, _ := newService()
	slots, err := svc.OpenSlots(context.Background(), "doc-1", "Cardiology", "2026-09-07")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestOpenSlotsExcludesBooked(t *testing.T) {
	svc, repo, appts := newService()
	ctx := context.Background()

	weekly := window(8*60, 10*60, 30)
	repo.windows = []models.AvailabilityWindow{weekly}
	appts.appts = []models.Appointment{
		{DoctorID: "doc-1", Date: "2026-09-07", Horario: "08:30 - 09:00", State: models.StatePending},
		{DoctorID: "doc-1", Date: "2026-09-07", Horario: "09:00 - 09:30", State: models.StateCancelled},
	}

	slots, err := svc.OpenSlots(ctx, "doc-1", "Cardiology", "2026-09-07")
	require.NoError(t, err)
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label()
	}
	assert.Equal(t, []string{"08:00 - 08:30", "09:00 - 09:30", "09:30 - 10:00"}, labels)
}
