package scheduling

import (
	"testing"

	"clinibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(start, end models.TimeOfDay, duration int) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		DoctorID:     "doc-1",
		Specialty:    "Cardiology",
		DateKey:      "monday",
		Start:        start,
		End:          end,
		SlotDuration: duration,
	}
}

func TestGenerateSlotsFullWeekday(t *testing.T) {
	// 08:00-19:00 at 30 minutes is exactly 22 slots.
	slots := GenerateSlots(window(8*60, 19*60, 30))
	require.Len(t, slots, 22)
	assert.Equal(t, "08:00 - 08:30", slots[0].Label())
	assert.Equal(t, "18:30 - 19:00", slots[len(slots)-1].Label())
}

func TestGenerateSlotsSaturdayHour(t *testing.T) {
	slots := GenerateSlots(window(8*60, 14*60, 60))
	require.Len(t, slots, 6)
	assert.Equal(t, "08:00 - 09:00", slots[0].Label())
	assert.Equal(t, "13:00 - 14:00", slots[5].Label())
}

func TestGenerateSlotsPartialTrailingGap(t *testing.T) {
	// 50 minutes of room at 30-minute slots yields one slot; the 20-minute
	// remainder is dropped.
	slots := GenerateSlots(window(9*60, 9*60+50, 30))
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00 - 09:30", slots[0].Label())
}

func TestGenerateSlotsWindowShorterThanDuration(t *testing.T) {
	assert.Empty(t, GenerateSlots(window(9*60, 9*60+20, 30)))
}

func TestGenerateSlotsContiguousAndOrdered(t *testing.T) {
	slots := GenerateSlots(window(8*60, 12*60, 45))
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}

func appt(state models.AppointmentState, label string) models.Appointment {
	return models.Appointment{State: state, Horario: label}
}

func TestOccupiedLabelsCancelledFreesSlot(t *testing.T) {
	occupied := OccupiedLabels([]models.Appointment{
		appt(models.StatePending, "08:00 - 08:30"),
		appt(models.StateAccepted, "08:30 - 09:00"),
		appt(models.StateCancelled, "09:00 - 09:30"),
		appt(models.StateRejected, "09:30 - 10:00"),
		appt(models.StateFinalized, "10:00 - 10:30"),
	}, false)

	assert.Contains(t, occupied, "08:00 - 08:30")
	assert.Contains(t, occupied, "08:30 - 09:00")
	assert.NotContains(t, occupied, "09:00 - 09:30")
	assert.Contains(t, occupied, "09:30 - 10:00")
	assert.Contains(t, occupied, "10:00 - 10:30")
}

func TestOccupiedLabelsRejectedFreesWhenConfigured(t *testing.T) {
	occupied := OccupiedLabels([]models.Appointment{
		appt(models.StateRejected, "09:30 - 10:00"),
	}, true)
	assert.NotContains(t, occupied, "09:30 - 10:00")
}

func TestOccupiedLabelsFallsBackToSlot(t *testing.T) {
	occupied := OccupiedLabels([]models.Appointment{
		{State: models.StatePending, Slot: models.Slot{Start: 480, End: 510}},
	}, false)
	assert.Contains(t, occupied, "08:00 - 08:30")
}

func TestFilterTakenPreservesOrderAndIsIdempotent(t *testing.T) {
	slots := GenerateSlots(window(8*60, 10*60, 30))
	occupied := map[string]struct{}{"08:30 - 09:00": {}}

	free := FilterTaken(slots, occupied)
	require.Len(t, free, 3)
	assert.Equal(t, "08:00 - 08:30", free[0].Label())
	assert.Equal(t, "09:00 - 09:30", free[1].Label())
	assert.Equal(t, "09:30 - 10:00", free[2].Label())

	// Filtering again removes nothing.
	assert.Equal(t, free, FilterTaken(free, occupied))
}
