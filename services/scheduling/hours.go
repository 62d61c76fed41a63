package scheduling

import (
	"time"

	"clinibook/models"
)

// Clinic opening hours. Weekdays run 08:00-19:00, Saturdays close at 14:00,
// Sundays the clinic is closed.
var (
	clinicOpen      = models.TimeOfDay(8 * 60)
	weekdayClose    = models.TimeOfDay(19 * 60)
	saturdayClose   = models.TimeOfDay(14 * 60)
	minSlotDuration = 30
	maxSlotDuration = 60
)

// ClinicHours returns the opening window for a weekday. ok is false on
// Sunday, when no availability may be declared.
func ClinicHours(day time.Weekday) (open, closing models.TimeOfDay, ok bool) {
	switch day {
	case time.Sunday:
		return 0, 0, false
	case time.Saturday:
		return clinicOpen, saturdayClose, true
	default:
		return clinicOpen, weekdayClose, true
	}
}
