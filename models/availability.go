package models

import (
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date format used across collections.
const DateLayout = "2006-01-02"

// AvailabilityWindow is a doctor's declared working range for one specialty
// under one temporal key. The key is either a lowercase weekday name
// ("monday".."sunday") for the recurring schedule, or a literal "YYYY-MM-DD"
// date for a one-off override. Overrides win over the weekday entry.
type AvailabilityWindow struct {
	DoctorID     string    `bson:"doctor_id" json:"doctorId"`
	Specialty    string    `bson:"specialty" json:"specialty"`
	DateKey      string    `bson:"date_key" json:"dateKey"`
	Start        TimeOfDay `bson:"start" json:"start"`
	End          TimeOfDay `bson:"end" json:"end"`
	SlotDuration int       `bson:"slot_duration" json:"slotDuration"` // minutes
}

var weekdayKeys = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// WeekdayKey returns the recurring-schedule key for a weekday.
func WeekdayKey(d time.Weekday) string {
	return weekdayKeys[d]
}

// ParseWeekdayKey maps a recurring key back to its weekday.
func ParseWeekdayKey(key string) (time.Weekday, bool) {
	for day, name := range weekdayKeys {
		if name == strings.ToLower(key) {
			return day, true
		}
	}
	return 0, false
}

// ResolveDateKeys returns the keys under which availability for a calendar
// date may be stored, most specific first: the date itself, then its weekday.
func ResolveDateKeys(date string) ([]string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, err
	}
	return []string{date, WeekdayKey(d.Weekday())}, nil
}
