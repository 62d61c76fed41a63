package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every TimeOfDay value.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute granularity, stored as minutes
// since midnight (0..1439). The textual form is "HH:MM", zero-padded, 24h.
type TimeOfDay int

// InvalidTimeFormatError reports a time string that could not be parsed.
type InvalidTimeFormatError struct {
	Input string
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format: %q", e.Input)
}

// ParseTimeOfDay parses "HH:MM" into a TimeOfDay. The input must have exactly
// two integer parts, with hour in 0..23 and minute in 0..59.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, &InvalidTimeFormatError{Input: s}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &InvalidTimeFormatError{Input: s}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &InvalidTimeFormatError{Input: s}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, &InvalidTimeFormatError{Input: s}
	}
	return TimeOfDay(hour*60 + minute), nil
}

// Format renders the time as zero-padded "HH:MM".
func (t TimeOfDay) Format() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Add returns the time n minutes later. The scheduler never crosses midnight;
// pushing a valid time past 23:59 is a caller error and is not clamped here.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Compare returns -1, 0 or 1.
func (t TimeOfDay) Compare(o TimeOfDay) int {
	switch {
	case t < o:
		return -1
	case t > o:
		return 1
	default:
		return 0
	}
}

// Valid reports whether the value is inside a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}
