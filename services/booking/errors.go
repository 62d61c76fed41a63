package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionNotFound means the booking session expired or never existed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ErrDuplicateBookingSameDay means the patient already holds an appointment
// for this specialty on this date, in any state.
var ErrDuplicateBookingSameDay = errors.New("only one appointment per specialty per day is allowed")

// ErrSlotNoLongerAvailable means the selected slot was taken between slot
// listing and confirmation.
var ErrSlotNoLongerAvailable = errors.New("the selected slot is no longer available")

// ErrNotFound means a referenced doctor or patient does not exist.
var ErrNotFound = errors.New("not found")

// IncompleteBookingError lists the selections still missing at confirmation.
type IncompleteBookingError struct {
	Missing []string
}

func (e *IncompleteBookingError) Error() string {
	return fmt.Sprintf("booking is incomplete, missing: %s", strings.Join(e.Missing, ", "))
}
