package scheduling

import (
	"fmt"
	"strings"
)

// AvailabilityConflictError reports every other specialty whose declared
// window overlaps the candidate on the same doctor and temporal key.
type AvailabilityConflictError struct {
	Specialties []string
}

func (e *AvailabilityConflictError) Error() string {
	return fmt.Sprintf("availability overlaps existing windows for: %s", strings.Join(e.Specialties, ", "))
}

// InvalidWindowError reports a window that violates clinic policy before any
// conflict scan happens (bad duration, inverted range, outside opening hours).
type InvalidWindowError struct {
	Reason string
}

func (e *InvalidWindowError) Error() string {
	return "invalid availability window: " + e.Reason
}
