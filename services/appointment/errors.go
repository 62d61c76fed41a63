package appointment

import (
	"errors"
	"fmt"

	"clinibook/models"
)

// ErrNotAllowed means the acting user may not perform this operation on this
// appointment.
var ErrNotAllowed = errors.New("operation not allowed for this user")

// InvalidTransitionError reports a state change the lifecycle does not permit.
type InvalidTransitionError struct {
	From models.AppointmentState
	To   models.AppointmentState
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move appointment from %s to %s", e.From, e.To)
}

// InvalidInputError reports a missing or out-of-range payload field.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}
