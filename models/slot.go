package models

import "strings"

// SlotLabelSeparator joins the two ends of a slot label. Booked appointments
// store the same string, so occupancy checks compare labels verbatim.
const SlotLabelSeparator = " - "

// Slot is one bookable sub-interval of an availability window. Slots are
// generated on demand and never persisted on their own; the formatted label
// identifies a slot when matching against booked appointments.
type Slot struct {
	Start TimeOfDay `bson:"start" json:"start"`
	End   TimeOfDay `bson:"end" json:"end"`
}

// Label renders the slot as "HH:MM - HH:MM".
func (s Slot) Label() string {
	return s.Start.Format() + SlotLabelSeparator + s.End.Format()
}

// ParseSlotLabel parses a stored "HH:MM - HH:MM" schedule string.
func ParseSlotLabel(label string) (Slot, error) {
	parts := strings.Split(label, SlotLabelSeparator)
	if len(parts) != 2 {
		return Slot{}, &InvalidTimeFormatError{Input: label}
	}
	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return Slot{}, err
	}
	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return Slot{}, err
	}
	return Slot{Start: start, End: end}, nil
}
