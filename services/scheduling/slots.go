package scheduling

import "clinibook/models"

// GenerateSlots expands an availability window into its ordered, contiguous,
// non-overlapping slots. The cursor advances by the window's slot duration;
// a slot is emitted only when it fits entirely inside the window, so the last
// slot may end exactly at the window's end. A window shorter than one
// duration yields no slots, which is not an error.
func GenerateSlots(window models.AvailabilityWindow) []models.Slot {
	if window.SlotDuration <= 0 {
		return nil
	}

	var slots []models.Slot
	cursor := window.Start
	for cursor.Add(window.SlotDuration).Compare(window.End) <= 0 {
		next := cursor.Add(window.SlotDuration)
		slots = append(slots, models.Slot{Start: cursor, End: next})
		cursor = next
	}
	return slots
}

// OccupiedLabels builds the set of slot labels consumed by existing
// appointments. Only Cancelled appointments free their slot; Rejected ones
// keep it occupied unless rejectedSlotsAreFree is set.
func OccupiedLabels(appts []models.Appointment, rejectedSlotsAreFree bool) map[string]struct{} {
	occupied := make(map[string]struct{}, len(appts))
	for _, a := range appts {
		if a.State == models.StateCancelled {
			continue
		}
		if rejectedSlotsAreFree && a.State == models.StateRejected {
			continue
		}
		label := a.Horario
		if label == "" {
			label = a.Slot.Label()
		}
		occupied[label] = struct{}{}
	}
	return occupied
}

// FilterTaken returns the slots whose label is not in the occupied set,
// preserving order. Filtering an already-filtered list removes nothing.
func FilterTaken(slots []models.Slot, occupied map[string]struct{}) []models.Slot {
	free := make([]models.Slot, 0, len(slots))
	for _, s := range slots {
		if _, taken := occupied[s.Label()]; taken {
			continue
		}
		free = append(free, s)
	}
	return free
}
