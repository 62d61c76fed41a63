package scheduling

import "clinibook/models"

// Overlaps reports whether two half-open windows [a.Start, a.End) and
// [b.Start, b.End) share any instant. The canonical symmetric test is used;
// windows that merely touch (one ends where the other starts) do not overlap.
func Overlaps(a, b models.AvailabilityWindow) bool {
	return a.Start.Compare(b.End) < 0 && b.Start.Compare(a.End) < 0
}

// FindConflicts scans a doctor's stored windows that can be in effect at the
// same time as the candidate and returns every OTHER specialty whose window
// overlaps it. All conflicts are accumulated, each specialty reported once.
func FindConflicts(existing []models.AvailabilityWindow, candidate models.AvailabilityWindow) []string {
	seen := make(map[string]bool)
	var conflicting []string
	for _, w := range existing {
		if w.Specialty == candidate.Specialty || seen[w.Specialty] {
			continue
		}
		if Overlaps(w, candidate) {
			seen[w.Specialty] = true
			conflicting = append(conflicting, w.Specialty)
		}
	}
	return conflicting
}
