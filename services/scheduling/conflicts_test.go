package scheduling

import (
	"testing"

	"clinibook/models"

	"github.com/stretchr/testify/assert"
)

func win(specialty string, start, end models.TimeOfDay) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		DoctorID:  "doc-1",
		Specialty: specialty,
		DateKey:   "monday",
		Start:     start,
		End:       end,
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b models.AvailabilityWindow
		want bool
	}{
		{"identical", win("A", 480, 600), win("B", 480, 600), true},
		{"contained", win("A", 480, 720), win("B", 540, 600), true},
		{"partial", win("A", 480, 600), win("B", 540, 660), true},
		{"touching", win("A", 480, 600), win("B", 600, 720), false},
		{"disjoint", win("A", 480, 540), win("B", 600, 720), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a, tc.b))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, Overlaps(tc.b, tc.a))
		})
	}
}

// The stored-schedule checks used three separate clauses for the same
// question. The single half-open test must agree with that formulation.
func TestOverlapsMatchesThreeClauseFormulation(t *testing.T) {
	legacy := func(a, b models.AvailabilityWindow) bool {
		return (a.Start.Compare(b.Start) >= 0 && a.Start.Compare(b.End) < 0) ||
			(a.End.Compare(b.Start) > 0 && a.End.Compare(b.End) <= 0) ||
			(a.Start.Compare(b.Start) <= 0 && a.End.Compare(b.End) >= 0)
	}
	bounds := []models.TimeOfDay{480, 510, 540, 600, 660}
	for _, as := range bounds {
		for _, ae := range bounds {
			if ae <= as {
				continue
			}
			for _, bs := range bounds {
				for _, be := range bounds {
					if be <= bs {
						continue
					}
					a, b := win("A", as, ae), win("B", bs, be)
					assert.Equal(t, legacy(a, b), Overlaps(a, b),
						"a=[%s,%s) b=[%s,%s)", as.Format(), ae.Format(), bs.Format(), be.Format())
				}
			}
		}
	}
}

func TestFindConflictsSkipsSameSpecialty(t *testing.T) {
	existing := []models.AvailabilityWindow{win("Cardiology", 480, 600)}
	candidate := win("Cardiology", 480, 600)
	assert.Empty(t, FindConflicts(existing, candidate))
}

func TestFindConflictsAccumulatesAll(t *testing.T) {
	existing := []models.AvailabilityWindow{
		win("Cardiology", 480, 600),
		win("Dermatology", 540, 660),
		win("Pediatrics", 720, 780),
	}
	conflicts := FindConflicts(existing, win("Neurology", 500, 560))
	assert.Equal(t, []string{"Cardiology", "Dermatology"}, conflicts)
}

func TestFindConflictsTouchingWindowsAllowed(t *testing.T) {
	existing := []models.AvailabilityWindow{win("Cardiology", 480, 600)}
	assert.Empty(t, FindConflicts(existing, win("Dermatology", 600, 720)))
}
