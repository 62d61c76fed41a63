package availabilityRepo

import (
	"context"

	"clinibook/models"
)

// AvailabilityRepository defines data access for declared availability
// windows. Windows are keyed by (doctor, specialty, dateKey) where dateKey is
// a weekday name for the recurring schedule or a literal date for overrides.
type AvailabilityRepository interface {
	// GetWindow retrieves one window, or nil when none is stored.
	GetWindow(ctx context.Context, doctorID, specialty, dateKey string) (*models.AvailabilityWindow, error)
	// GetByDoctorAndKey retrieves every specialty's window for a doctor under one key.
	GetByDoctorAndKey(ctx context.Context, doctorID, dateKey string) ([]models.AvailabilityWindow, error)
	// GetByDoctor retrieves all of a doctor's windows across keys.
	GetByDoctor(ctx context.Context, doctorID string) ([]models.AvailabilityWindow, error)
	// Upsert stores or replaces the window for its (doctor, specialty, dateKey).
	Upsert(ctx context.Context, window models.AvailabilityWindow) error
}
