package userRepo

import (
	"context"

	"clinibook/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. A nil user with nil error
	// means no such account.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email address, nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// ListSpecialties returns the distinct specialties practiced by doctors.
	ListSpecialties(ctx context.Context) ([]string, error)
	// GetDoctorsBySpecialty returns doctors whose specialties contain the given one.
	GetDoctorsBySpecialty(ctx context.Context, specialty string) ([]models.User, error)
	// ListPatients returns all patient accounts.
	ListPatients(ctx context.Context) ([]models.User, error)
}
