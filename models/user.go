package models

// Role is the closed set of account kinds. Every stored user document carries
// an explicit role tag; callers switch on it rather than probing for fields.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Doctor"
	RolePatient Role = "Patient"
)

// User is a clinic account. Specialties is populated only for doctors,
// HealthPlan only for patients.
type User struct {
	ID          string   `bson:"id" json:"id"`
	Email       string   `bson:"email" json:"email"`
	FirstName   string   `bson:"first_name" json:"firstName"`
	LastName    string   `bson:"last_name" json:"lastName"`
	Role        Role     `bson:"role" json:"role"`
	Specialties []string `bson:"specialties,omitempty" json:"specialties,omitempty"`
	HealthPlan  string   `bson:"health_plan,omitempty" json:"healthPlan,omitempty"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// DoctorSummary is the minimal doctor view offered during booking.
type DoctorSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}
