package models

import "time"

// AppointmentState is the lifecycle state of an appointment.
type AppointmentState string

const (
	StatePending   AppointmentState = "Pending"
	StateAccepted  AppointmentState = "Accepted"
	StateRejected  AppointmentState = "Rejected"
	StateCancelled AppointmentState = "Cancelled"
	StateFinalized AppointmentState = "Finalized"
)

// Terminal reports whether no further state transition is possible.
func (s AppointmentState) Terminal() bool {
	return s == StateRejected || s == StateCancelled || s == StateFinalized
}

// Review is the doctor's write-up attached when finalizing.
type Review struct {
	Text      string `bson:"text" json:"text"`
	Diagnosis string `bson:"diagnosis" json:"diagnosis"`
}

// Survey is the patient's post-visit questionnaire.
type Survey struct {
	Recommendation string `bson:"recommendation" json:"recommendation"`
	FacilityScore  int    `bson:"facility_score" json:"facilityScore"` // 1..10
	Advice         string `bson:"advice" json:"advice"`
}

// Appointment is a booked slot. Records are never deleted; terminal states
// are kept for history and reporting.
type Appointment struct {
	ID           string           `bson:"id" json:"id"`
	DoctorID     string           `bson:"doctor_id" json:"doctorId"`
	PatientID    string           `bson:"patient_id" json:"patientId"`
	Specialty    string           `bson:"specialty" json:"specialty"`
	Date         string           `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slot         Slot             `bson:"slot" json:"slot"`
	Horario      string           `bson:"horario" json:"horario"` // Slot.Label(), denormalized for queries
	State        AppointmentState `bson:"state" json:"state"`
	CancelReason string           `bson:"cancel_reason,omitempty" json:"cancelReason,omitempty"`
	RejectReason string           `bson:"reject_reason,omitempty" json:"rejectReason,omitempty"`
	Review       *Review          `bson:"review,omitempty" json:"review,omitempty"`
	Survey       *Survey          `bson:"survey,omitempty" json:"survey,omitempty"`
	Rating       int              `bson:"rating,omitempty" json:"rating,omitempty"`
	RequestedAt  time.Time        `bson:"requested_at" json:"requestedAt"`
	CompletedAt  *time.Time       `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
}
