package models

// BookingSession holds the state of one booking flow between the first
// specialty lookup and final confirmation. Sessions live in the cache with a
// short TTL; nothing is written to the appointment store until Confirm.
type BookingSession struct {
	SessionID      string          `json:"sessionId"`
	PatientID      string          `json:"patientId"`
	Specialties    []string        `json:"specialties,omitempty"`
	Specialty      string          `json:"specialty,omitempty"`
	Doctors        []DoctorSummary `json:"doctors,omitempty"`
	DoctorID       string          `json:"doctorId,omitempty"`
	AvailableDates []string        `json:"availableDates,omitempty"`
	Date           string          `json:"date,omitempty"`
	CandidateSlots []Slot          `json:"candidateSlots,omitempty"`
	SelectedSlot   *Slot           `json:"selectedSlot,omitempty"`
}
