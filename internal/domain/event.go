package domain

import "time"

const EventAppointmentsChanged = "appointments.changed"

// ChangeEvent tells connected agendas that the backend data moved.
type ChangeEvent struct {
	Type          string           `json:"type"`
	AppointmentID string           `json:"appointmentId,omitempty"`
	Operation     JournalOperation `json:"operation"`
	DoctorID      string           `json:"doctorId,omitempty"`
	Date          string           `json:"date,omitempty"`
	ViewID        string           `json:"viewId,omitempty"`
	OccurredAt    time.Time        `json:"occurredAt"`
}
