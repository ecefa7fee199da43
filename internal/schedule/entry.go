package schedule

import (
	"fmt"
	"time"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

// CalendarEntry is what the grid renders for one appointment.
type CalendarEntry struct {
	ID            string                   `json:"id"`
	PatientID     string                   `json:"patientId"`
	DoctorID      string                   `json:"doctorId"`
	PatientName   string                   `json:"patientName"`
	Treatment     string                   `json:"treatment"`
	Notes         string                   `json:"notes,omitempty"`
	Status        domain.AppointmentStatus `json:"status"`
	StatusLabel   string                   `json:"statusLabel"`
	Color         string                   `json:"color"`
	StartTime     string                   `json:"startTime"`
	EndTime       string                   `json:"endTime"`
	StartSlot     int                      `json:"startSlot"`
	EndSlot       int                      `json:"endSlot"`
	DurationLabel string                   `json:"durationLabel"`
}

func NewCalendarEntry(a domain.Appointment) CalendarEntry {
	startSlot, endSlot := AppointmentSpan(a)

	return CalendarEntry{
		ID:            a.ID,
		PatientID:     a.PatientID,
		DoctorID:      a.DoctorID,
		PatientName:   a.DisplayPatient(),
		Treatment:     a.TreatmentOrDefault(),
		Notes:         a.Notes,
		Status:        a.Status,
		StatusLabel:   a.Status.Label(),
		Color:         ColorFor(a.ID),
		StartTime:     a.Start.In(time.Local).Format(domain.TimeLayout),
		EndTime:       a.EffectiveEnd().In(time.Local).Format(domain.TimeLayout),
		StartSlot:     startSlot,
		EndSlot:       endSlot,
		DurationLabel: DurationLabel(a.SlotCount()),
	}
}

// DurationLabel renders a slot count the way the appointment form lists it.
func DurationLabel(slots int) string {
	switch slots {
	case 1:
		return "30 minutos"
	case 2:
		return "1 hora"
	case 3:
		return "1 hora 30 minutos"
	case 4:
		return "2 horas"
	case 5:
		return "2 horas 30 minutos"
	case 6:
		return "3 horas"
	default:
		return fmt.Sprintf("%d minutos", slots*SlotMinutes)
	}
}
