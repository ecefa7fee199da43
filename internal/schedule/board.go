package schedule

import (
	"time"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

type TimeLabel struct {
	Slot  int    `json:"slot"`
	Label string `json:"label"`
}

type DoctorColumn struct {
	Doctor  domain.Doctor `json:"doctor"`
	Summary DoctorSummary `json:"summary"`
	Cells   []Cell        `json:"cells"`
}

type DayBoard struct {
	Date             string         `json:"date"`
	AppointmentCount int            `json:"appointmentCount"`
	TimeLabels       []TimeLabel    `json:"timeLabels"`
	Columns          []DoctorColumn `json:"columns"`
}

type Board struct {
	View     domain.NavigationState `json:"view"`
	DoctorID string                 `json:"doctorId,omitempty"`
	Days     []DayBoard             `json:"days"`
}

// TimeLabels labels the hour rows; half-hour rows stay blank.
func TimeLabels() []TimeLabel {
	labels := make([]TimeLabel, SlotCount)
	for slot := range labels {
		labels[slot] = TimeLabel{Slot: slot}
		if slot%SlotsPerHour == 0 {
			labels[slot].Label = SlotLabel(slot)
		}
	}
	return labels
}

func BuildDayBoard(date time.Time, doctors []domain.Doctor, appointments []domain.Appointment) DayBoard {
	day := AppointmentsOn(date, appointments)

	board := DayBoard{
		Date:             domain.StartOfDay(date).Format(domain.DateLayout),
		AppointmentCount: len(day),
		TimeLabels:       TimeLabels(),
		Columns:          make([]DoctorColumn, 0, len(doctors)),
	}

	for _, d := range doctors {
		board.Columns = append(board.Columns, DoctorColumn{
			Doctor:  d,
			Summary: Summarize(d.ID, date, day),
			Cells:   PlaceAppointments(appointmentsFor(d.ID, day)),
		})
	}

	return board
}

// BuildBoard lays out every day visible in state, restricted to one doctor
// when doctorFilter is set.
func BuildBoard(state domain.NavigationState, doctors []domain.Doctor, appointments []domain.Appointment, doctorFilter string) Board {
	columns := ColumnDoctors(doctors, appointments, doctorFilter)

	if doctorFilter != "" {
		appointments = appointmentsFor(doctorFilter, appointments)
	}

	board := Board{View: state, DoctorID: doctorFilter}
	for _, date := range VisibleDays(state) {
		board.Days = append(board.Days, BuildDayBoard(date, columns, appointments))
	}
	return board
}
