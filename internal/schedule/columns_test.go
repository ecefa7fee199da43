package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

func TestSummarize(t *testing.T) {
	a1 := appointmentAt("1", "D1", 9, 0, 1)
	a2 := appointmentAt("2", "D1", 10, 0, 1)
	a2.PatientID = a1.PatientID
	a3 := appointmentAt("3", "D1", 11, 0, 1)
	other := appointmentAt("4", "D2", 9, 0, 1)
	nextDay := appointmentAt("5", "D1", 9, 0, 1)
	nextDay.Start = domain.NewTimestamp(nextDay.Start.AddDate(0, 0, 1))

	all := []domain.Appointment{a1, a2, a3, other, nextDay}

	got := Summarize("D1", day(), all)
	assert.Equal(t, DoctorSummary{DoctorID: "D1", AppointmentCount: 3, PatientCount: 2}, got)

	got = Summarize("D3", day(), all)
	assert.Zero(t, got.AppointmentCount)
	assert.Zero(t, got.PatientCount)
}

func TestColumnDoctors(t *testing.T) {
	doctors := []domain.Doctor{{ID: "D1", FullName: "Ana"}, {ID: "D2", FullName: "Luis"}}

	assert.Equal(t, doctors, ColumnDoctors(doctors, nil, ""))
	assert.Equal(t, []domain.Doctor{{ID: "D2", FullName: "Luis"}}, ColumnDoctors(doctors, nil, "D2"))

	appts := []domain.Appointment{appointmentAt("1", "D9", 9, 0, 1), appointmentAt("2", "D3", 9, 0, 1)}
	assert.Equal(t, []domain.Doctor{{ID: "D3"}, {ID: "D9"}}, ColumnDoctors(nil, appts, ""))
}

func TestBuildBoardWeek(t *testing.T) {
	state := domain.NavigationState{
		AnchorDate: time.Date(2025, 5, 16, 0, 0, 0, 0, time.Local),
		ViewType:   domain.ViewTypeWeek,
	}
	doctors := []domain.Doctor{{ID: "D1"}, {ID: "D2"}}
	appts := []domain.Appointment{appointmentAt("1", "D1", 9, 0, 2), appointmentAt("2", "D2", 10, 0, 1)}

	board := BuildBoard(state, doctors, appts, "")

	assert.Len(t, board.Days, 7)
	assert.Equal(t, "2025-05-12", board.Days[0].Date)
	assert.Equal(t, "2025-05-18", board.Days[6].Date)

	friday := board.Days[4]
	assert.Equal(t, "2025-05-16", friday.Date)
	assert.Equal(t, 2, friday.AppointmentCount)
	assert.Len(t, friday.Columns, 2)
	assert.True(t, friday.Columns[0].Cells[4].Head)
	assert.Equal(t, "Consulta", friday.Columns[0].Cells[4].Entry.Treatment)
	assert.Equal(t, "1 hora", friday.Columns[0].Cells[4].Entry.DurationLabel)
	assert.Equal(t, "09:00", friday.Columns[0].Cells[4].Entry.StartTime)
	assert.Equal(t, "10:00", friday.Columns[0].Cells[4].Entry.EndTime)

	filtered := BuildBoard(domain.NavigationState{AnchorDate: state.AnchorDate, ViewType: domain.ViewTypeDay}, doctors, appts, "D2")
	assert.Len(t, filtered.Days, 1)
	assert.Len(t, filtered.Days[0].Columns, 1)
	assert.Equal(t, 1, filtered.Days[0].AppointmentCount)
}

func TestTimeLabels(t *testing.T) {
	labels := TimeLabels()

	assert.Len(t, labels, SlotCount)
	assert.Equal(t, "08:00", labels[0].Label)
	assert.Empty(t, labels[1].Label)
	assert.Equal(t, "20:00", labels[24].Label)
}
