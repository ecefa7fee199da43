package schedule

import (
	"sort"
	"time"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

// DoctorSummary is the header of a doctor column for one date.
type DoctorSummary struct {
	DoctorID         string `json:"doctorId"`
	AppointmentCount int    `json:"appointmentCount"`
	PatientCount     int    `json:"patientCount"`
}

// Summarize counts the doctor's appointments on date and the distinct
// patients among them.
func Summarize(doctorID string, date time.Time, appointments []domain.Appointment) DoctorSummary {
	summary := DoctorSummary{DoctorID: doctorID}
	patients := make(map[string]struct{})

	for _, a := range appointments {
		if a.DoctorID != doctorID || !domain.SameDay(a.Start.Time, date) {
			continue
		}
		summary.AppointmentCount++
		patients[a.PatientID] = struct{}{}
	}

	summary.PatientCount = len(patients)
	return summary
}

// AppointmentsOn keeps the appointments starting on date, in their original order.
func AppointmentsOn(date time.Time, appointments []domain.Appointment) []domain.Appointment {
	var out []domain.Appointment
	for _, a := range appointments {
		if domain.SameDay(a.Start.Time, date) {
			out = append(out, a)
		}
	}
	return out
}

func appointmentsFor(doctorID string, appointments []domain.Appointment) []domain.Appointment {
	var out []domain.Appointment
	for _, a := range appointments {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out
}

// ColumnDoctors returns the doctors that get a column. Without a directory
// the columns come from the doctors referenced by the appointments.
func ColumnDoctors(doctors []domain.Doctor, appointments []domain.Appointment, doctorFilter string) []domain.Doctor {
	if len(doctors) == 0 {
		seen := make(map[string]struct{})
		for _, a := range appointments {
			if _, ok := seen[a.DoctorID]; ok || a.DoctorID == "" {
				continue
			}
			seen[a.DoctorID] = struct{}{}
			doctors = append(doctors, domain.Doctor{ID: a.DoctorID})
		}
		sort.Slice(doctors, func(i, j int) bool { return doctors[i].ID < doctors[j].ID })
	}

	if doctorFilter == "" {
		return doctors
	}

	for _, d := range doctors {
		if d.ID == doctorFilter {
			return []domain.Doctor{d}
		}
	}
	return []domain.Doctor{{ID: doctorFilter}}
}
