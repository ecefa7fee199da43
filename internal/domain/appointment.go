package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending     AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed   AppointmentStatus = "CONFIRMED"
	AppointmentStatusWaitingRoom AppointmentStatus = "WAITING_ROOM"
	AppointmentStatusInProgress  AppointmentStatus = "IN_PROGRESS"
	AppointmentStatusCompleted   AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled   AppointmentStatus = "CANCELLED"
)

const (
	DefaultTreatment = "Consulta"
	SlotDuration     = 30 * time.Minute
)

// AppointmentStatuses lists every lifecycle state in display order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusWaitingRoom,
	AppointmentStatusInProgress,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

var statusAliases = map[string]AppointmentStatus{
	"PENDIENTE":  AppointmentStatusPending,
	"CONFIRMADA": AppointmentStatusConfirmed,
	"EN_SALA":    AppointmentStatusWaitingRoom,
	"EN_CURSO":   AppointmentStatusInProgress,
	"COMPLETADA": AppointmentStatusCompleted,
	"CANCELADA":  AppointmentStatusCancelled,
}

var statusLabels = map[AppointmentStatus]string{
	AppointmentStatusPending:     "Sin confirmar",
	AppointmentStatusConfirmed:   "Confirmada",
	AppointmentStatusWaitingRoom: "En sala de espera",
	AppointmentStatusInProgress:  "En curso",
	AppointmentStatusCompleted:   "Completada",
	AppointmentStatusCancelled:   "Cancelada",
}

// ParseAppointmentStatus accepts the canonical values and the Spanish aliases
// still emitted by older backends.
func ParseAppointmentStatus(value string) (AppointmentStatus, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if alias, ok := statusAliases[normalized]; ok {
		return alias, nil
	}

	status := AppointmentStatus(normalized)
	if !status.Valid() {
		return "", fmt.Errorf("estado de cita desconocido: %q", value)
	}

	return status, nil
}

func (s AppointmentStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s AppointmentStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s *AppointmentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if parsed, err := ParseAppointmentStatus(raw); err == nil {
		*s = parsed
		return nil
	}

	// unknown values are kept so they can still be displayed
	*s = AppointmentStatus(raw)
	return nil
}

type Appointment struct {
	ID            string            `json:"id,omitempty"`
	PatientID     string            `json:"patientId"`
	DoctorID      string            `json:"doctorId"`
	Start         Timestamp         `json:"start"`
	End           *Timestamp        `json:"end,omitempty"`
	Status        AppointmentStatus `json:"status"`
	Treatment     string            `json:"treatment,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	PatientName   string            `json:"patientName,omitempty"`
	DurationSlots *int              `json:"durationSlots,omitempty"`
}

// EffectiveEnd returns End, or Start plus one slot when the backend sent none.
func (a Appointment) EffectiveEnd() time.Time {
	if a.End != nil && !a.End.IsZero() {
		return a.End.Time
	}
	return a.Start.Add(SlotDuration)
}

func (a Appointment) TreatmentOrDefault() string {
	if strings.TrimSpace(a.Treatment) == "" {
		return DefaultTreatment
	}
	return a.Treatment
}

func (a Appointment) DisplayPatient() string {
	if a.PatientName != "" {
		return a.PatientName
	}
	return a.PatientID
}

// Duration in slots: the stored value when present, otherwise derived from
// the span between Start and End, never less than one.
func (a Appointment) SlotCount() int {
	if a.DurationSlots != nil && *a.DurationSlots > 0 {
		return *a.DurationSlots
	}

	slots := int(a.EffectiveEnd().Sub(a.Start.Time) / SlotDuration)
	if slots < 1 {
		return 1
	}
	return slots
}

// AppointmentPatch is the partial update sent with PUT /api/appointments/{id}.
type AppointmentPatch struct {
	PatientID     *string            `json:"patientId,omitempty"`
	DoctorID      *string            `json:"doctorId,omitempty"`
	Start         *Timestamp         `json:"start,omitempty"`
	End           *Timestamp         `json:"end,omitempty"`
	Status        *AppointmentStatus `json:"status,omitempty"`
	Treatment     *string            `json:"treatment,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
	DurationSlots *int               `json:"durationSlots,omitempty"`
}

type AppointmentFilter struct {
	DoctorID  string
	PatientID string
	From      *time.Time
	To        *time.Time
}

func (f AppointmentFilter) Matches(a Appointment) bool {
	if f.DoctorID != "" && a.DoctorID != f.DoctorID {
		return false
	}
	if f.PatientID != "" && a.PatientID != f.PatientID {
		return false
	}
	if f.From != nil && a.Start.Before(*f.From) {
		return false
	}
	if f.To != nil && a.Start.After(*f.To) {
		return false
	}
	return true
}

func PointerTo[T any](v T) *T {
	return &v
}
