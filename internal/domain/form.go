package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AppointmentForm is the editable draft behind the create/edit form. Values
// stay as text until validation converts them.
type AppointmentForm struct {
	ID            string `json:"id,omitempty"`
	PatientID     string `json:"patientId"`
	DoctorID      string `json:"doctorId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	DurationSlots string `json:"durationSlots"`
	Status        string `json:"status"`
	Treatment     string `json:"treatment,omitempty"`
	Notes         string `json:"notes"`
}

// UnmarshalJSON accepts durationSlots either as text or as a JSON number.
func (f *AppointmentForm) UnmarshalJSON(data []byte) error {
	type plain AppointmentForm
	var raw struct {
		plain
		DurationSlots json.RawMessage `json:"durationSlots"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*f = AppointmentForm(raw.plain)
	f.DurationSlots = ""

	value := bytes.TrimSpace(raw.DurationSlots)
	switch {
	case len(value) == 0 || bytes.Equal(value, []byte("null")):
	case value[0] == '"':
		if err := json.Unmarshal(value, &f.DurationSlots); err != nil {
			return fmt.Errorf("durationSlots: %w", err)
		}
	default:
		var n json.Number
		if err := json.Unmarshal(value, &n); err != nil {
			return fmt.Errorf("durationSlots: %w", err)
		}
		f.DurationSlots = n.String()
	}
	return nil
}

type FormOptions struct {
	Doctors  []Doctor       `json:"doctors"`
	Patients []Patient      `json:"patients"`
	Statuses []StatusOption `json:"statuses"`
}

type StatusOption struct {
	Value AppointmentStatus `json:"value"`
	Label string            `json:"label"`
}

type SlotClickRequest struct {
	DoctorID  string `json:"doctorId" binding:"required"`
	Slot      *int   `json:"slot" binding:"required"`
	PatientID string `json:"patientId"`
}

type StatusChangeRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}
