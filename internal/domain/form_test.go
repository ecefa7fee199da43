package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentFormDurationSlots(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"patientId":"P1","durationSlots":2}`, "2"},
		{"string", `{"patientId":"P1","durationSlots":"3"}`, "3"},
		{"fraction kept for validation", `{"patientId":"P1","durationSlots":1.5}`, "1.5"},
		{"null", `{"patientId":"P1","durationSlots":null}`, ""},
		{"missing", `{"patientId":"P1"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form AppointmentForm
			require.NoError(t, json.Unmarshal([]byte(tt.body), &form))
			assert.Equal(t, "P1", form.PatientID)
			assert.Equal(t, tt.want, form.DurationSlots)
		})
	}
}

func TestAppointmentFormRejectsOtherDurationShapes(t *testing.T) {
	var form AppointmentForm
	assert.Error(t, json.Unmarshal([]byte(`{"durationSlots":true}`), &form))
	assert.Error(t, json.Unmarshal([]byte(`{"durationSlots":[1]}`), &form))
}

func TestAppointmentFormMarshalKeepsText(t *testing.T) {
	data, err := json.Marshal(AppointmentForm{DoctorID: "D1", DurationSlots: "2"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"durationSlots":"2"`)
}
