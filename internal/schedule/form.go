package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/pkg/validator"
)

const (
	FieldPatient  = "patientId"
	FieldDoctor   = "doctorId"
	FieldDate     = "date"
	FieldTime     = "time"
	FieldDuration = "durationSlots"
	FieldStatus   = "status"
)

const (
	defaultFormTime     = "08:00"
	defaultFormDuration = "1"
)

// NewDraft returns an empty form with the defaults of the create screen.
func NewDraft(date time.Time) domain.AppointmentForm {
	return domain.AppointmentForm{
		Date:          domain.StartOfDay(date).Format(domain.DateLayout),
		Time:          defaultFormTime,
		DurationSlots: defaultFormDuration,
		Status:        string(domain.AppointmentStatusPending),
	}
}

// DraftForSlot prefills the form after a click on an empty cell.
func DraftForSlot(date time.Time, slot int, doctorID, patientID string) (domain.AppointmentForm, error) {
	if !ValidSlot(slot) {
		return domain.AppointmentForm{}, domain.ErrInvalidSlot
	}

	form := NewDraft(date)
	form.DoctorID = doctorID
	form.PatientID = patientID
	form.Time = SlotLabel(slot)
	return form, nil
}

// DraftFromAppointment loads an existing appointment into the edit form.
func DraftFromAppointment(a domain.Appointment) domain.AppointmentForm {
	start := a.Start.In(time.Local)

	status := a.Status
	if status == "" {
		status = domain.AppointmentStatusPending
	}

	return domain.AppointmentForm{
		ID:            a.ID,
		PatientID:     a.PatientID,
		DoctorID:      a.DoctorID,
		Date:          start.Format(domain.DateLayout),
		Time:          start.Format(domain.TimeLayout),
		DurationSlots: strconv.Itoa(a.SlotCount()),
		Status:        string(status),
		Treatment:     a.Treatment,
		Notes:         a.Notes,
	}
}

// ValidateForm checks the draft before anything is sent to the backend. It
// returns nil or a *domain.ValidationError.
func ValidateForm(form domain.AppointmentForm) error {
	verr := domain.NewValidationError()

	if strings.TrimSpace(form.PatientID) == "" {
		verr.Add(FieldPatient, "El paciente es obligatorio")
	}
	if strings.TrimSpace(form.DoctorID) == "" {
		verr.Add(FieldDoctor, "El doctor es obligatorio")
	}

	if strings.TrimSpace(form.Date) == "" {
		verr.Add(FieldDate, "La fecha es obligatoria")
	} else if _, err := domain.ParseDate(strings.TrimSpace(form.Date)); err != nil {
		verr.Add(FieldDate, "La fecha no es válida")
	}

	if strings.TrimSpace(form.Time) == "" {
		verr.Add(FieldTime, "La hora es obligatoria")
	} else if t, err := time.Parse(domain.TimeLayout, strings.TrimSpace(form.Time)); err != nil {
		verr.Add(FieldTime, "La hora no es válida")
	} else if t.Minute() != 0 && t.Minute() != SlotMinutes {
		verr.Add(FieldTime, "La hora debe ser en punto (:00) o media hora (:30)")
	}

	if strings.TrimSpace(form.DurationSlots) == "" {
		verr.Add(FieldDuration, "La duración es obligatoria")
	} else if n, err := strconv.Atoi(strings.TrimSpace(form.DurationSlots)); err != nil || n <= 0 {
		verr.Add(FieldDuration, "La duración debe ser un número entero positivo")
	}

	if strings.TrimSpace(form.Status) != "" {
		if _, err := domain.ParseAppointmentStatus(form.Status); err != nil {
			verr.Add(FieldStatus, "El estado no es válido")
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// FormToAppointment validates the draft and builds the payload: start is
// date plus time, end is start plus the duration in slots.
func FormToAppointment(form domain.AppointmentForm) (domain.Appointment, error) {
	if err := ValidateForm(form); err != nil {
		return domain.Appointment{}, err
	}

	start, err := time.ParseInLocation(
		domain.DateLayout+" "+domain.TimeLayout,
		strings.TrimSpace(form.Date)+" "+strings.TrimSpace(form.Time),
		time.Local,
	)
	if err != nil {
		verr := domain.NewValidationError()
		verr.Add(FieldTime, "La hora no es válida")
		return domain.Appointment{}, verr
	}

	slots, _ := strconv.Atoi(strings.TrimSpace(form.DurationSlots))
	end := domain.NewTimestamp(start.Add(time.Duration(slots) * domain.SlotDuration))

	status := domain.AppointmentStatusPending
	if strings.TrimSpace(form.Status) != "" {
		status, _ = domain.ParseAppointmentStatus(form.Status)
	}

	return domain.Appointment{
		ID:            form.ID,
		PatientID:     strings.TrimSpace(form.PatientID),
		DoctorID:      strings.TrimSpace(form.DoctorID),
		Start:         domain.NewTimestamp(start),
		End:           &end,
		Status:        status,
		Treatment:     validator.CollapseSpaces(validator.SanitizeText(form.Treatment)),
		Notes:         validator.SanitizeText(form.Notes),
		DurationSlots: domain.PointerTo(slots),
	}, nil
}

// FormToPatch builds the partial update sent when an edit form is saved.
func FormToPatch(form domain.AppointmentForm) (domain.AppointmentPatch, error) {
	a, err := FormToAppointment(form)
	if err != nil {
		return domain.AppointmentPatch{}, err
	}

	patch := domain.AppointmentPatch{
		PatientID:     domain.PointerTo(a.PatientID),
		DoctorID:      domain.PointerTo(a.DoctorID),
		Start:         domain.PointerTo(a.Start),
		End:           a.End,
		Status:        domain.PointerTo(a.Status),
		Notes:         domain.PointerTo(a.Notes),
		DurationSlots: a.DurationSlots,
	}
	if a.Treatment != "" {
		patch.Treatment = domain.PointerTo(a.Treatment)
	}
	return patch, nil
}

type DurationOption struct {
	Slots int    `json:"slots"`
	Label string `json:"label"`
}

// DurationOptions lists the durations offered by the form picker.
func DurationOptions() []DurationOption {
	options := make([]DurationOption, 0, 6)
	for slots := 1; slots <= 6; slots++ {
		options = append(options, DurationOption{Slots: slots, Label: DurationLabel(slots)})
	}
	return options
}
