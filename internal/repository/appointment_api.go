package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/pkg/apiclient"
)

const appointmentsPath = "/api/appointments"

type AppointmentAPI struct {
	client *apiclient.Client
}

func NewAppointmentRepository(client *apiclient.Client) *AppointmentAPI {
	return &AppointmentAPI{
		client: client,
	}
}

func appointmentPath(id string) string {
	return appointmentsPath + "/" + url.PathEscape(id)
}

func (r *AppointmentAPI) GetAll(ctx context.Context) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := r.client.Get(ctx, "appointments.list", appointmentsPath, &appointments); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentAPI) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var appointment domain.Appointment
	if err := r.client.Get(ctx, "appointments.get", appointmentPath(id), &appointment); err != nil {
		if apiclient.IsNotFound(err) {
			return nil, fmt.Errorf("get appointment %s: %w: %w", id, domain.ErrNotFound, err)
		}
		return nil, fmt.Errorf("get appointment %s: %w", id, err)
	}
	return &appointment, nil
}

func (r *AppointmentAPI) Create(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	appointment.ID = ""

	var created domain.Appointment
	if err := r.client.Post(ctx, "appointments.create", appointmentsPath, appointment, &created); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &created, nil
}

func (r *AppointmentAPI) Update(ctx context.Context, id string, patch domain.AppointmentPatch) (*domain.Appointment, error) {
	var updated domain.Appointment
	if err := r.client.Put(ctx, "appointments.update", appointmentPath(id), patch, &updated); err != nil {
		return nil, fmt.Errorf("update appointment %s: %w", id, err)
	}
	if updated.ID == "" {
		return nil, nil
	}
	return &updated, nil
}

func (r *AppointmentAPI) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "appointments.delete", appointmentPath(id)); err != nil {
		return fmt.Errorf("delete appointment %s: %w", id, err)
	}
	return nil
}

func (r *AppointmentAPI) GetByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	path := appointmentsPath + "/patient/" + url.PathEscape(patientID)
	if err := r.client.Get(ctx, "appointments.by_patient", path, &appointments); err != nil {
		return nil, fmt.Errorf("list appointments of patient %s: %w", patientID, err)
	}
	return appointments, nil
}

func (r *AppointmentAPI) GetByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	path := appointmentsPath + "/doctor/" + url.PathEscape(doctorID)
	if err := r.client.Get(ctx, "appointments.by_doctor", path, &appointments); err != nil {
		return nil, fmt.Errorf("list appointments of doctor %s: %w", doctorID, err)
	}
	return appointments, nil
}

func (r *AppointmentAPI) GetByDoctorAndDateRange(ctx context.Context, doctorID string, from, to time.Time) ([]domain.Appointment, error) {
	q := url.Values{}
	q.Set("from", domain.NewTimestamp(from).String())
	q.Set("to", domain.NewTimestamp(to).String())

	var appointments []domain.Appointment
	path := appointmentsPath + "/doctor/" + url.PathEscape(doctorID) + "?" + q.Encode()
	if err := r.client.Get(ctx, "appointments.by_doctor_range", path, &appointments); err != nil {
		return nil, fmt.Errorf("list appointments of doctor %s in range: %w", doctorID, err)
	}
	return appointments, nil
}

func (r *AppointmentAPI) Confirm(ctx context.Context, id string) (*domain.Appointment, error) {
	var confirmed domain.Appointment
	if err := r.client.Put(ctx, "appointments.confirm", appointmentPath(id)+"/confirm", nil, &confirmed); err != nil {
		return nil, fmt.Errorf("confirm appointment %s: %w", id, err)
	}
	if confirmed.ID == "" {
		return nil, nil
	}
	return &confirmed, nil
}

func (r *AppointmentAPI) Cancel(ctx context.Context, id, reason string) error {
	path := appointmentPath(id) + "/cancel"
	if reason != "" {
		path += "?" + url.Values{"reason": []string{reason}}.Encode()
	}
	if err := r.client.Delete(ctx, "appointments.cancel", path); err != nil {
		return fmt.Errorf("cancel appointment %s: %w", id, err)
	}
	return nil
}

// List picks the narrowest endpoint for the filter and applies the rest of
// it locally.
func (r *AppointmentAPI) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	var (
		appointments []domain.Appointment
		err          error
	)

	switch {
	case filter.DoctorID != "" && filter.From != nil && filter.To != nil:
		appointments, err = r.GetByDoctorAndDateRange(ctx, filter.DoctorID, *filter.From, *filter.To)
	case filter.DoctorID != "":
		appointments, err = r.GetByDoctor(ctx, filter.DoctorID)
	case filter.PatientID != "":
		appointments, err = r.GetByPatient(ctx, filter.PatientID)
	default:
		appointments, err = r.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if filter.Matches(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}
