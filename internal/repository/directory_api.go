package repository

import (
	"context"
	"fmt"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/pkg/apiclient"
)

type DoctorAPI struct {
	client *apiclient.Client
}

func NewDoctorRepository(client *apiclient.Client) *DoctorAPI {
	return &DoctorAPI{client: client}
}

func (r *DoctorAPI) List(ctx context.Context) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	if err := r.client.Get(ctx, "doctors.list", "/api/doctors", &doctors); err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

type PatientAPI struct {
	client *apiclient.Client
}

func NewPatientRepository(client *apiclient.Client) *PatientAPI {
	return &PatientAPI{client: client}
}

func (r *PatientAPI) List(ctx context.Context) ([]domain.Patient, error) {
	var patients []domain.Patient
	if err := r.client.Get(ctx, "patients.list", "/api/patients", &patients); err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}
