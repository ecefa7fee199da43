package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/pkg/apiclient"
)

type Repositories struct {
	Appointment AppointmentRepository
	Doctor      DoctorRepository
	Patient     PatientRepository
	Journal     JournalRepository
}

// NewRepositories wires the backend collaborators. db may be nil, in which
// case the journal is a no-op.
func NewRepositories(client *apiclient.Client, db DBTX) *Repositories {
	repos := &Repositories{
		Appointment: NewAppointmentRepository(client),
		Doctor:      NewDoctorRepository(client),
		Patient:     NewPatientRepository(client),
		Journal:     NopJournal{},
	}
	if db != nil {
		repos.Journal = NewJournalRepository(db)
	}
	return repos
}

// AppointmentRepository covers the appointment endpoints of the clinic backend.
type AppointmentRepository interface {
	GetAll(ctx context.Context) ([]domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Create(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, id string, patch domain.AppointmentPatch) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
	GetByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error)
	GetByDoctorAndDateRange(ctx context.Context, doctorID string, from, to time.Time) ([]domain.Appointment, error)
	Confirm(ctx context.Context, id string) (*domain.Appointment, error)
	Cancel(ctx context.Context, id, reason string) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
}

type DoctorRepository interface {
	List(ctx context.Context) ([]domain.Doctor, error)
}

type PatientRepository interface {
	List(ctx context.Context) ([]domain.Patient, error)
}

type JournalRepository interface {
	Append(ctx context.Context, entry domain.JournalEntry) error
	ListByAppointment(ctx context.Context, appointmentID string, limit int) ([]domain.JournalEntry, error)
}

// DBTX is the subset of pgxpool.Pool the journal needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
