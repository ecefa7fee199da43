package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/JBorrsad/odoonto-mobile/internal/cache"
	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/internal/repository"
)

// DirectoryServiceImpl serves the doctor and patient listings used by the
// form and the column headers.
type DirectoryServiceImpl struct {
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
	cache       *cache.DirectoryCache
	logger      *zap.Logger
}

func NewDirectoryService(
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	cache *cache.DirectoryCache,
	logger *zap.Logger,
) *DirectoryServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryServiceImpl{
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *DirectoryServiceImpl) Doctors(ctx context.Context) ([]domain.Doctor, error) {
	doctors, ok, err := s.cache.Doctors(ctx)
	if err != nil {
		s.logger.Warn("error al leer doctores de la caché", zap.Error(err))
	}
	if ok {
		return doctors, nil
	}

	doctors, err = s.doctorRepo.List(ctx)
	if err != nil {
		s.logger.Error("error al cargar doctores", zap.Error(err))
		return nil, newFetchError("doctors", err, domain.MsgLoadDataFailed)
	}

	if err := s.cache.SetDoctors(ctx, doctors); err != nil {
		s.logger.Warn("error al guardar doctores en la caché", zap.Error(err))
	}
	return doctors, nil
}

func (s *DirectoryServiceImpl) Patients(ctx context.Context) ([]domain.Patient, error) {
	patients, ok, err := s.cache.Patients(ctx)
	if err != nil {
		s.logger.Warn("error al leer pacientes de la caché", zap.Error(err))
	}
	if ok {
		return patients, nil
	}

	patients, err = s.patientRepo.List(ctx)
	if err != nil {
		s.logger.Error("error al cargar pacientes", zap.Error(err))
		return nil, newFetchError("patients", err, domain.MsgLoadDataFailed)
	}

	if err := s.cache.SetPatients(ctx, patients); err != nil {
		s.logger.Warn("error al guardar pacientes en la caché", zap.Error(err))
	}
	return patients, nil
}

// FormOptions loads doctors and patients in parallel.
func (s *DirectoryServiceImpl) FormOptions(ctx context.Context) (*domain.FormOptions, error) {
	var (
		doctors  []domain.Doctor
		patients []domain.Patient
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doctors, err = s.Doctors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		patients, err = s.Patients(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	statuses := make([]domain.StatusOption, 0, len(domain.AppointmentStatuses))
	for _, status := range domain.AppointmentStatuses {
		statuses = append(statuses, domain.StatusOption{Value: status, Label: status.Label()})
	}

	return &domain.FormOptions{
		Doctors:  doctors,
		Patients: patients,
		Statuses: statuses,
	}, nil
}

func (s *DirectoryServiceImpl) Refresh(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("error al invalidar la caché del directorio", zap.Error(err))
		return err
	}
	return nil
}
