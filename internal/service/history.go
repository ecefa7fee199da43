package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/internal/repository"
)

type HistoryServiceImpl struct {
	journal repository.JournalRepository
	logger  *zap.Logger
}

func NewHistoryService(journal repository.JournalRepository, logger *zap.Logger) *HistoryServiceImpl {
	if journal == nil {
		journal = repository.NopJournal{}
	}
	return &HistoryServiceImpl{
		journal: journal,
		logger:  logger,
	}
}

func (s *HistoryServiceImpl) List(ctx context.Context, appointmentID string, limit int) ([]domain.JournalEntry, error) {
	entries, err := s.journal.ListByAppointment(ctx, appointmentID, limit)
	if err != nil {
		s.logger.Error("error al leer el historial de la cita", zap.String("appointmentID", appointmentID), zap.Error(err))
		return nil, errors.New("error al cargar el historial de la cita")
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, nil
}
