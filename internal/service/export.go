package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/internal/schedule"
	"github.com/JBorrsad/odoonto-mobile/internal/storage"
)

const exportLinkTTL = 15 * time.Minute

type ExportResult struct {
	ObjectName string    `json:"objectName"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Rows       int       `json:"rows"`
}

// ExportServiceImpl writes the visible agenda as CSV to object storage.
type ExportServiceImpl struct {
	storage   storage.ObjectStorage
	directory DirectoryService
	clock     schedule.Clock
	logger    *zap.Logger
}

func NewExportService(storage storage.ObjectStorage, directory DirectoryService, clock schedule.Clock, logger *zap.Logger) *ExportServiceImpl {
	if clock == nil {
		clock = schedule.SystemClock{}
	}
	return &ExportServiceImpl{
		storage:   storage,
		directory: directory,
		clock:     clock,
		logger:    logger,
	}
}

func (s *ExportServiceImpl) Export(ctx context.Context, agenda *Agenda) (*ExportResult, error) {
	if s.storage == nil {
		return nil, domain.ErrExportsDisabled
	}

	doctors, err := s.directory.Doctors(ctx)
	if err != nil {
		s.logger.Warn("exportando sin nombres de doctores", zap.Error(err))
		doctors = nil
	}

	data, rows, err := RenderCSV(agenda.Board(doctors))
	if err != nil {
		s.logger.Error("error al generar el CSV de la agenda", zap.String("viewID", agenda.ID()), zap.Error(err))
		return nil, fmt.Errorf("error al generar la exportación: %w", err)
	}

	state := agenda.State()
	objectName := fmt.Sprintf("exports/%s/%s-%s.csv",
		state.AnchorDate.Format(domain.DateLayout),
		state.ViewType,
		uuid.New().String(),
	)

	if err := s.storage.Upload(ctx, data, objectName, "text/csv"); err != nil {
		s.logger.Error("error al subir la exportación", zap.String("object", objectName), zap.Error(err))
		return nil, fmt.Errorf("error al guardar la exportación: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, objectName, exportLinkTTL)
	if err != nil {
		s.logger.Error("error al firmar la URL de la exportación", zap.String("object", objectName), zap.Error(err))
		return nil, fmt.Errorf("error al generar el enlace de descarga: %w", err)
	}

	s.logger.Info("agenda exportada", zap.String("object", objectName), zap.Int("rows", rows))

	return &ExportResult{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  s.clock.Now().Add(exportLinkTTL),
		Rows:       rows,
	}, nil
}

// RenderCSV writes one row per appointment shown on the board, in board order.
func RenderCSV(board schedule.Board) ([]byte, int, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"fecha", "doctor", "inicio", "fin", "paciente", "tratamiento", "estado"}
	if err := w.Write(header); err != nil {
		return nil, 0, err
	}

	rows := 0
	for _, day := range board.Days {
		for _, column := range day.Columns {
			doctor := column.Doctor.FullName
			if doctor == "" {
				doctor = column.Doctor.ID
			}
			for _, cell := range column.Cells {
				if !cell.Head || cell.Entry == nil {
					continue
				}
				entry := cell.Entry
				record := []string{
					day.Date,
					doctor,
					entry.StartTime,
					entry.EndTime,
					entry.PatientName,
					entry.Treatment,
					entry.StatusLabel,
				}
				if err := w.Write(record); err != nil {
					return nil, 0, err
				}
				rows++
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), rows, nil
}
