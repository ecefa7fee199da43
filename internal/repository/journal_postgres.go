package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

const defaultJournalLimit = 100

type JournalRepo struct {
	db DBTX
}

func NewJournalRepository(db DBTX) *JournalRepo {
	return &JournalRepo{
		db: db,
	}
}

func (r *JournalRepo) Append(ctx context.Context, entry domain.JournalEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	query := `
		INSERT INTO appointment_journal (id, appointment_id, operation, status, view_id, actor, detail, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.AppointmentID,
		string(entry.Operation),
		string(entry.Status),
		entry.ViewID,
		entry.Actor,
		entry.Detail,
		entry.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}

	return nil
}

func (r *JournalRepo) ListByAppointment(ctx context.Context, appointmentID string, limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = defaultJournalLimit
	}

	query := `
		SELECT id, appointment_id, operation, status, view_id, actor, detail, occurred_at
		FROM appointment_journal
		WHERE appointment_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, appointmentID, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var (
			entry     domain.JournalEntry
			operation string
			status    string
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.AppointmentID,
			&operation,
			&status,
			&entry.ViewID,
			&entry.Actor,
			&entry.Detail,
			&entry.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entry.Operation = domain.JournalOperation(operation)
		entry.Status = domain.AppointmentStatus(status)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}

	return entries, nil
}

// NopJournal is used when no database is configured.
type NopJournal struct{}

func (NopJournal) Append(context.Context, domain.JournalEntry) error {
	return nil
}

func (NopJournal) ListByAppointment(context.Context, string, int) ([]domain.JournalEntry, error) {
	return []domain.JournalEntry{}, nil
}
