package domain

import (
	"time"

	"github.com/google/uuid"
)

type JournalOperation string

const (
	JournalOperationCreate  JournalOperation = "create"
	JournalOperationUpdate  JournalOperation = "update"
	JournalOperationDelete  JournalOperation = "delete"
	JournalOperationConfirm JournalOperation = "confirm"
	JournalOperationCancel  JournalOperation = "cancel"
)

// JournalEntry records one successful lifecycle mutation.
type JournalEntry struct {
	ID            uuid.UUID         `json:"id"`
	AppointmentID string            `json:"appointment_id"`
	Operation     JournalOperation  `json:"operation"`
	Status        AppointmentStatus `json:"status,omitempty"`
	ViewID        string            `json:"view_id,omitempty"`
	Actor         string            `json:"actor,omitempty"`
	Detail        string            `json:"detail,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
