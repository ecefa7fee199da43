package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrViewNotFound         = errors.New("vista de agenda no encontrada")
	ErrOperationInProgress  = errors.New("ya hay una operación en curso sobre esta cita")
	ErrTransitionNotAllowed = errors.New("cambio de estado no permitido")
	ErrInvalidSlot          = errors.New("la franja está fuera del horario de la agenda")
	ErrInvalidViewType      = errors.New("tipo de vista no válido")
	ErrInvalidCredentials   = errors.New("usuario o contraseña incorrectos")
	ErrExportsDisabled      = errors.New("el almacenamiento de exportaciones no está configurado")
)

// Fallback messages shown when the backend gives no usable error text.
const (
	MsgLoadAppointmentsFailed   = "Error al cargar citas"
	MsgLoadAppointmentFailed    = "Error al cargar la cita"
	MsgCreateAppointmentFailed  = "Error al crear la cita"
	MsgUpdateAppointmentFailed  = "Error al actualizar la cita"
	MsgDeleteAppointmentFailed  = "Error al eliminar la cita"
	MsgConfirmAppointmentFailed = "Error al confirmar la cita"
	MsgCancelAppointmentFailed  = "Error al cancelar la cita"
	MsgLoadDataFailed           = "Error al cargar datos"
)

// FetchError is a failed read against the backend.
type FetchError struct {
	Op         string
	Message    string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MutationError is a failed create/update/delete/confirm/cancel.
type MutationError struct {
	Op         string
	Message    string
	StatusCode int
	Err        error
}

func (e *MutationError) Error() string {
	return e.Message
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// ValidationError holds per-field messages from client-side checks; it never
// reaches the backend.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "datos de la cita no válidos: " + strings.Join(parts, "; ")
}
