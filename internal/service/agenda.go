package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/internal/metrics"
	"github.com/JBorrsad/odoonto-mobile/internal/repository"
	"github.com/JBorrsad/odoonto-mobile/internal/schedule"
)

// Agenda owns the appointments shown by one open view. Every mutation goes to
// the backend first and is followed by a full reload of the visible range.
type Agenda struct {
	id          string
	repo        repository.AppointmentRepository
	journal     repository.JournalRepository
	notifier    Notifier
	metrics     *metrics.AgendaMetrics
	navigator   *schedule.Navigator
	transitions schedule.TransitionPolicy
	clock       schedule.Clock
	logger      *zap.Logger
	guard       *keyedGuard

	mu           sync.RWMutex
	state        domain.NavigationState
	doctorID     string
	appointments []domain.Appointment
	generation   uint64
	loadSeq      uint64
	lastError    string
	loadedAt     time.Time
	lastUsed     time.Time
}

type AgendaOptions struct {
	ID          string
	State       domain.NavigationState
	DoctorID    string
	Repo        repository.AppointmentRepository
	Journal     repository.JournalRepository
	Notifier    Notifier
	Metrics     *metrics.AgendaMetrics
	Navigator   *schedule.Navigator
	Transitions schedule.TransitionPolicy
	// Clock seeds the default navigator. WallClock stamps loads, idle
	// tracking and journal entries.
	Clock     schedule.Clock
	WallClock schedule.Clock
}

func NewAgenda(opts AgendaOptions, logger *zap.Logger) *Agenda {
	if opts.Journal == nil {
		opts.Journal = repository.NopJournal{}
	}
	if opts.Notifier == nil {
		opts.Notifier = NopNotifier{}
	}
	if opts.Clock == nil {
		opts.Clock = schedule.SystemClock{}
	}
	if opts.WallClock == nil {
		opts.WallClock = schedule.SystemClock{}
	}
	if opts.Navigator == nil {
		opts.Navigator = schedule.NewNavigator(opts.Clock)
	}
	if opts.Transitions == nil {
		opts.Transitions = schedule.PermissiveTransitions
	}
	if opts.State.ViewType == "" {
		opts.State.ViewType = domain.ViewTypeDay
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Agenda{
		id:          opts.ID,
		repo:        opts.Repo,
		journal:     opts.Journal,
		notifier:    opts.Notifier,
		metrics:     opts.Metrics,
		navigator:   opts.Navigator,
		transitions: opts.Transitions,
		clock:       opts.WallClock,
		logger:      logger.With(zap.String("viewID", opts.ID)),
		guard:       newKeyedGuard(),
		state:       opts.State,
		doctorID:    opts.DoctorID,
		lastUsed:    opts.WallClock.Now(),
	}
}

// AgendaSnapshot is a consistent copy of the view state.
type AgendaSnapshot struct {
	ID           string                 `json:"id"`
	View         domain.NavigationState `json:"view"`
	DoctorID     string                 `json:"doctorId,omitempty"`
	Appointments []domain.Appointment   `json:"appointments"`
	LastError    string                 `json:"lastError,omitempty"`
	LoadedAt     *time.Time             `json:"loadedAt,omitempty"`
	Busy         []string               `json:"busy"`
	Creating     bool                   `json:"creating"`
}

func (a *Agenda) ID() string {
	return a.id
}

func (a *Agenda) Snapshot() AgendaSnapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snap := AgendaSnapshot{
		ID:           a.id,
		View:         a.state,
		DoctorID:     a.doctorID,
		Appointments: append([]domain.Appointment{}, a.appointments...),
		LastError:    a.lastError,
		Busy:         a.guard.appointmentIDs(),
		Creating:     a.guard.holds(createGuardKey),
	}
	if !a.loadedAt.IsZero() {
		loadedAt := a.loadedAt
		snap.LoadedAt = &loadedAt
	}
	return snap
}

func (a *Agenda) Appointments() []domain.Appointment {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]domain.Appointment{}, a.appointments...)
}

func (a *Agenda) State() domain.NavigationState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *Agenda) DoctorFilter() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doctorID
}

// Board lays out the current collection for the given doctor directory.
func (a *Agenda) Board(doctors []domain.Doctor) schedule.Board {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return schedule.BuildBoard(a.state, doctors, a.appointments, a.doctorID)
}

func (a *Agenda) touch() {
	a.mu.Lock()
	a.lastUsed = a.clock.Now()
	a.mu.Unlock()
}

func (a *Agenda) idleSince() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastUsed
}

func (a *Agenda) filterLocked() domain.AppointmentFilter {
	from, to := schedule.VisibleRange(a.state)
	last := to.Add(-time.Second)
	return domain.AppointmentFilter{
		DoctorID: a.doctorID,
		From:     &from,
		To:       &last,
	}
}

// Reload fetches the visible range again. Only the most recently started
// load is applied: a response that lands after a newer load began, or after
// the view moved, is dropped.
func (a *Agenda) Reload(ctx context.Context) error {
	a.mu.Lock()
	a.loadSeq++
	seq := a.loadSeq
	generation := a.generation
	filter := a.filterLocked()
	a.mu.Unlock()

	appointments, err := a.repo.List(ctx, filter)
	a.metrics.ObserveLifecycle("list", err)
	if err != nil {
		fetchErr := newFetchError("list", err, domain.MsgLoadAppointmentsFailed)
		a.logger.Error("error al cargar citas", zap.Error(err))
		a.mu.Lock()
		if a.loadSeq == seq {
			a.lastError = fetchErr.Message
		}
		a.mu.Unlock()
		return fetchErr
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.generation != generation {
		a.logger.Debug("recarga descartada: la vista cambió", zap.Uint64("generation", generation))
		return nil
	}
	if a.loadSeq != seq {
		a.logger.Debug("recarga descartada: hay una carga más reciente", zap.Uint64("seq", seq))
		return nil
	}

	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	a.appointments = appointments
	a.lastError = ""
	a.loadedAt = a.clock.Now()
	return nil
}

// List reloads and returns the visible appointments. On failure the previous
// collection is kept.
func (a *Agenda) List(ctx context.Context) ([]domain.Appointment, error) {
	if err := a.Reload(ctx); err != nil {
		return a.Appointments(), err
	}
	return a.Appointments(), nil
}

func (a *Agenda) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, err := a.repo.GetByID(ctx, id)
	if err != nil {
		a.logger.Error("error al cargar la cita", zap.String("appointmentID", id), zap.Error(err))
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		return nil, newFetchError("get", err, domain.MsgLoadAppointmentFailed)
	}
	return appointment, nil
}

func (a *Agenda) navigate(ctx context.Context, move func(domain.NavigationState) domain.NavigationState) (domain.NavigationState, error) {
	a.mu.Lock()
	a.state = move(a.state)
	a.generation++
	state := a.state
	a.mu.Unlock()

	return state, a.Reload(ctx)
}

func (a *Agenda) Previous(ctx context.Context) (domain.NavigationState, error) {
	return a.navigate(ctx, a.navigator.Previous)
}

func (a *Agenda) Next(ctx context.Context) (domain.NavigationState, error) {
	return a.navigate(ctx, a.navigator.Next)
}

func (a *Agenda) Today(ctx context.Context) (domain.NavigationState, error) {
	return a.navigate(ctx, a.navigator.Today)
}

func (a *Agenda) SetViewType(ctx context.Context, viewType domain.ViewType) (domain.NavigationState, error) {
	return a.navigate(ctx, func(s domain.NavigationState) domain.NavigationState {
		return a.navigator.SetViewType(s, viewType)
	})
}

func (a *Agenda) GoTo(ctx context.Context, date time.Time) (domain.NavigationState, error) {
	return a.navigate(ctx, func(s domain.NavigationState) domain.NavigationState {
		s.AnchorDate = domain.StartOfDay(date)
		return s
	})
}

func (a *Agenda) SetDoctorFilter(ctx context.Context, doctorID string) (domain.NavigationState, error) {
	return a.navigate(ctx, func(s domain.NavigationState) domain.NavigationState {
		a.doctorID = doctorID
		return s
	})
}

// DraftForSlot prefills the create form for a click on slot of the anchor day.
func (a *Agenda) DraftForSlot(req domain.SlotClickRequest) (domain.AppointmentForm, error) {
	if req.Slot == nil {
		return domain.AppointmentForm{}, domain.ErrInvalidSlot
	}
	return schedule.DraftForSlot(a.State().AnchorDate, *req.Slot, req.DoctorID, req.PatientID)
}

func (a *Agenda) EditForm(ctx context.Context, id string) (domain.AppointmentForm, error) {
	current, err := a.current(ctx, id)
	if err != nil {
		return domain.AppointmentForm{}, err
	}
	return schedule.DraftFromAppointment(*current), nil
}

func (a *Agenda) CreateFromForm(ctx context.Context, form domain.AppointmentForm) (*domain.Appointment, error) {
	appointment, err := schedule.FormToAppointment(form)
	if err != nil {
		return nil, err
	}
	return a.Create(ctx, appointment)
}

func (a *Agenda) UpdateFromForm(ctx context.Context, id string, form domain.AppointmentForm) (*domain.Appointment, error) {
	patch, err := schedule.FormToPatch(form)
	if err != nil {
		return nil, err
	}
	return a.Update(ctx, id, patch)
}

// Create sends a new appointment. New appointments always start PENDING.
func (a *Agenda) Create(ctx context.Context, draft domain.Appointment) (*domain.Appointment, error) {
	release, ok := a.guard.acquire(createGuardKey)
	if !ok {
		return nil, domain.ErrOperationInProgress
	}
	defer release()

	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	draft.ID = ""
	if draft.Status == "" {
		draft.Status = domain.AppointmentStatusPending
	}

	generation := a.currentGeneration()
	created, err := a.repo.Create(ctx, draft)
	a.metrics.ObserveLifecycle("create", err)
	if err != nil {
		mutationErr := newMutationError("create", err, domain.MsgCreateAppointmentFailed)
		a.logger.Error("error al crear la cita",
			zap.String("doctorID", draft.DoctorID),
			zap.String("patientID", draft.PatientID),
			zap.Error(err),
		)
		a.setLastError(mutationErr.Message)
		return nil, mutationErr
	}
	if created.Status == "" {
		created.Status = domain.AppointmentStatusPending
	}

	a.applyLocal(generation, func(list []domain.Appointment) []domain.Appointment {
		return append(list, *created)
	})
	a.afterMutation(ctx, domain.JournalOperationCreate, *created, "")

	return created, nil
}

// Update applies a partial change. Appointments cannot move to another doctor
// or patient.
func (a *Agenda) Update(ctx context.Context, id string, patch domain.AppointmentPatch) (*domain.Appointment, error) {
	release, ok := a.guard.acquire(appointmentKey(id))
	if !ok {
		return nil, domain.ErrOperationInProgress
	}
	defer release()

	current, err := a.current(ctx, id)
	if err != nil {
		return nil, a.mutationLookupError("update", id, err, domain.MsgUpdateAppointmentFailed)
	}
	if err := validatePatch(*current, patch); err != nil {
		return nil, err
	}
	if patch.Status != nil {
		if err := a.transitions(current.Status, *patch.Status); err != nil {
			return nil, err
		}
	}

	generation := a.currentGeneration()
	updated, err := a.repo.Update(ctx, id, patch)
	a.metrics.ObserveLifecycle("update", err)
	if err != nil {
		mutationErr := newMutationError("update", err, domain.MsgUpdateAppointmentFailed)
		a.logger.Error("error al actualizar la cita", zap.String("appointmentID", id), zap.Error(err))
		a.setLastError(mutationErr.Message)
		return nil, mutationErr
	}
	if updated == nil {
		updated = applyPatch(*current, patch)
	}

	a.applyLocal(generation, replaceIn(*updated))
	a.afterMutation(ctx, domain.JournalOperationUpdate, *updated, "")

	return updated, nil
}

func (a *Agenda) ChangeStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	return a.Update(ctx, id, domain.AppointmentPatch{Status: &status})
}

func (a *Agenda) Delete(ctx context.Context, id string) error {
	release, ok := a.guard.acquire(appointmentKey(id))
	if !ok {
		return domain.ErrOperationInProgress
	}
	defer release()

	generation := a.currentGeneration()
	err := a.repo.Delete(ctx, id)
	a.metrics.ObserveLifecycle("delete", err)
	if err != nil {
		mutationErr := newMutationError("delete", err, domain.MsgDeleteAppointmentFailed)
		a.logger.Error("error al eliminar la cita", zap.String("appointmentID", id), zap.Error(err))
		a.setLastError(mutationErr.Message)
		return mutationErr
	}

	removed := domain.Appointment{ID: id}
	a.applyLocal(generation, func(list []domain.Appointment) []domain.Appointment {
		out := list[:0:0]
		for _, item := range list {
			if item.ID == id {
				removed = item
				continue
			}
			out = append(out, item)
		}
		return out
	})
	a.afterMutation(ctx, domain.JournalOperationDelete, removed, "")

	return nil
}

func (a *Agenda) Confirm(ctx context.Context, id string) (*domain.Appointment, error) {
	release, ok := a.guard.acquire(appointmentKey(id))
	if !ok {
		return nil, domain.ErrOperationInProgress
	}
	defer release()

	current, err := a.current(ctx, id)
	if err != nil {
		return nil, a.mutationLookupError("confirm", id, err, domain.MsgConfirmAppointmentFailed)
	}
	if err := a.transitions(current.Status, domain.AppointmentStatusConfirmed); err != nil {
		return nil, err
	}

	generation := a.currentGeneration()
	confirmed, err := a.repo.Confirm(ctx, id)
	a.metrics.ObserveLifecycle("confirm", err)
	if err != nil {
		mutationErr := newMutationError("confirm", err, domain.MsgConfirmAppointmentFailed)
		a.logger.Error("error al confirmar la cita", zap.String("appointmentID", id), zap.Error(err))
		a.setLastError(mutationErr.Message)
		return nil, mutationErr
	}
	if confirmed == nil {
		confirmed = applyPatch(*current, domain.AppointmentPatch{
			Status: domain.PointerTo(domain.AppointmentStatusConfirmed),
		})
	}

	a.applyLocal(generation, replaceIn(*confirmed))
	a.afterMutation(ctx, domain.JournalOperationConfirm, *confirmed, "")

	return confirmed, nil
}

// Cancel marks the appointment cancelled. Whether it is still listed
// afterwards is up to the backend.
func (a *Agenda) Cancel(ctx context.Context, id, reason string) error {
	release, ok := a.guard.acquire(appointmentKey(id))
	if !ok {
		return domain.ErrOperationInProgress
	}
	defer release()

	current, err := a.current(ctx, id)
	if err != nil {
		return a.mutationLookupError("cancel", id, err, domain.MsgCancelAppointmentFailed)
	}
	if err := a.transitions(current.Status, domain.AppointmentStatusCancelled); err != nil {
		return err
	}

	generation := a.currentGeneration()
	err = a.repo.Cancel(ctx, id, reason)
	a.metrics.ObserveLifecycle("cancel", err)
	if err != nil {
		mutationErr := newMutationError("cancel", err, domain.MsgCancelAppointmentFailed)
		a.logger.Error("error al cancelar la cita", zap.String("appointmentID", id), zap.Error(err))
		a.setLastError(mutationErr.Message)
		return mutationErr
	}

	cancelled := applyPatch(*current, domain.AppointmentPatch{
		Status: domain.PointerTo(domain.AppointmentStatusCancelled),
	})
	a.applyLocal(generation, replaceIn(*cancelled))
	a.afterMutation(ctx, domain.JournalOperationCancel, *cancelled, reason)

	return nil
}

// current finds the appointment in the loaded collection or asks the backend.
func (a *Agenda) current(ctx context.Context, id string) (*domain.Appointment, error) {
	a.mu.RLock()
	for _, item := range a.appointments {
		if item.ID == id {
			found := item
			a.mu.RUnlock()
			return &found, nil
		}
	}
	a.mu.RUnlock()

	return a.Get(ctx, id)
}

func (a *Agenda) mutationLookupError(op, id string, err error, fallback string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		return &domain.MutationError{Op: op, Message: fallback, StatusCode: fetchErr.StatusCode, Err: err}
	}
	return fmt.Errorf("%s %s: %w", op, id, err)
}

func (a *Agenda) currentGeneration() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.generation
}

func (a *Agenda) setLastError(message string) {
	a.mu.Lock()
	a.lastError = message
	a.mu.Unlock()
}

// applyLocal records the operation's own response, unless the view moved.
func (a *Agenda) applyLocal(generation uint64, apply func([]domain.Appointment) []domain.Appointment) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.generation != generation {
		return
	}
	a.appointments = apply(a.appointments)
}

func (a *Agenda) afterMutation(ctx context.Context, op domain.JournalOperation, appointment domain.Appointment, detail string) {
	now := a.clock.Now()

	entry := domain.JournalEntry{
		AppointmentID: appointment.ID,
		Operation:     op,
		Status:        appointment.Status,
		ViewID:        a.id,
		Actor:         actorFrom(ctx),
		Detail:        detail,
		OccurredAt:    now,
	}
	if err := a.journal.Append(ctx, entry); err != nil {
		a.logger.Warn("no se pudo registrar la operación en el historial",
			zap.String("appointmentID", appointment.ID),
			zap.String("operation", string(op)),
			zap.Error(err),
		)
	}

	event := domain.ChangeEvent{
		Type:          domain.EventAppointmentsChanged,
		AppointmentID: appointment.ID,
		Operation:     op,
		DoctorID:      appointment.DoctorID,
		ViewID:        a.id,
		OccurredAt:    now,
	}
	if !appointment.Start.IsZero() {
		event.Date = appointment.Start.In(time.Local).Format(domain.DateLayout)
	}
	a.notifier.Publish(event)

	if err := a.Reload(ctx); err != nil {
		a.logger.Warn("la operación se completó pero la recarga falló",
			zap.String("appointmentID", appointment.ID),
			zap.String("operation", string(op)),
			zap.Error(err),
		)
	}
}

func replaceIn(updated domain.Appointment) func([]domain.Appointment) []domain.Appointment {
	return func(list []domain.Appointment) []domain.Appointment {
		out := make([]domain.Appointment, len(list))
		copy(out, list)
		for i := range out {
			if out[i].ID == updated.ID {
				out[i] = updated
			}
		}
		return out
	}
}

func validateDraft(draft domain.Appointment) error {
	verr := domain.NewValidationError()
	if draft.PatientID == "" {
		verr.Add(schedule.FieldPatient, "El paciente es obligatorio")
	}
	if draft.DoctorID == "" {
		verr.Add(schedule.FieldDoctor, "El doctor es obligatorio")
	}
	if draft.Start.IsZero() {
		verr.Add(schedule.FieldTime, "La hora es obligatoria")
	}
	if draft.End != nil && !draft.End.IsZero() && draft.End.Before(draft.Start.Time) {
		verr.Add("end", "La hora de fin no puede ser anterior al inicio")
	}
	if draft.Status != "" && !draft.Status.Valid() {
		verr.Add(schedule.FieldStatus, "El estado no es válido")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

func validatePatch(current domain.Appointment, patch domain.AppointmentPatch) error {
	verr := domain.NewValidationError()
	if patch.DoctorID != nil && *patch.DoctorID != current.DoctorID {
		verr.Add(schedule.FieldDoctor, "No se puede cambiar el doctor de una cita")
	}
	if patch.PatientID != nil && *patch.PatientID != current.PatientID {
		verr.Add(schedule.FieldPatient, "No se puede cambiar el paciente de una cita")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		verr.Add(schedule.FieldStatus, "El estado no es válido")
	}

	start := current.Start
	if patch.Start != nil {
		start = *patch.Start
	}
	end := current.End
	if patch.End != nil {
		end = patch.End
	}
	if end != nil && !end.IsZero() && end.Before(start.Time) {
		verr.Add("end", "La hora de fin no puede ser anterior al inicio")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func applyPatch(current domain.Appointment, patch domain.AppointmentPatch) *domain.Appointment {
	out := current
	if patch.Start != nil {
		out.Start = *patch.Start
	}
	if patch.End != nil {
		out.End = patch.End
	}
	if patch.Status != nil {
		out.Status = *patch.Status
	}
	if patch.Treatment != nil {
		out.Treatment = *patch.Treatment
	}
	if patch.Notes != nil {
		out.Notes = *patch.Notes
	}
	if patch.DurationSlots != nil {
		out.DurationSlots = patch.DurationSlots
	}
	return &out
}
