package service

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/internal/repository"
	"github.com/JBorrsad/odoonto-mobile/internal/schedule"
)

var testDay = time.Date(2025, 5, 16, 0, 0, 0, 0, time.Local)

type recordingJournal struct {
	mu      sync.Mutex
	entries []domain.JournalEntry
}

func (j *recordingJournal) Append(_ context.Context, entry domain.JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
	return nil
}

func (j *recordingJournal) ListByAppointment(_ context.Context, appointmentID string, _ int) ([]domain.JournalEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []domain.JournalEntry
	for _, e := range j.entries {
		if e.AppointmentID == appointmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.ChangeEvent
}

func (n *recordingNotifier) Publish(event domain.ChangeEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func newTestAgenda(t *testing.T, backend *fakeBackend, configure ...func(*AgendaOptions)) *Agenda {
	t.Helper()
	repos := newTestRepos(t, backend)

	opts := AgendaOptions{
		ID:    "view-1",
		State: domain.NavigationState{AnchorDate: testDay, ViewType: domain.ViewTypeDay},
		Repo:  repos.Appointment,
		Clock: schedule.FixedClock{At: testDay.Add(9 * time.Hour)},
	}
	for _, fn := range configure {
		fn(&opts)
	}
	return NewAgenda(opts, zap.NewNop())
}

func validForm() domain.AppointmentForm {
	return domain.AppointmentForm{
		PatientID:     "P1",
		DoctorID:      "D1",
		Date:          "2025-05-16",
		Time:          "09:00",
		DurationSlots: "2",
		Status:        string(domain.AppointmentStatusPending),
	}
}

func TestAgenda_CreateReloadsOnce(t *testing.T) {
	backend := newFakeBackend()
	agenda := newTestAgenda(t, backend)
	ctx := context.Background()

	created, err := agenda.CreateFromForm(ctx, validForm())
	require.NoError(t, err)

	lists, posts := backend.counts()
	assert.Equal(t, 1, lists)
	assert.Equal(t, 1, posts)
	assert.Equal(t, domain.AppointmentStatusPending, created.Status)

	appointments := agenda.Appointments()
	require.Len(t, appointments, 1)
	assert.Equal(t, created.ID, appointments[0].ID)
	assert.Equal(t, "2025-05-16T09:00:00", appointments[0].Start.Format(domain.WallClockLayout))
	assert.Equal(t, "2025-05-16T10:00:00", appointments[0].End.Format(domain.WallClockLayout))
}

func TestAgenda_CreateDefaultsToPending(t *testing.T) {
	backend := newFakeBackend()
	agenda := newTestAgenda(t, backend)

	draft := seeded("", "D1", "P1", 10, 0, 1, "")
	created, err := agenda.Create(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusPending, created.Status)
	assert.Equal(t, domain.AppointmentStatusPending, backend.statusOf(created.ID))
}

func TestAgenda_ConfirmOnlyTouchesTarget(t *testing.T) {
	backend := newFakeBackend(
		seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending),
		seeded("2", "D1", "P2", 10, 0, 1, domain.AppointmentStatusPending),
	)
	agenda := newTestAgenda(t, backend)
	ctx := context.Background()

	require.NoError(t, agenda.Reload(ctx))
	backend.resetCounts()

	confirmed, err := agenda.Confirm(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusConfirmed, confirmed.Status)

	lists, _ := backend.counts()
	assert.Equal(t, 1, lists)

	statuses := map[string]domain.AppointmentStatus{}
	for _, a := range agenda.Appointments() {
		statuses[a.ID] = a.Status
	}
	assert.Equal(t, domain.AppointmentStatusConfirmed, statuses["1"])
	assert.Equal(t, domain.AppointmentStatusPending, statuses["2"])
}

func TestAgenda_FailedCreateKeepsCollection(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{
			name:    "backend message",
			status:  http.StatusBadRequest,
			body:    `{"message":"El doctor no atiende ese día"}`,
			message: "El doctor no atiende ese día",
		},
		{
			name:    "fallback",
			status:  http.StatusInternalServerError,
			body:    "",
			message: domain.MsgCreateAppointmentFailed,
		},
		{
			name:    "html body",
			status:  http.StatusBadGateway,
			body:    "<html><body>Bad Gateway</body></html>",
			message: domain.MsgCreateAppointmentFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend(seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending))
			agenda := newTestAgenda(t, backend)
			ctx := context.Background()

			require.NoError(t, agenda.Reload(ctx))
			before := agenda.Appointments()
			backend.resetCounts()
			backend.fail("POST create", tt.status, tt.body)

			_, err := agenda.CreateFromForm(ctx, validForm())
			require.Error(t, err)

			var mutationErr *domain.MutationError
			require.ErrorAs(t, err, &mutationErr)
			assert.Equal(t, tt.message, mutationErr.Message)
			assert.Equal(t, tt.status, mutationErr.StatusCode)

			assert.Equal(t, before, agenda.Appointments())
			assert.Equal(t, tt.message, agenda.Snapshot().LastError)

			lists, _ := backend.counts()
			assert.Zero(t, lists)
		})
	}
}

func TestAgenda_FailedReloadKeepsCollection(t *testing.T) {
	backend := newFakeBackend(seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending))
	agenda := newTestAgenda(t, backend)
	ctx := context.Background()

	require.NoError(t, agenda.Reload(ctx))
	backend.fail("GET list", http.StatusServiceUnavailable, "<html>down</html>")

	appointments, err := agenda.List(ctx)
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.MsgLoadAppointmentsFailed, fetchErr.Message)
	assert.Len(t, appointments, 1)
	assert.Equal(t, domain.MsgLoadAppointmentsFailed, agenda.Snapshot().LastError)
}

func TestAgenda_InvalidFormNeverReachesBackend(t *testing.T) {
	backend := newFakeBackend()
	agenda := newTestAgenda(t, backend)

	form := validForm()
	form.Time = "08:15"

	_, err := agenda.CreateFromForm(context.Background(), form)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, schedule.FieldTime)

	_, posts := backend.counts()
	assert.Zero(t, posts)
}

func TestAgenda_UpdateRejectsReassignment(t *testing.T) {
	backend := newFakeBackend(seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending))
	agenda := newTestAgenda(t, backend)
	ctx := context.Background()
	require.NoError(t, agenda.Reload(ctx))

	_, err := agenda.Update(ctx, "1", domain.AppointmentPatch{DoctorID: domain.PointerTo("D2")})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, schedule.FieldDoctor)

	_, err = agenda.Update(ctx, "1", domain.AppointmentPatch{PatientID: domain.PointerTo("P9")})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, schedule.FieldPatient)
}

func TestAgenda_UpdateFromForm(t *testing.T) {
	backend := newFakeBackend(seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending))
	agenda := newTestAgenda(t, backend)
	ctx := context.Background()
	require.NoError(t, agenda.Reload(ctx))

	form, err := agenda.EditForm(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "09:00", form.Time)
	assert.Equal(t, "1", form.DurationSlots)

	form.Time = "11:30"
	form.DurationSlots = "3"
	form.Treatment = "Limpieza"

	updated, err := agenda.UpdateFromForm(ctx, "1", form)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-16T11:30:00", updated.Start.Format(domain.WallClockLayout))
	assert.Equal(t, "2025-05-16T13:00:00", updated.End.Format(domain.WallClockLayout))
	assert.Equal(t, "Limpieza", updated.Treatment)
}

func TestAgenda_GuardedTransitions(t *testing.T) {
	backend := newFakeBackend(
		seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusCompleted),
		seeded("2", "D1", "P2", 10, 0, 1, domain.AppointmentStatusPending),
	)
	agenda := newTestAgenda(t, backend, func(o *AgendaOptions) {
		o.Transitions = schedule.GuardedTransitions
	})
	ctx := context.Background()
	require.NoError(t, agenda.Reload(ctx))

	_, err := agenda.Confirm(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrTransitionNotAllowed)
	assert.Equal(t, domain.AppointmentStatusCompleted, backend.statusOf("1"))

	_, err = agenda.ChangeStatus(ctx, "2", domain.AppointmentStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrTransitionNotAllowed)

	_, err = agenda.ChangeStatus(ctx, "2", domain.AppointmentStatusWaitingRoom)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusWaitingRoom, backend.statusOf("2"))
}

func TestAgenda_BusyAppointmentRejectsSecondMutation(t *testing.T) {
	backend := newFakeBackend(
		seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending),
		seeded("2", "D1", "P2", 10, 0, 1, domain.AppointmentStatusPending),
	)
	agenda := newTestAgenda(t, backend)
	ctx := context.Background()
	require.NoError(t, agenda.Reload(ctx))

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	backend.hook("PUT confirm", func() {
		once.Do(func() {
			close(entered)
			<-release
		})
	})

	done := make(chan error, 1)
	go func() {
		_, err := agenda.Confirm(ctx, "1")
		done <- err
	}()
	<-entered

	_, err := agenda.Confirm(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrOperationInProgress)
	assert.ErrorIs(t, agenda.Delete(ctx, "1"), domain.ErrOperationInProgress)
	assert.Equal(t, []string{"1"}, agenda.Snapshot().Busy)

	// other appointments stay available
	require.NoError(t, agenda.Cancel(ctx, "2", ""))

	close(release)
	require.NoError(t, <-done)
	assert.Empty(t, agenda.Snapshot().Busy)
	assert.Equal(t, domain.AppointmentStatusConfirmed, backend.statusOf("1"))
}

func TestAgenda_StaleReloadIsDiscarded(t *testing.T) {
	backend := newFakeBackend(seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending))
	agenda := newTestAgenda(t, backend)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	backend.hook("GET list", func() {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(entered)
			<-release
		}
	})

	done := make(chan error, 1)
	go func() { done <- agenda.Reload(ctx) }()
	<-entered

	state, err := agenda.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, testDay.AddDate(0, 0, 1), state.AnchorDate)

	close(release)
	require.NoError(t, <-done)

	assert.Empty(t, agenda.Appointments())
}

func TestAgenda_DeleteAndCancel(t *testing.T) {
	backend := newFakeBackend(
		seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending),
		seeded("2", "D1", "P2", 10, 0, 1, domain.AppointmentStatusConfirmed),
	)
	journal := &recordingJournal{}
	notifier := &recordingNotifier{}
	agenda := newTestAgenda(t, backend, func(o *AgendaOptions) {
		o.Journal = journal
		o.Notifier = notifier
	})
	ctx := WithActor(context.Background(), "recepcion")
	require.NoError(t, agenda.Reload(ctx))

	require.NoError(t, agenda.Delete(ctx, "1"))
	require.NoError(t, agenda.Cancel(ctx, "2", "El paciente avisó"))

	appointments := agenda.Appointments()
	require.Len(t, appointments, 1)
	assert.Equal(t, "2", appointments[0].ID)
	assert.Equal(t, domain.AppointmentStatusCancelled, appointments[0].Status)

	require.Len(t, journal.entries, 2)
	assert.Equal(t, domain.JournalOperationDelete, journal.entries[0].Operation)
	assert.Equal(t, domain.JournalOperationCancel, journal.entries[1].Operation)
	assert.Equal(t, "El paciente avisó", journal.entries[1].Detail)
	assert.Equal(t, "recepcion", journal.entries[1].Actor)
	assert.Equal(t, "view-1", journal.entries[1].ViewID)

	require.Len(t, notifier.events, 2)
	assert.Equal(t, domain.EventAppointmentsChanged, notifier.events[0].Type)
	assert.Equal(t, "2025-05-16", notifier.events[1].Date)
	assert.Equal(t, "D1", notifier.events[1].DoctorID)
}

func TestAgenda_MutationOnUnknownAppointment(t *testing.T) {
	backend := newFakeBackend()
	agenda := newTestAgenda(t, backend)

	_, err := agenda.Confirm(context.Background(), "404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAgenda_NavigationAndFilter(t *testing.T) {
	backend := newFakeBackend(
		seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending),
		seeded("2", "D2", "P2", 10, 0, 1, domain.AppointmentStatusPending),
	)
	agenda := newTestAgenda(t, backend)
	ctx := context.Background()

	_, err := agenda.SetDoctorFilter(ctx, "D2")
	require.NoError(t, err)
	appointments := agenda.Appointments()
	require.Len(t, appointments, 1)
	assert.Equal(t, "2", appointments[0].ID)

	_, err = agenda.SetDoctorFilter(ctx, "")
	require.NoError(t, err)
	assert.Len(t, agenda.Appointments(), 2)

	state, err := agenda.SetViewType(ctx, domain.ViewTypeWeek)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewTypeWeek, state.ViewType)
	assert.Len(t, agenda.Appointments(), 2)

	_, err = agenda.Next(ctx)
	require.NoError(t, err)
	assert.Empty(t, agenda.Appointments())

	state, err = agenda.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, testDay, state.AnchorDate)
	assert.Len(t, agenda.Appointments(), 2)
}

func TestAgenda_DraftForSlot(t *testing.T) {
	agenda := newTestAgenda(t, newFakeBackend())

	form, err := agenda.DraftForSlot(domain.SlotClickRequest{DoctorID: "D1", Slot: domain.PointerTo(3)})
	require.NoError(t, err)
	assert.Equal(t, "2025-05-16", form.Date)
	assert.Equal(t, "09:30", form.Time)
	assert.Equal(t, "D1", form.DoctorID)

	_, err = agenda.DraftForSlot(domain.SlotClickRequest{DoctorID: "D1", Slot: domain.PointerTo(25)})
	assert.ErrorIs(t, err, domain.ErrInvalidSlot)
}

// heldListRepo answers the first List with the collection as it was when the
// call started, but only once released.
type heldListRepo struct {
	repository.AppointmentRepository
	entered chan struct{}
	release chan struct{}
	calls   int32
}

func (r *heldListRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	appointments, err := r.AppointmentRepository.List(ctx, filter)
	if atomic.AddInt32(&r.calls, 1) == 1 {
		close(r.entered)
		<-r.release
	}
	return appointments, err
}

func TestAgenda_OlderReloadDoesNotOverwriteNewer(t *testing.T) {
	backend := newFakeBackend(seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending))
	held := &heldListRepo{entered: make(chan struct{}), release: make(chan struct{})}
	agenda := newTestAgenda(t, backend, func(o *AgendaOptions) {
		held.AppointmentRepository = o.Repo
		o.Repo = held
	})
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- agenda.Reload(ctx) }()
	<-held.entered

	form := validForm()
	form.Time = "11:00"
	created, err := agenda.CreateFromForm(ctx, form)
	require.NoError(t, err)
	require.Len(t, agenda.Appointments(), 2)

	close(held.release)
	require.NoError(t, <-done)

	appointments := agenda.Appointments()
	require.Len(t, appointments, 2)
	assert.Equal(t, created.ID, appointments[1].ID)
}

func TestAgenda_CreateGuardDoesNotBlockAppointmentNamedCreate(t *testing.T) {
	backend := newFakeBackend(seeded("create", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending))
	agenda := newTestAgenda(t, backend)
	ctx := context.Background()
	require.NoError(t, agenda.Reload(ctx))

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	backend.hook("POST create", func() {
		once.Do(func() {
			close(entered)
			<-release
		})
	})

	done := make(chan error, 1)
	go func() {
		form := validForm()
		form.Time = "12:00"
		_, err := agenda.CreateFromForm(ctx, form)
		done <- err
	}()
	<-entered

	snap := agenda.Snapshot()
	assert.True(t, snap.Creating)
	assert.Empty(t, snap.Busy)

	_, err := agenda.CreateFromForm(ctx, validForm())
	assert.ErrorIs(t, err, domain.ErrOperationInProgress)

	confirmed, err := agenda.Confirm(ctx, "create")
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusConfirmed, confirmed.Status)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, agenda.Snapshot().Creating)
}

func TestAgenda_WallClockStampsLoadsAndJournal(t *testing.T) {
	backend := newFakeBackend(seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending))
	journal := &recordingJournal{}
	wall := &manualClock{now: time.Date(2026, 3, 2, 17, 45, 0, 0, time.Local)}
	agenda := newTestAgenda(t, backend, func(o *AgendaOptions) {
		o.Journal = journal
		o.WallClock = wall
	})
	ctx := context.Background()

	_, err := agenda.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, testDay, agenda.State().AnchorDate)

	snap := agenda.Snapshot()
	require.NotNil(t, snap.LoadedAt)
	assert.Equal(t, wall.Now(), *snap.LoadedAt)

	wall.Advance(time.Minute)
	_, err = agenda.Confirm(ctx, "1")
	require.NoError(t, err)

	journal.mu.Lock()
	defer journal.mu.Unlock()
	require.Len(t, journal.entries, 1)
	assert.Equal(t, wall.Now(), journal.entries[0].OccurredAt)
}
