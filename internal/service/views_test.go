package service

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/internal/schedule"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestViewService(t *testing.T, backend *fakeBackend, clock schedule.Clock) *ViewServiceImpl {
	t.Helper()
	repos := newTestRepos(t, backend)
	return NewViewService(ViewOptions{
		Repo:        repos.Appointment,
		Journal:     repos.Journal,
		DefaultView: "week",
		IdleTTL:     30 * time.Minute,
		Clock:       clock,
		WallClock:   clock,
	}, zap.NewNop())
}

func (s *ViewServiceImpl) openCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.views)
}

func TestViewService_Open(t *testing.T) {
	backend := newFakeBackend(seeded("1", "D1", "P1", 9, 0, 1, domain.AppointmentStatusPending))
	views := newTestViewService(t, backend, schedule.FixedClock{At: testDay.Add(8 * time.Hour)})
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		agenda, err := views.Open(ctx, domain.CreateViewRequest{})
		require.NoError(t, err)

		state := agenda.State()
		assert.Equal(t, domain.ViewTypeWeek, state.ViewType)
		assert.Equal(t, testDay, state.AnchorDate)
		assert.Len(t, agenda.Appointments(), 1)
	})

	t.Run("explicit date and doctor", func(t *testing.T) {
		agenda, err := views.Open(ctx, domain.CreateViewRequest{Date: "2025-05-17", ViewType: "day", DoctorID: "D1"})
		require.NoError(t, err)

		assert.Equal(t, domain.ViewTypeDay, agenda.State().ViewType)
		assert.Equal(t, "D1", agenda.DoctorFilter())
		assert.Empty(t, agenda.Appointments())

		found, err := views.Get(agenda.ID())
		require.NoError(t, err)
		assert.Same(t, agenda, found)
	})

	t.Run("invalid view type", func(t *testing.T) {
		_, err := views.Open(ctx, domain.CreateViewRequest{ViewType: "month"})
		assert.ErrorIs(t, err, domain.ErrInvalidViewType)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := views.Open(ctx, domain.CreateViewRequest{Date: "16/05/2025"})
		assert.Error(t, err)
	})
}

func TestViewService_OpenSurvivesFailedLoad(t *testing.T) {
	backend := newFakeBackend()
	backend.fail("GET list", http.StatusInternalServerError, `{"error":"base de datos no disponible"}`)
	views := newTestViewService(t, backend, schedule.FixedClock{At: testDay})

	agenda, err := views.Open(context.Background(), domain.CreateViewRequest{})
	require.NoError(t, err)
	assert.Equal(t, "base de datos no disponible", agenda.Snapshot().LastError)
	assert.Empty(t, agenda.Appointments())
}

func TestViewService_CloseAndEvict(t *testing.T) {
	clock := &manualClock{now: testDay.Add(9 * time.Hour)}
	views := newTestViewService(t, newFakeBackend(), clock)
	ctx := context.Background()

	first, err := views.Open(ctx, domain.CreateViewRequest{})
	require.NoError(t, err)
	second, err := views.Open(ctx, domain.CreateViewRequest{})
	require.NoError(t, err)

	require.NoError(t, views.Close(first.ID()))
	assert.ErrorIs(t, views.Close(first.ID()), domain.ErrViewNotFound)
	_, err = views.Get(first.ID())
	assert.ErrorIs(t, err, domain.ErrViewNotFound)

	clock.Advance(20 * time.Minute)
	assert.Zero(t, views.EvictIdle(clock.Now()))

	clock.Advance(11 * time.Minute)
	assert.Equal(t, 1, views.EvictIdle(clock.Now()))
	_, err = views.Get(second.ID())
	assert.ErrorIs(t, err, domain.ErrViewNotFound)
}

func TestViewService_GetKeepsViewAlive(t *testing.T) {
	clock := &manualClock{now: testDay.Add(9 * time.Hour)}
	views := newTestViewService(t, newFakeBackend(), clock)

	agenda, err := views.Open(context.Background(), domain.CreateViewRequest{})
	require.NoError(t, err)

	clock.Advance(25 * time.Minute)
	_, err = views.Get(agenda.ID())
	require.NoError(t, err)

	clock.Advance(25 * time.Minute)
	assert.Zero(t, views.EvictIdle(clock.Now()))
}

func TestViewService_JanitorEvictsUnderFixedReferenceDate(t *testing.T) {
	repos := newTestRepos(t, newFakeBackend())
	views := NewViewService(ViewOptions{
		Repo:    repos.Appointment,
		IdleTTL: 20 * time.Millisecond,
		Clock:   schedule.FixedClock{At: testDay.Add(8 * time.Hour)},
	}, zap.NewNop())

	agenda, err := views.Open(context.Background(), domain.CreateViewRequest{})
	require.NoError(t, err)
	assert.Equal(t, testDay, agenda.State().AnchorDate)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go views.RunJanitor(ctx, 5*time.Millisecond)

	assert.Eventually(t, func() bool { return views.openCount() == 0 }, 2*time.Second, 10*time.Millisecond)
	_, err = views.Get(agenda.ID())
	assert.ErrorIs(t, err, domain.ErrViewNotFound)
}
