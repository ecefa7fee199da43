package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/internal/metrics"
	"github.com/JBorrsad/odoonto-mobile/internal/repository"
	"github.com/JBorrsad/odoonto-mobile/internal/schedule"
)

const defaultViewIdleTTL = 30 * time.Minute

type ViewOptions struct {
	Repo        repository.AppointmentRepository
	Journal     repository.JournalRepository
	Notifier    Notifier
	Metrics     *metrics.AgendaMetrics
	Navigator   *schedule.Navigator
	Transitions schedule.TransitionPolicy
	DefaultView string
	IdleTTL     time.Duration
	Clock       schedule.Clock
	WallClock   schedule.Clock
}

// ViewServiceImpl keeps the open agendas, one per client view.
type ViewServiceImpl struct {
	opts   ViewOptions
	logger *zap.Logger

	mu    sync.RWMutex
	views map[string]*Agenda
}

func NewViewService(opts ViewOptions, logger *zap.Logger) *ViewServiceImpl {
	if opts.Clock == nil {
		opts.Clock = schedule.SystemClock{}
	}
	if opts.WallClock == nil {
		opts.WallClock = schedule.SystemClock{}
	}
	if opts.Navigator == nil {
		opts.Navigator = schedule.NewNavigator(opts.Clock)
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = defaultViewIdleTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ViewServiceImpl{
		opts:   opts,
		logger: logger,
		views:  make(map[string]*Agenda),
	}
}

// Open creates a view and loads it. A failed first load still returns the
// view, with the message in its last error.
func (s *ViewServiceImpl) Open(ctx context.Context, req domain.CreateViewRequest) (*Agenda, error) {
	viewTypeValue := req.ViewType
	if strings.TrimSpace(viewTypeValue) == "" {
		viewTypeValue = s.opts.DefaultView
	}
	viewType, err := domain.ParseViewType(viewTypeValue)
	if err != nil {
		return nil, err
	}

	state := s.opts.Navigator.Initial(viewType)
	if req.Date != "" {
		date, err := domain.ParseDate(req.Date)
		if err != nil {
			verr := domain.NewValidationError()
			verr.Add(schedule.FieldDate, "La fecha no es válida")
			return nil, verr
		}
		state.AnchorDate = date
	}

	agenda := NewAgenda(AgendaOptions{
		ID:          uuid.New().String(),
		State:       state,
		DoctorID:    req.DoctorID,
		Repo:        s.opts.Repo,
		Journal:     s.opts.Journal,
		Notifier:    s.opts.Notifier,
		Metrics:     s.opts.Metrics,
		Navigator:   s.opts.Navigator,
		Transitions: s.opts.Transitions,
		Clock:       s.opts.Clock,
		WallClock:   s.opts.WallClock,
	}, s.logger)

	s.mu.Lock()
	s.views[agenda.ID()] = agenda
	s.mu.Unlock()

	s.logger.Info("vista de agenda abierta",
		zap.String("viewID", agenda.ID()),
		zap.String("viewType", string(state.ViewType)),
		zap.String("date", state.AnchorDate.Format(domain.DateLayout)),
	)

	if err := agenda.Reload(ctx); err != nil {
		s.logger.Warn("la carga inicial de la vista falló", zap.String("viewID", agenda.ID()), zap.Error(err))
	}

	return agenda, nil
}

func (s *ViewServiceImpl) Get(id string) (*Agenda, error) {
	s.mu.RLock()
	agenda, ok := s.views[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrViewNotFound
	}
	agenda.touch()
	return agenda, nil
}

func (s *ViewServiceImpl) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.views[id]; !ok {
		return domain.ErrViewNotFound
	}
	delete(s.views, id)
	return nil
}

// EvictIdle drops views unused for longer than the idle TTL.
func (s *ViewServiceImpl) EvictIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, agenda := range s.views {
		if now.Sub(agenda.idleSince()) > s.opts.IdleTTL {
			delete(s.views, id)
			evicted++
		}
	}
	if evicted > 0 {
		s.logger.Info("vistas inactivas eliminadas", zap.Int("count", evicted))
	}
	return evicted
}

func (s *ViewServiceImpl) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.EvictIdle(s.opts.WallClock.Now())
		}
	}
}
