package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/config"
	"github.com/JBorrsad/odoonto-mobile/internal/cache"
	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/internal/metrics"
	"github.com/JBorrsad/odoonto-mobile/internal/repository"
	"github.com/JBorrsad/odoonto-mobile/internal/schedule"
	"github.com/JBorrsad/odoonto-mobile/internal/storage"
	"github.com/JBorrsad/odoonto-mobile/pkg/auth"
)

// Deps is built once in main and shared by every service.
type Deps struct {
	Repos    *repository.Repositories
	Cache    *cache.DirectoryCache
	Storage  storage.ObjectStorage
	Notifier Notifier
	Metrics  *metrics.AgendaMetrics
	// Clock answers "today" for navigation; WallClock stamps idle tracking,
	// the journal and export expiry.
	Clock     schedule.Clock
	WallClock schedule.Clock
	Tokens    *auth.TokenManager
	Config    *config.Config
	Logger    *zap.Logger
}

type Services struct {
	Views     ViewService
	Directory DirectoryService
	Export    ExportService
	History   HistoryService
	Auth      AuthService
}

func NewServices(deps Deps) *Services {
	if deps.Notifier == nil {
		deps.Notifier = NopNotifier{}
	}
	if deps.Clock == nil {
		deps.Clock = schedule.SystemClock{}
	}
	if deps.WallClock == nil {
		deps.WallClock = schedule.SystemClock{}
	}

	directory := NewDirectoryService(deps.Repos.Doctor, deps.Repos.Patient, deps.Cache, deps.Logger)

	return &Services{
		Views: NewViewService(ViewOptions{
			Repo:        deps.Repos.Appointment,
			Journal:     deps.Repos.Journal,
			Notifier:    deps.Notifier,
			Metrics:     deps.Metrics,
			Navigator:   schedule.NewNavigator(deps.Clock),
			Transitions: schedule.NewTransitionPolicy(deps.Config.Schedule.GuardedTransitions),
			DefaultView: deps.Config.Schedule.DefaultView,
			IdleTTL:     deps.Config.Schedule.ViewIdleTTL,
			Clock:       deps.Clock,
			WallClock:   deps.WallClock,
		}, deps.Logger),
		Directory: directory,
		Export:    NewExportService(deps.Storage, directory, deps.WallClock, deps.Logger),
		History:   NewHistoryService(deps.Repos.Journal, deps.Logger),
		Auth:      NewAuthService(deps.Tokens, deps.Config.Auth, deps.Logger),
	}
}

type ViewService interface {
	Open(ctx context.Context, req domain.CreateViewRequest) (*Agenda, error)
	Get(id string) (*Agenda, error)
	Close(id string) error
	EvictIdle(now time.Time) int
	RunJanitor(ctx context.Context, interval time.Duration)
}

type DirectoryService interface {
	Doctors(ctx context.Context) ([]domain.Doctor, error)
	Patients(ctx context.Context) ([]domain.Patient, error)
	FormOptions(ctx context.Context) (*domain.FormOptions, error)
	Refresh(ctx context.Context) error
}

type ExportService interface {
	Export(ctx context.Context, agenda *Agenda) (*ExportResult, error)
}

type HistoryService interface {
	List(ctx context.Context, appointmentID string, limit int) ([]domain.JournalEntry, error)
}

type AuthService interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.Tokens, error)
	ParseToken(accessToken string) (*auth.Claims, error)
}

// Notifier fans change events out to connected clients.
type Notifier interface {
	Publish(event domain.ChangeEvent)
}

type NopNotifier struct{}

func (NopNotifier) Publish(domain.ChangeEvent) {}

type actorKey struct{}

// WithActor tags ctx with the staff login recorded in the journal.
func WithActor(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, actorKey{}, login)
}

func actorFrom(ctx context.Context) string {
	login, _ := ctx.Value(actorKey{}).(string)
	return login
}
