package app

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/planner/internal/database"
	"github.com/thenoetrevino/planner/internal/metrics"
	actionservice "github.com/thenoetrevino/planner/internal/services/action"
	noteservice "github.com/thenoetrevino/planner/internal/services/note"
	projectservice "github.com/thenoetrevino/planner/internal/services/project"
	tagservice "github.com/thenoetrevino/planner/internal/services/tag"
	taskservice "github.com/thenoetrevino/planner/internal/services/task"
)

// App holds all application services and provides dependency injection.
// Services are built once here and shared by every request.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	Metrics *metrics.Metrics
	Logger  *slog.Logger

	// Service layer (business logic)
	ProjectService projectservice.Service
	TaskService    taskservice.Service
	TagService     tagservice.Service
	NoteService    noteservice.Service
	ActionService  actionservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.metrics == nil {
		cfg.metrics = metrics.New()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &App{
		repo:           repo,
		Metrics:        cfg.metrics,
		Logger:         cfg.logger,
		ProjectService: projectservice.NewService(repo, cfg.metrics),
		TaskService:    taskservice.NewService(repo),
		TagService:     tagservice.NewService(repo),
		NoteService:    noteservice.NewService(repo),
		ActionService:  actionservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Health reports whether the store is reachable
func (a *App) Health(ctx context.Context) error {
	return a.repo.Ping(ctx)
}
