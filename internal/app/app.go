package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/khrees2412/talentdesk/internal/config"
	"github.com/khrees2412/talentdesk/internal/database"
	"github.com/khrees2412/talentdesk/internal/gateway"
	"github.com/khrees2412/talentdesk/internal/gateway/postgres"
	"github.com/khrees2412/talentdesk/internal/gateway/postgrest"
	"github.com/khrees2412/talentdesk/internal/logger"
	"github.com/khrees2412/talentdesk/internal/repository"
	"github.com/khrees2412/talentdesk/internal/view"
)

// App is the dependency container for the CLI application
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Gateway gateway.Gateway
	Repos   *repository.Set
	Notes   *view.Notifier
}

// NewApp loads configuration and the logger. Connect opens the backend.
func NewApp(ctx context.Context) (*App, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.AppConfig
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	return &App{
		Config: cfg,
		Logger: log,
		Notes:  view.NewNotifier(),
	}, nil
}

// Connect builds the process-wide gateway and the repositories over it.
func (a *App) Connect(ctx context.Context) error {
	if a.Gateway != nil {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	g, err := OpenGateway(ctx, a.Config)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", a.Config.Backend, err)
	}
	a.Gateway = g
	a.Repos = repository.NewSet(g)
	a.Logger.Debug("connected", "backend", a.Config.Backend)
	return nil
}

// OpenGateway constructs the backend named by cfg.Backend.
func OpenGateway(ctx context.Context, cfg *config.Config) (gateway.Gateway, error) {
	switch cfg.Backend {
	case config.BackendSupabase, "":
		c, err := postgrest.New(cfg.SupabaseURL, cfg.SupabaseKey, postgrest.WithRateLimit(cfg.RateLimit, burst(cfg.RateLimit)))
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.BackendPostgres:
		g, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.BackendSQLite:
		path := cfg.SQLitePath
		if path == "" {
			dir, err := config.Dir()
			if err != nil {
				return nil, err
			}
			if path, err = database.DefaultPath(dir); err != nil {
				return nil, err
			}
		}
		store, err := database.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("%w %q", config.ErrUnknownBackend, cfg.Backend)
}

func burst(perSecond float64) int {
	if b := int(perSecond * 2); b > 1 {
		return b
	}
	return 1
}

// Close closes all resources
func (a *App) Close() error {
	if a.Gateway != nil {
		return a.Gateway.Close()
	}
	return nil
}
