package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/devyntra/internal/api"
	"github.com/thenoetrevino/devyntra/internal/config"
	"github.com/thenoetrevino/devyntra/internal/database"
	"github.com/thenoetrevino/devyntra/internal/navigation"
	authservice "github.com/thenoetrevino/devyntra/internal/services/auth"
	projectservice "github.com/thenoetrevino/devyntra/internal/services/project"
	"github.com/thenoetrevino/devyntra/internal/session"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Owned database handle, nil when the caller manages it
	db *sql.DB

	// Local storage (the persisted session lives here)
	repo database.DataStore

	Config   *config.Config
	Client   *api.Client
	Router   *navigation.Router
	Sessions *session.Manager

	// Service layer
	AuthService    authservice.Service
	ProjectService projectservice.Service

	logger *slog.Logger
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, client *api.Client, opts ...Option) *App {
	cfg := &appConfig{
		logger: slog.Default(),
		start:  navigation.RouteDashboard,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}

	router := navigation.NewRouter(cfg.start)
	sessions := session.NewManager(repo,
		session.WithNavigator(router),
		session.WithLogger(cfg.logger),
	)

	return &App{
		repo:           repo,
		Config:         cfg.config,
		Client:         client,
		Router:         router,
		Sessions:       sessions,
		AuthService:    authservice.NewService(client, sessions, cfg.logger),
		ProjectService: projectservice.NewService(client, sessions, cfg.logger),
		logger:         cfg.logger,
	}
}

// Open builds the App from configuration: it opens the local storage
// database under cfg.DataDir and points the API client at cfg.APIURL.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	logger := slog.Default()
	probe := &appConfig{}
	for _, opt := range opts {
		opt(probe)
	}
	if probe.logger != nil {
		logger = probe.logger
	}

	client, err := api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := New(database.NewRepository(db), client, append([]Option{WithConfig(cfg)}, opts...)...)
	a.db = db
	return a, nil
}

// Repo returns the underlying local storage.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the session manager and, when owned, the database.
func (a *App) Close() error {
	if err := a.Sessions.Close(); err != nil {
		a.logger.Error("failed to close session manager", "error", err)
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
