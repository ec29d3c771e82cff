package app

import (
	"log/slog"

	"github.com/thenoetrevino/devyntra/internal/config"
	"github.com/thenoetrevino/devyntra/internal/navigation"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	config *config.Config
	start  navigation.Route
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithConfig attaches the loaded configuration
func WithConfig(c *config.Config) Option {
	return func(cfg *appConfig) {
		cfg.config = c
	}
}

// WithStartRoute sets the route the router begins on
func WithStartRoute(r navigation.Route) Option {
	return func(cfg *appConfig) {
		cfg.start = r
	}
}
