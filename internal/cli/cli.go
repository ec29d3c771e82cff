// Package cli holds the shared plumbing for the devyntra subcommands:
// the application container, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/devyntra/internal/app"
	"github.com/thenoetrevino/devyntra/internal/cli/styles"
	"github.com/thenoetrevino/devyntra/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is true when NewCLI opened the app and Close must release it
	owned bool
}

// NewCLI loads configuration, opens local storage and restores the
// persisted session
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	c, err := fromApp(ctx, a)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	c.owned = true
	return c, nil
}

// fromApp wraps an assembled App, loading its session store
func fromApp(ctx context.Context, a *app.App) (*CLI, error) {
	if err := a.Sessions.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	styles.Init(a.Config.ColorScheme)
	return &CLI{App: a}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
