package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/devyntra/internal/app"
	"github.com/thenoetrevino/devyntra/internal/config"
	"github.com/thenoetrevino/devyntra/internal/logging"
	"github.com/thenoetrevino/devyntra/internal/tui/core"
)

// runDashboard opens the interactive dashboard
func runDashboard(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := logging.Init(cfg.LogDir(), cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	a, err := app.Open(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("Error closing app", "error", err)
		}
	}()

	slog.Info("dashboard starting", "api_url", cfg.APIURL, "pid", os.Getpid())
	return runProgram(ctx, a)
}

func runProgram(ctx context.Context, a *app.App) error {
	dashboard := core.New(ctx, a)
	defer dashboard.Shutdown()

	p := tea.NewProgram(dashboard)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("dashboard closed")
	return nil
}
