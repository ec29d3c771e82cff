package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/devyntra/internal/app"
	"github.com/thenoetrevino/devyntra/internal/config"
	"github.com/thenoetrevino/devyntra/internal/poller"
	"github.com/thenoetrevino/devyntra/internal/session"
	"github.com/thenoetrevino/devyntra/internal/tui/components"
	"github.com/thenoetrevino/devyntra/internal/tui/state"
)

// Model represents the dashboard state
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	ProjectsState     *state.ProjectsState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	keys     keyMap
	spinner  spinner.Model
	poll     *pollLoop
	quitting bool
	pollOpts []poller.Option
	logger   *slog.Logger
}

// ModelOption configures InitialModel
type ModelOption func(*Model)

// WithPollerOptions passes extra options to every project list poller the
// model starts, typically a fake ticker in tests.
func WithPollerOptions(opts ...poller.Option) ModelOption {
	return func(m *Model) {
		m.pollOpts = append(m.pollOpts, opts...)
	}
}

// InitialModel creates the dashboard model over an assembled App.
// The session is not loaded yet; Init issues that check.
func InitialModel(ctx context.Context, a *app.App, opts ...ModelOption) Model {
	cfg := a.Config
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		Ctx:               session.NewContext(ctx, a.Sessions),
		App:               a,
		Config:            cfg,
		UiState:           state.NewUIState(),
		ProjectsState:     state.NewProjectsState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		keys:              newKeyMap(cfg.KeyMappings),
		spinner:           spinner.New(spinner.WithSpinner(spinner.Dot)),
		logger:            a.Logger(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the persisted session check and the loading spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSession(), m.spinner.Tick)
}

// loadSession performs the one-time storage check off the update loop
func (m Model) loadSession() tea.Cmd {
	ctx := m.Ctx
	return func() tea.Msg {
		sessions, err := session.FromContext(ctx)
		if err != nil {
			return sessionLoadedMsg{err: err}
		}
		return sessionLoadedMsg{err: sessions.Load(ctx)}
	}
}

// Shutdown stops background polling. The program calls it on exit.
func (m *Model) Shutdown() {
	m.stopPolling()
}
