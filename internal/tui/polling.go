package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/devyntra/internal/models"
	"github.com/thenoetrevino/devyntra/internal/navigation"
	"github.com/thenoetrevino/devyntra/internal/poller"
)

// pollLoop is the running project list poller together with the
// generation and session it was started for
type pollLoop struct {
	poller     *poller.Poller[[]models.Project]
	generation uint64
	identity   string
}

// wantsPolling reports whether the project list should be live: the
// dashboard is showing and the guard lets protected content render
func (m Model) wantsPolling() bool {
	if m.quitting {
		return false
	}
	if m.App.Router.Current() != navigation.RouteDashboard {
		return false
	}
	return navigation.Guard(m.App.Sessions.Loading(), m.App.Sessions.Current()) == navigation.Render
}

// syncPolling starts, stops or restarts the poller to match the current
// route and session. A different session identity always restarts it.
func (m *Model) syncPolling() tea.Cmd {
	want := m.wantsPolling()
	current := m.App.Sessions.Current()

	if m.poll != nil && (!want || m.poll.identity != current.Identity()) {
		m.stopPolling()
	}
	if want && m.poll == nil {
		return m.startPolling(current)
	}
	return nil
}

// startPolling begins a new generation of the project list, bound to the
// token of s
func (m *Model) startPolling(s *models.Session) tea.Cmd {
	generation := m.ProjectsState.Reset()

	client := m.App.Client
	token := s.AccessToken
	fetch := func(ctx context.Context) ([]models.Project, error) {
		return client.ListProjects(ctx, token)
	}

	opts := append([]poller.Option{poller.WithLogger(m.logger)}, m.pollOpts...)
	p := poller.New(fetch, opts...)
	if err := p.Start(m.Ctx); err != nil {
		m.logger.Error("failed to start project poller", "error", err)
		return nil
	}

	m.poll = &pollLoop{poller: p, generation: generation, identity: s.Identity()}
	m.logger.Debug("project polling started", "generation", generation, "interval", p.Interval())
	return listenForPoll(p.Results(), generation)
}

// stopPolling tears the poller down. No request is issued after it returns.
func (m *Model) stopPolling() {
	if m.poll == nil {
		return
	}
	m.poll.poller.Stop()
	m.logger.Debug("project polling stopped", "generation", m.poll.generation)
	m.poll = nil
}

// listenForPoll waits for the next result on the poller's channel
func listenForPoll(results <-chan poller.Result[[]models.Project], generation uint64) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-results
		if !ok {
			return pollClosedMsg{generation: generation}
		}
		return pollResultMsg{generation: generation, result: r}
	}
}

// handlePollResult applies a result from the live generation and keeps
// listening. Results of a torn down poller are dropped.
func (m *Model) handlePollResult(msg pollResultMsg) tea.Cmd {
	if m.poll == nil || m.poll.generation != msg.generation {
		return nil
	}

	errMsg := ""
	if msg.result.Err != nil {
		errMsg = errorMessage(msg.result.Err)
		m.logger.Warn("project poll failed", "seq", msg.result.Seq, "error", msg.result.Err)
	}
	if !m.ProjectsState.Apply(msg.generation, msg.result.Seq, msg.result.Value, errMsg) {
		m.logger.Debug("dropped stale project poll", "seq", msg.result.Seq)
	}

	return listenForPoll(m.poll.poller.Results(), msg.generation)
}
