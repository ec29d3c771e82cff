package tui

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/devyntra/internal/navigation"
	"github.com/thenoetrevino/devyntra/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// After every message the route guard and the poller are brought in line
// with the session, so a logout or an expired check takes effect at once.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Ctx.Err() != nil {
		cmd := m.quit()
		return m, cmd
	}

	cmds := []tea.Cmd{m.handleMsg(msg)}
	cmds = append(cmds, m.enforceGuard(), m.syncPolling())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		return m.forwardToForm(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case sessionLoadedMsg:
		if msg.err != nil {
			m.logger.Error("failed to load persisted session", "error", msg.err)
		}
		return nil

	case pollResultMsg:
		return m.handlePollResult(msg)

	case pollClosedMsg:
		return nil

	case projectCreatedMsg:
		return m.handleProjectCreated(msg)

	case loginDoneMsg:
		return m.handleLoginDone(msg)

	case signupDoneMsg:
		return m.handleSignupDone(msg)

	case clipboardMsg:
		if msg.err != nil {
			m.NotificationState.Add(state.LevelError, "Could not copy to clipboard")
			return nil
		}
		m.NotificationState.Add(state.LevelInfo, "Repository URL copied")
		return nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m.forwardToForm(msg)
}

// handleKey routes a key press by route and mode
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	m.NotificationState.Clear()

	switch m.App.Router.Current() {
	case navigation.RouteLogin:
		return m.updateLogin(msg)
	case navigation.RouteSignup:
		return m.updateSignup(msg)
	}

	switch m.UiState.Mode() {
	case state.ProjectFormMode:
		return m.updateProjectForm(msg)
	case state.AcknowledgeMode:
		if key.Matches(msg, m.keys.Dismiss) {
			m.UiState.SetMode(state.NormalMode)
		}
		return nil
	case state.HelpMode:
		if key.Matches(msg, m.keys.Help, m.keys.Close, m.keys.Quit) {
			m.UiState.SetMode(state.NormalMode)
		}
		return nil
	default:
		return m.updateDashboard(msg)
	}
}

// quit tears polling down for good and ends the program
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.stopPolling()
	return tea.Quit
}

// enforceGuard redirects away from protected routes once the session check
// has finished without a session, then settles the model on the route.
func (m *Model) enforceGuard() tea.Cmd {
	route := m.App.Router.Current()
	if route.Protected() &&
		navigation.Guard(m.App.Sessions.Loading(), m.App.Sessions.Current()) == navigation.RedirectToLogin {
		m.logger.Debug("no session, redirecting", "from", route)
		m.App.Router.Navigate(navigation.RouteLogin)
		route = navigation.RouteLogin
	}

	if !m.UiState.SetRoute(route) {
		return nil
	}
	return m.enterRoute(route)
}

// enterRoute resets per-screen state when the route changes
func (m *Model) enterRoute(route navigation.Route) tea.Cmd {
	m.UiState.SetMode(state.NormalMode)
	m.FormState.ResetProjectForm()
	m.FormState.AuthSubmitting = false

	switch route {
	case navigation.RouteLogin:
		return m.openLoginForm()
	case navigation.RouteSignup:
		return m.openSignupForm()
	}
	return nil
}

// forwardToForm passes non-key messages to whichever form is active so huh
// can process its own internal messages
func (m *Model) forwardToForm(msg tea.Msg) tea.Cmd {
	switch m.App.Router.Current() {
	case navigation.RouteLogin:
		if m.FormState.LoginForm != nil && !m.FormState.AuthSubmitting {
			return m.updateLoginForm(msg)
		}
	case navigation.RouteSignup:
		if m.FormState.SignupForm != nil && !m.FormState.AuthSubmitting {
			return m.updateSignupForm(msg)
		}
	default:
		if m.UiState.Mode() == state.ProjectFormMode && m.FormState.ProjectForm != nil && !m.FormState.Submitting {
			return m.updateProjectFormModel(msg)
		}
	}
	return nil
}
