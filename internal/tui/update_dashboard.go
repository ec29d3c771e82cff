package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/thenoetrevino/devyntra/internal/tui/state"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// updateDashboard handles keys while browsing the project list
func (m *Model) updateDashboard(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Up):
		m.ProjectsState.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.ProjectsState.MoveDown()

	case key.Matches(msg, m.keys.NewProject):
		return m.openProjectForm()

	case key.Matches(msg, m.keys.Deploy):
		if p := m.ProjectsState.SelectedProject(); p != nil && p.CanDeploy() {
			// Deployment is not wired to the backend yet
			m.logger.Debug("deploy requested", "project", p.ID)
		}

	case key.Matches(msg, m.keys.CopyRepo):
		if p := m.ProjectsState.SelectedProject(); p != nil {
			return copyToClipboard(p.RepoURL)
		}

	case key.Matches(msg, m.keys.Logout):
		return m.logout()

	case key.Matches(msg, m.keys.Help):
		m.UiState.SetMode(state.HelpMode)
	}
	return nil
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: writeClipboard(text)}
	}
}

// logout stops polling before the session goes away so no request carries
// a discarded token. The session manager navigates to the login route.
func (m *Model) logout() tea.Cmd {
	m.stopPolling()
	if err := m.App.AuthService.Logout(m.Ctx); err != nil {
		m.logger.Error("logout failed", "error", err)
		m.NotificationState.Add(state.LevelError, "Logout failed: "+errorMessage(err))
	}
	return nil
}
