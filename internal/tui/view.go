package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/devyntra/internal/navigation"
	"github.com/thenoetrevino/devyntra/internal/tui/notifications"
)

// View renders the current route with modal and notification layers on top
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	var base string
	switch m.App.Router.Current() {
	case navigation.RouteLogin:
		base = m.viewLogin()
	case navigation.RouteSignup:
		base = m.viewSignup()
	default:
		base = m.viewDashboard()
	}

	layerStack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	if modal := m.modalLayer(); modal != nil {
		layerStack = append(layerStack, modal)
	}
	layerStack = append(layerStack, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}
