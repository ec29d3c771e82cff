package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/devyntra/internal/navigation"
	"github.com/thenoetrevino/devyntra/internal/tui/components"
	"github.com/thenoetrevino/devyntra/internal/tui/layers"
	"github.com/thenoetrevino/devyntra/internal/tui/state"
)

// Placeholder texts for the dashboard
const (
	MsgCheckingSession = "Loading..."
	MsgRedirecting     = "Redirecting to login..."
	MsgLoadingProjects = "Loading projects..."
	MsgNoProjects      = "You haven't created any projects yet."
)

// viewDashboard renders the protected dashboard through the route guard:
// a placeholder while the session check runs, nothing protected without a
// session, the project list otherwise
func (m Model) viewDashboard() string {
	current := m.App.Sessions.Current()
	switch navigation.Guard(m.App.Sessions.Loading(), current) {
	case navigation.Placeholder:
		return m.spinner.View() + " " + MsgCheckingSession
	case navigation.RedirectToLogin:
		return MsgRedirecting
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Welcome to Devyntra"),
		components.SubtleStyle.Render("Logged in as "+current.User.Email),
	)
	statusBar := m.viewStatusBar()

	available := m.UiState.Height() - lipgloss.Height(header) - lipgloss.Height(statusBar) - 2
	body := m.viewProjectList(available)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", statusBar)
}

// viewProjectList renders the poll state: loading, the last error, the
// empty message, or the cards that fit in height lines
func (m Model) viewProjectList(height int) string {
	ps := m.ProjectsState
	switch {
	case !ps.Loaded():
		return m.spinner.View() + " " + MsgLoadingProjects
	case ps.Error() != "":
		return components.ErrorTextStyle.Render(ps.Error())
	case len(ps.Projects()) == 0:
		return MsgNoProjects + " Press " + m.Config.KeyMappings.NewProject + " to add one."
	}

	width := min(m.UiState.Width()-2, 100)
	cards := make([]string, len(ps.Projects()))
	for i, p := range ps.Projects() {
		cards[i] = components.RenderProjectCard(components.ProjectCardProps{
			Project:  p,
			Selected: i == ps.Selected(),
			Width:    width,
		})
	}

	start := firstVisible(cards, ps.Selected(), height)
	visible := []string{}
	used := 0
	for _, c := range cards[start:] {
		h := lipgloss.Height(c)
		if used+h > height && len(visible) > 0 {
			break
		}
		visible = append(visible, c)
		used += h
	}
	return lipgloss.JoinVertical(lipgloss.Left, visible...)
}

// firstVisible returns the first card to draw so the selected card fits
func firstVisible(cards []string, selected, height int) int {
	start := 0
	for start < selected {
		used := 0
		for _, c := range cards[start : selected+1] {
			used += lipgloss.Height(c)
		}
		if used <= height {
			break
		}
		start++
	}
	return start
}

func (m Model) viewStatusBar() string {
	hints := []string{}
	for _, b := range m.keys.dashboardHints() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return components.StatusBarStyle.Render(strings.Join(hints, " • "))
}

// modalLayer returns the overlay for the current mode, nil when there is none
func (m Model) modalLayer() *lipgloss.Layer {
	if m.App.Router.Current() != navigation.RouteDashboard {
		return nil
	}

	width := layers.ModalWidth(m.UiState.Width())
	var content string

	switch m.UiState.Mode() {
	case state.ProjectFormMode:
		if m.FormState.ProjectForm == nil {
			return nil
		}
		parts := []string{components.TitleStyle.Render("New Project"), "", m.FormState.ProjectForm.View()}
		if m.FormState.SubmitError != "" {
			parts = append(parts, components.ErrorTextStyle.Render(m.FormState.SubmitError))
		}
		if m.FormState.Submitting {
			parts = append(parts, m.spinner.View()+" Analyzing...")
		} else {
			parts = append(parts, components.SubtleStyle.Render("enter: next/submit • esc: cancel"))
		}
		content = components.FormBoxStyle.Width(width).Render(strings.Join(parts, "\n"))

	case state.AcknowledgeMode:
		content = components.ModalStyle.Width(width).Render(
			m.UiState.Acknowledgement() + "\n\n" + components.SubtleStyle.Render("Press enter to continue"),
		)

	case state.HelpMode:
		content = components.ModalStyle.Width(width).Render(
			components.RenderHelp(m.Config.KeyMappings, width-6),
		)
	}

	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}
