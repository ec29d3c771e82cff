package tui

import (
	"strings"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/devyntra/internal/tui/components"
	"github.com/thenoetrevino/devyntra/internal/tui/layers"
)

func (m Model) viewLogin() string {
	return m.viewAuthScreen("Log in to Devyntra", m.FormState.LoginForm, "Signing in...",
		m.Config.KeyMappings.SwitchAuthScreen+": create an account")
}

func (m Model) viewSignup() string {
	return m.viewAuthScreen("Create your Devyntra account", m.FormState.SignupForm, "Creating account...",
		m.Config.KeyMappings.SwitchAuthScreen+": back to login")
}

// viewAuthScreen centers an auth form in a box with its title and hint
func (m Model) viewAuthScreen(title string, form *huh.Form, busy, hint string) string {
	parts := []string{components.TitleStyle.Render(title), ""}
	switch {
	case m.FormState.AuthSubmitting:
		parts = append(parts, m.spinner.View()+" "+busy)
	case form != nil:
		parts = append(parts, form.View())
	}
	parts = append(parts, "", components.SubtleStyle.Render(hint))

	box := components.FormBoxStyle.
		Width(layers.ModalWidth(m.UiState.Width())).
		Render(strings.Join(parts, "\n"))

	return lipgloss.Place(m.UiState.Width(), m.UiState.Height(), lipgloss.Center, lipgloss.Center, box)
}
