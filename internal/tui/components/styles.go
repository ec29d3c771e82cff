// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/devyntra/internal/config/colors"
	"github.com/thenoetrevino/devyntra/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle renders the dashboard heading
	TitleStyle lipgloss.Style

	// SubtleStyle renders secondary text such as the logged in identity
	SubtleStyle lipgloss.Style

	// CardStyle frames one project
	CardStyle lipgloss.Style

	// SelectedCardStyle frames the project under the cursor
	SelectedCardStyle lipgloss.Style

	// FormBoxStyle frames the auth forms and the new project dialog
	FormBoxStyle lipgloss.Style

	// ModalStyle frames acknowledgements and the help overlay
	ModalStyle lipgloss.Style

	// ErrorTextStyle renders inline error text
	ErrorTextStyle lipgloss.Style

	// DeployButtonStyle renders the deploy control on deployable cards
	DeployButtonStyle lipgloss.Style

	// StatusBarStyle renders the key hints at the bottom of the dashboard
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes the theme and every style from the color scheme.
func InitStyles(c colors.ColorScheme) {
	theme.Init(c)

	TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(0, 1)

	SelectedCardStyle = CardStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.FormBorder)).
		Padding(1, 2)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(theme.Outline)).
		Padding(1, 2)

	ErrorTextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Failure))

	DeployButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Success)).
		Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
}
