package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/devyntra/internal/models"
	"github.com/thenoetrevino/devyntra/internal/tui/theme"
)

// badgeColor maps a status category to a theme color
func badgeColor(c models.StatusCategory) string {
	switch c {
	case models.CategorySuccess:
		return theme.Success
	case models.CategoryPending:
		return theme.Pending
	case models.CategoryFailure:
		return theme.Failure
	default:
		return theme.Subtle
	}
}

// RenderBadge renders a project status as a colored pill. Unknown statuses
// keep their label and get the neutral color.
func RenderBadge(p models.Project) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(badgeColor(models.CategoryForStatus(p.Status)))).
		Bold(true).
		Render("[" + p.StatusLabel() + "]")
}
