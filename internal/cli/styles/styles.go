// Package styles renders the human readable CLI output
package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/devyntra/internal/config/colors"
	"github.com/thenoetrevino/devyntra/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Repo:", "Language:"

	// Status styles
	SuccessStyle lipgloss.Style
	PendingStyle lipgloss.Style
	FailureStyle lipgloss.Style
	DefaultStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	c.ApplyDefaults()

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Success))
	PendingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Pending))
	FailureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Failure))
	DefaultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Subtle))
}

// RenderStatus renders a project status as "[label]" in its category color
func RenderStatus(p models.Project) string {
	style := DefaultStyle
	switch models.CategoryForStatus(p.Status) {
	case models.CategorySuccess:
		style = SuccessStyle
	case models.CategoryPending:
		style = PendingStyle
	case models.CategoryFailure:
		style = FailureStyle
	}
	return style.Render("[" + p.StatusLabel() + "]")
}

// RenderProject renders one project as an indented block
func RenderProject(p models.Project) string {
	var b strings.Builder
	b.WriteString("  " + TitleStyle.Render(p.Name) + " " + RenderStatus(p) + "\n")
	b.WriteString("    " + LabelStyle.Render("Repo:") + " " + p.RepoURL + "\n")
	if lang := p.LanguageOrEmpty(); lang != "" {
		b.WriteString("    " + LabelStyle.Render("Language:") + " " + lang + "\n")
	}
	if p.Description != nil && *p.Description != "" {
		b.WriteString("    " + SubtitleStyle.Render(*p.Description) + "\n")
	}
	b.WriteString("    " + SubtitleStyle.Render("id "+p.ID) + "\n")
	return b.String()
}
