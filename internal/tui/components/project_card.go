package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/devyntra/internal/models"
)

// DeployButtonLabel is shown on projects whose analysis finished
const DeployButtonLabel = "[ Deploy Project ]"

// ProjectCardProps holds what RenderProjectCard needs
type ProjectCardProps struct {
	Project  models.Project
	Selected bool
	Width    int
}

// RenderProjectCard renders one project: name and status badge, repository
// URL, then language and description when present, then the deploy control
// for deployable projects.
func RenderProjectCard(props ProjectCardProps) string {
	p := props.Project

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, TitleStyle.Render(p.Name), " ", RenderBadge(p)),
		SubtleStyle.Render(p.RepoURL),
	}
	if lang := p.LanguageOrEmpty(); lang != "" {
		lines = append(lines, "Language: "+lang)
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) != "" {
		lines = append(lines, *p.Description)
	}
	if p.CanDeploy() {
		lines = append(lines, DeployButtonStyle.Render(DeployButtonLabel))
	}

	style := CardStyle
	if props.Selected {
		style = SelectedCardStyle
	}
	if props.Width > 0 {
		style = style.Width(props.Width)
	}
	return style.Render(strings.Join(lines, "\n"))
}
