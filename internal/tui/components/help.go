package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/devyntra/internal/config"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// HelpMarkdown builds the keyboard reference from the configured key mappings
func HelpMarkdown(km config.KeyMappings) string {
	var b strings.Builder
	b.WriteString("# Keyboard Shortcuts\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	rows := [][2]string{
		{km.NextProject + " / down", "Next project"},
		{km.PrevProject + " / up", "Previous project"},
		{km.NewProject, "Add a project"},
		{km.Deploy, "Deploy the selected project"},
		{km.CopyRepoURL, "Copy the repository URL"},
		{km.Logout, "Log out"},
		{km.SwitchAuthScreen, "Switch between login and signup"},
		{km.ShowHelp, "Toggle this help"},
		{km.Quit, "Quit"},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", r[0], r[1])
	}
	b.WriteString("\nThe project list refreshes every few seconds while the dashboard is open.\n")
	return b.String()
}

// RenderHelp renders the help markdown with glamour, falling back to the
// raw markdown when rendering fails.
func RenderHelp(km config.KeyMappings, width int) string {
	md := HelpMarkdown(km)
	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
