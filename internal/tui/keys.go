package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/devyntra/internal/config"
)

// keyMap holds the dashboard bindings built from the configured key mappings
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	NewProject key.Binding
	Deploy     key.Binding
	CopyRepo   key.Binding
	Logout     key.Binding
	SwitchAuth key.Binding
	Help       key.Binding
	Quit       key.Binding
	Dismiss    key.Binding
	Close      key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys(km.PrevProject, "up"),
			key.WithHelp(km.PrevProject+"/↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys(km.NextProject, "down"),
			key.WithHelp(km.NextProject+"/↓", "next"),
		),
		NewProject: key.NewBinding(key.WithKeys(km.NewProject), key.WithHelp(km.NewProject, "new project")),
		Deploy:     key.NewBinding(key.WithKeys(km.Deploy), key.WithHelp(km.Deploy, "deploy")),
		CopyRepo:   key.NewBinding(key.WithKeys(km.CopyRepoURL), key.WithHelp(km.CopyRepoURL, "copy url")),
		Logout:     key.NewBinding(key.WithKeys(km.Logout), key.WithHelp(km.Logout, "logout")),
		SwitchAuth: key.NewBinding(key.WithKeys(km.SwitchAuthScreen), key.WithHelp(km.SwitchAuthScreen, "switch login/signup")),
		Help:       key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:       key.NewBinding(key.WithKeys(km.Quit), key.WithHelp(km.Quit, "quit")),
		Dismiss:    key.NewBinding(key.WithKeys("enter", "esc", "space")),
		Close:      key.NewBinding(key.WithKeys("esc")),
	}
}

// dashboardHints lists the bindings shown in the status bar
func (k keyMap) dashboardHints() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.NewProject, k.CopyRepo, k.Logout, k.Help, k.Quit}
}
