package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateSubmitKeyMap returns the default keymap with ctrl+s added as a
// submit shortcut alongside enter, and esc removed from quitting so the
// dashboard can use it to close the dialog.
func CreateSubmitKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Input.Submit = key.NewBinding(
		key.WithKeys("enter", "ctrl+s"),
		key.WithHelp("enter / ctrl+s", "submit"),
	)
	keymap.Quit = key.NewBinding(key.WithKeys("ctrl+c"))

	return keymap
}
