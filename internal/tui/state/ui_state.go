package state

import "github.com/thenoetrevino/devyntra/internal/navigation"

// Mode represents the current interaction mode of the dashboard.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode      Mode = iota // Browsing the project list
	ProjectFormMode             // New project dialog with huh
	AcknowledgeMode             // Blocking message that must be dismissed
	HelpMode                    // Displaying help screen
)

// UIState manages the user interface state: terminal dimensions, the
// current mode and the route the model last rendered.
type UIState struct {
	width  int
	height int
	mode   Mode

	// route is the route the model last settled on; a change resets the mode
	route navigation.Route

	// acknowledgement is the message shown in AcknowledgeMode
	acknowledgement string
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize records new terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode. Leaving AcknowledgeMode drops the message.
func (s *UIState) SetMode(mode Mode) {
	if mode != AcknowledgeMode {
		s.acknowledgement = ""
	}
	s.mode = mode
}

// Acknowledge switches to AcknowledgeMode showing message.
func (s *UIState) Acknowledge(message string) {
	s.mode = AcknowledgeMode
	s.acknowledgement = message
}

// Acknowledgement returns the pending acknowledgement message.
func (s *UIState) Acknowledgement() string {
	return s.acknowledgement
}

// Route returns the route last settled on.
func (s *UIState) Route() navigation.Route {
	return s.route
}

// SetRoute records route and reports whether it differs from the previous one.
func (s *UIState) SetRoute(route navigation.Route) bool {
	if s.route == route {
		return false
	}
	s.route = route
	return true
}
