package theme

import "github.com/thenoetrevino/devyntra/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Title          string
	Subtle         string
	Normal         string
	Success        string
	Pending        string
	Failure        string
	Outline        string
	CardBorder     string
	SelectedBorder string
	FormBorder     string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	c.ApplyDefaults()

	Highlight = c.Accent
	Title = c.Title
	Subtle = c.Subtle
	Normal = c.Normal
	Success = c.Success
	Pending = c.Pending
	Failure = c.Failure
	Outline = c.Outline
	CardBorder = c.CardBorder
	SelectedBorder = c.SelectedBorder
	FormBorder = c.FormBorder
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	WarningFg = c.WarningFg
	WarningBg = c.WarningBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
}
