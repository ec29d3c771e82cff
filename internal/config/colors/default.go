package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Badges
		Success: "#5FD75F",
		Pending: "#8A8A8A",
		Failure: "#FF5F5F",
		Outline: "#D0D0D0",

		// UI elements
		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		FormBorder:     "#5F87D7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
