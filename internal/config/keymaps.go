package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Projects
	NewProject  string `yaml:"new_project"`
	Deploy      string `yaml:"deploy"`
	CopyRepoURL string `yaml:"copy_repo_url"`

	// Navigation
	PrevProject string `yaml:"prev_project"`
	NextProject string `yaml:"next_project"`

	// Auth
	SwitchAuthScreen string `yaml:"switch_auth_screen"`
	Logout           string `yaml:"logout"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NewProject:  "n",
		Deploy:      "d",
		CopyRepoURL: "y",

		PrevProject: "k",
		NextProject: "j",

		SwitchAuthScreen: "ctrl+t",
		Logout:           "L",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NewProject == "" {
		k.NewProject = defaults.NewProject
	}
	if k.Deploy == "" {
		k.Deploy = defaults.Deploy
	}
	if k.CopyRepoURL == "" {
		k.CopyRepoURL = defaults.CopyRepoURL
	}
	if k.PrevProject == "" {
		k.PrevProject = defaults.PrevProject
	}
	if k.NextProject == "" {
		k.NextProject = defaults.NextProject
	}
	if k.SwitchAuthScreen == "" {
		k.SwitchAuthScreen = defaults.SwitchAuthScreen
	}
	if k.Logout == "" {
		k.Logout = defaults.Logout
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
