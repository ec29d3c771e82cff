package state

import "charm.land/huh/v2"

// FormState holds the huh forms and their bound values. Forms bind to the
// addresses of these fields, so FormState must stay behind a pointer.
type FormState struct {
	// New project dialog
	ProjectForm    *huh.Form
	ProjectName    string
	ProjectRepoURL string
	// Submitting is true while the create request is outstanding; the
	// dialog ignores input meanwhile
	Submitting  bool
	SubmitError string

	// Login screen
	LoginForm     *huh.Form
	LoginEmail    string
	LoginPassword string

	// Signup screen
	SignupForm            *huh.Form
	SignupFullName        string
	SignupEmail           string
	SignupPassword        string
	SignupConfirmPassword string

	// AuthSubmitting is true while a login or signup request is outstanding
	AuthSubmitting bool
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// ResetProjectForm closes the project dialog and clears its values.
func (s *FormState) ResetProjectForm() {
	s.ProjectForm = nil
	s.ProjectName = ""
	s.ProjectRepoURL = ""
	s.Submitting = false
	s.SubmitError = ""
}

// ResetLoginForm drops the login form. The email survives unless clearEmail is set.
func (s *FormState) ResetLoginForm(clearEmail bool) {
	s.LoginForm = nil
	s.LoginPassword = ""
	if clearEmail {
		s.LoginEmail = ""
	}
}

// ResetSignupForm drops the signup form. Passwords are always cleared.
func (s *FormState) ResetSignupForm(clearIdentity bool) {
	s.SignupForm = nil
	s.SignupPassword = ""
	s.SignupConfirmPassword = ""
	if clearIdentity {
		s.SignupFullName = ""
		s.SignupEmail = ""
	}
}
