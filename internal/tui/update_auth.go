package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/devyntra/internal/navigation"
	authservice "github.com/thenoetrevino/devyntra/internal/services/auth"
	"github.com/thenoetrevino/devyntra/internal/tui/huhforms"
	"github.com/thenoetrevino/devyntra/internal/tui/layers"
	"github.com/thenoetrevino/devyntra/internal/tui/state"
)

// authFormWidth is the width of the login and signup forms
func (m Model) authFormWidth() int {
	return layers.ModalWidth(m.UiState.Width()) - 6
}

func (m *Model) openLoginForm() tea.Cmd {
	m.FormState.ResetLoginForm(false)
	m.FormState.LoginForm = huhforms.CreateLoginForm(
		&m.FormState.LoginEmail,
		&m.FormState.LoginPassword,
	).WithTheme(huhforms.CreateDevyntraTheme(m.Config.ColorScheme)).
		WithWidth(m.authFormWidth())
	return m.FormState.LoginForm.Init()
}

func (m *Model) openSignupForm() tea.Cmd {
	m.FormState.ResetSignupForm(false)
	m.FormState.SignupForm = huhforms.CreateSignupForm(
		&m.FormState.SignupFullName,
		&m.FormState.SignupEmail,
		&m.FormState.SignupPassword,
		&m.FormState.SignupConfirmPassword,
	).WithTheme(huhforms.CreateDevyntraTheme(m.Config.ColorScheme)).
		WithWidth(m.authFormWidth())
	return m.FormState.SignupForm.Init()
}

// updateLogin handles keys on the login screen
func (m *Model) updateLogin(msg tea.KeyPressMsg) tea.Cmd {
	if m.FormState.AuthSubmitting {
		return nil
	}
	if key.Matches(msg, m.keys.SwitchAuth) {
		m.App.Router.Navigate(navigation.RouteSignup)
		return nil
	}
	return m.updateLoginForm(msg)
}

func (m *Model) updateLoginForm(msg tea.Msg) tea.Cmd {
	if m.FormState.LoginForm == nil {
		return nil
	}

	model, cmd := m.FormState.LoginForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.LoginForm = f
	}

	if m.FormState.LoginForm.State == huh.StateCompleted {
		return m.submitLogin()
	}
	return cmd
}

func (m *Model) submitLogin() tea.Cmd {
	m.FormState.AuthSubmitting = true

	auth := m.App.AuthService
	ctx := m.Ctx
	req := authservice.LoginRequest{
		Email:    m.FormState.LoginEmail,
		Password: m.FormState.LoginPassword,
	}
	return func() tea.Msg {
		_, err := auth.Login(ctx, req)
		return loginDoneMsg{err: err}
	}
}

// handleLoginDone reports a failed login and reopens the form. A successful
// login has already navigated to the dashboard through the session manager.
func (m *Model) handleLoginDone(msg loginDoneMsg) tea.Cmd {
	m.FormState.AuthSubmitting = false
	if msg.err == nil {
		return nil
	}

	m.logger.Warn("login failed", "error", msg.err)
	m.NotificationState.Add(state.LevelError, errorMessage(msg.err))
	if m.App.Router.Current() == navigation.RouteLogin {
		return m.openLoginForm()
	}
	return nil
}

// updateSignup handles keys on the signup screen
func (m *Model) updateSignup(msg tea.KeyPressMsg) tea.Cmd {
	if m.FormState.AuthSubmitting {
		return nil
	}
	if key.Matches(msg, m.keys.SwitchAuth) {
		m.App.Router.Navigate(navigation.RouteLogin)
		return nil
	}
	return m.updateSignupForm(msg)
}

func (m *Model) updateSignupForm(msg tea.Msg) tea.Cmd {
	if m.FormState.SignupForm == nil {
		return nil
	}

	model, cmd := m.FormState.SignupForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.SignupForm = f
	}

	if m.FormState.SignupForm.State == huh.StateCompleted {
		return m.submitSignup()
	}
	return cmd
}

func (m *Model) submitSignup() tea.Cmd {
	m.FormState.AuthSubmitting = true

	auth := m.App.AuthService
	ctx := m.Ctx
	req := authservice.SignupRequest{
		FullName:        m.FormState.SignupFullName,
		Email:           m.FormState.SignupEmail,
		Password:        m.FormState.SignupPassword,
		ConfirmPassword: m.FormState.SignupConfirmPassword,
	}
	return func() tea.Msg {
		result, err := auth.Signup(ctx, req)
		return signupDoneMsg{email: req.Email, result: result, err: err}
	}
}

// handleSignupDone reports the outcome. When the backend asks for email
// confirmation the user is sent to the login screen with the message.
func (m *Model) handleSignupDone(msg signupDoneMsg) tea.Cmd {
	m.FormState.AuthSubmitting = false

	if msg.err != nil {
		m.logger.Warn("signup failed", "error", msg.err)
		m.NotificationState.Add(state.LevelError, errorMessage(msg.err))
		if m.App.Router.Current() == navigation.RouteSignup {
			return m.openSignupForm()
		}
		return nil
	}

	if msg.result.Session != nil {
		if msg.result.Workspace != "" {
			m.NotificationState.Add(state.LevelInfo, "Workspace ready: "+msg.result.Workspace)
		}
		return nil
	}

	m.NotificationState.Add(state.LevelInfo, msg.result.Message)
	m.FormState.ResetSignupForm(true)
	m.FormState.LoginEmail = msg.email
	m.App.Router.Navigate(navigation.RouteLogin)
	return nil
}
