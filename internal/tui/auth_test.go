package tui

import (
	"net/http"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/devyntra/internal/navigation"
	"github.com/thenoetrevino/devyntra/internal/tui/state"
)

func loginScreen(t *testing.T) (*Model, *harness) {
	t.Helper()
	m, h := setupModel(t, navigation.RouteLogin)
	finishSessionCheck(t, m)
	require.Equal(t, navigation.RouteLogin, m.UiState.Route())
	return m, h
}

func TestLogin_SuccessOpensDashboard(t *testing.T) {
	m, h := loginScreen(t)
	h.backend.AddUser("dev@example.com", "hunter22", "Dev")

	m.FormState.LoginEmail = "dev@example.com"
	m.FormState.LoginPassword = "hunter22"
	cmd := m.submitLogin()
	assert.Contains(t, viewContent(m), "Signing in...")
	update(t, m, cmd())

	assert.Equal(t, navigation.RouteDashboard, h.app.Router.Current())
	require.NotNil(t, h.app.Sessions.Current())
	require.NotNil(t, m.poll, "dashboard starts polling after login")
	nextPoll(t, m)
	assert.Contains(t, viewContent(m), "Logged in as dev@example.com")
}

func TestLogin_FailureShowsDetail(t *testing.T) {
	m, h := loginScreen(t)
	h.backend.AddUser("dev@example.com", "hunter22", "Dev")

	m.FormState.LoginEmail = "dev@example.com"
	m.FormState.LoginPassword = "wrong"
	update(t, m, m.submitLogin()())

	assert.Equal(t, navigation.RouteLogin, h.app.Router.Current())
	require.True(t, m.NotificationState.HasAny())
	n := m.NotificationState.All()[0]
	assert.Equal(t, state.LevelError, n.Level)
	assert.Equal(t, "Invalid login credentials", n.Message)
	assert.Equal(t, "dev@example.com", m.FormState.LoginEmail, "email kept for retry")
	assert.Empty(t, m.FormState.LoginPassword)
	assert.Zero(t, h.backend.CountRequests(http.MethodGet, "/projects"))
}

func TestAuth_SwitchScreens(t *testing.T) {
	m, h := loginScreen(t)

	update(t, m, tea.KeyPressMsg(tea.Key{Code: 't', Mod: tea.ModCtrl}))
	assert.Equal(t, navigation.RouteSignup, h.app.Router.Current())
	assert.NotNil(t, m.FormState.SignupForm)
	assert.Contains(t, viewContent(m), "Create your Devyntra account")

	update(t, m, tea.KeyPressMsg(tea.Key{Code: 't', Mod: tea.ModCtrl}))
	assert.Equal(t, navigation.RouteLogin, h.app.Router.Current())
}

func TestSignup_WithSessionLogsIn(t *testing.T) {
	m, h := loginScreen(t)
	h.app.Router.Navigate(navigation.RouteSignup)
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m.FormState.SignupFullName = "Ada"
	m.FormState.SignupEmail = "ada@example.com"
	m.FormState.SignupPassword = "secret1"
	m.FormState.SignupConfirmPassword = "secret1"
	update(t, m, m.submitSignup()())

	assert.Equal(t, navigation.RouteDashboard, h.app.Router.Current())
	require.NotNil(t, h.app.Sessions.Current())
	assert.Equal(t, "ada@example.com", h.app.Sessions.Current().User.Email)
}

func TestSignup_ConfirmationReturnsToLogin(t *testing.T) {
	m, h := loginScreen(t)
	h.backend.RequireEmailConfirmation(true)
	h.app.Router.Navigate(navigation.RouteSignup)
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m.FormState.SignupFullName = "Ada"
	m.FormState.SignupEmail = "ada@example.com"
	m.FormState.SignupPassword = "secret1"
	m.FormState.SignupConfirmPassword = "secret1"
	update(t, m, m.submitSignup()())

	assert.Equal(t, navigation.RouteLogin, h.app.Router.Current())
	assert.Nil(t, h.app.Sessions.Current())
	assert.Equal(t, "ada@example.com", m.FormState.LoginEmail)
	require.True(t, m.NotificationState.HasAny())
	assert.Contains(t, m.NotificationState.All()[0].Message, "check your email")
}

func TestSignup_PasswordMismatch(t *testing.T) {
	m, h := loginScreen(t)
	h.app.Router.Navigate(navigation.RouteSignup)
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m.FormState.SignupFullName = "Ada"
	m.FormState.SignupEmail = "ada@example.com"
	m.FormState.SignupPassword = "secret1"
	m.FormState.SignupConfirmPassword = "secret2"
	update(t, m, m.submitSignup()())

	assert.Equal(t, navigation.RouteSignup, h.app.Router.Current())
	assert.Zero(t, h.backend.CountRequests(http.MethodPost, "/signup"))
	assert.True(t, m.NotificationState.HasAny())
}
