package tui

import (
	"context"
	"net/http"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/devyntra/internal/models"
	"github.com/thenoetrevino/devyntra/internal/navigation"
	"github.com/thenoetrevino/devyntra/internal/poller"
	"github.com/thenoetrevino/devyntra/internal/testutil"
	"github.com/thenoetrevino/devyntra/internal/tui/components"
	"github.com/thenoetrevino/devyntra/internal/tui/state"
)

// ============================================================================
// Route guard
// ============================================================================

func TestView_LoadingBeforeWindowSize(t *testing.T) {
	m, _ := setupModel(t, navigation.RouteDashboard)
	m.UiState.SetSize(0, 0)
	assert.Equal(t, "Loading...", viewContent(m))
}

func TestGuard_PlaceholderWhileSessionCheckRuns(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)

	out := viewContent(m)
	assert.Contains(t, out, MsgCheckingSession)
	assert.NotContains(t, out, "Welcome to Devyntra")
	assert.Nil(t, m.poll, "no polling before the session check finishes")
	assert.Equal(t, navigation.RouteDashboard, h.app.Router.Current(), "no redirect while loading")
}

func TestGuard_RedirectsToLoginWithoutSession(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	finishSessionCheck(t, m)

	assert.Equal(t, navigation.RouteLogin, h.app.Router.Current())
	out := viewContent(m)
	assert.Contains(t, out, "Log in to Devyntra")
	assert.NotContains(t, out, "Welcome to Devyntra")
	assert.Zero(t, h.backend.CountRequests(http.MethodGet, "/projects"))
	assert.NotNil(t, m.FormState.LoginForm)
}

func TestGuard_RestoredSessionRendersDashboard(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	ctx := context.Background()

	// Persist a session as an earlier run would have
	s := h.backend.IssueSession("dev@example.com", "Dev")
	require.NoError(t, h.app.Sessions.Load(ctx))
	require.NoError(t, h.app.Sessions.Login(ctx, s))

	update(t, m, sessionLoadedMsg{})
	nextPoll(t, m)

	out := viewContent(m)
	assert.Contains(t, out, "Welcome to Devyntra")
	assert.Contains(t, out, "Logged in as dev@example.com")
	assert.Contains(t, out, MsgNoProjects)
}

// ============================================================================
// Project list polling
// ============================================================================

func TestPolling_RendersProjectsByStatus(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	finishSessionCheck(t, m)
	s := loginAs(t, m, h, "dev@example.com")

	ready := testutil.SampleProject("api", models.StatusReadyToDeploy)
	ready.Language = testutil.StrPtr("Go")
	h.backend.SeedProject(s.AccessToken, ready)
	h.backend.SeedProject(s.AccessToken, testutil.SampleProject("web", models.StatusAnalysisFailed))
	h.backend.SeedProject(s.AccessToken, testutil.SampleProject("odd", "foo_bar"))

	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	nextPoll(t, m)

	out := viewContent(m)
	assert.Contains(t, out, "api")
	assert.Contains(t, out, "ready to deploy")
	assert.Contains(t, out, "Language: Go")
	assert.Contains(t, out, "analysis failed")
	assert.Contains(t, out, "foo bar")
	assert.Contains(t, out, components.DeployButtonLabel)
	assert.Len(t, m.ProjectsState.Projects(), 3)
}

func TestPolling_ImmediateFetchThenOnePerTick(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	finishSessionCheck(t, m)
	s := loginAs(t, m, h, "dev@example.com")
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	nextPoll(t, m)
	assert.Equal(t, 1, h.backend.CountRequests(http.MethodGet, "/projects"))

	h.tickers.latest().tick(t)
	nextPoll(t, m)
	assert.Equal(t, 2, h.backend.CountRequests(http.MethodGet, "/projects"))

	reqs := h.backend.Requests()
	assert.Equal(t, "Bearer "+s.AccessToken, reqs[len(reqs)-1].Authorization)
}

func TestPolling_StopsWhenLeavingDashboard(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	finishSessionCheck(t, m)
	loginAs(t, m, h, "dev@example.com")
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	nextPoll(t, m)

	ticker := h.tickers.latest()
	update(t, m, keyPress("L"))

	assert.Nil(t, m.poll)
	assert.True(t, ticker.stopped.Load())

	before := h.backend.CountRequests(http.MethodGet, "/projects")
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, h.backend.CountRequests(http.MethodGet, "/projects"), "no requests after teardown")
}

func TestPolling_LogoutNavigatesToLogin(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	finishSessionCheck(t, m)
	loginAs(t, m, h, "dev@example.com")
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	update(t, m, keyPress("L"))

	assert.Equal(t, navigation.RouteLogin, h.app.Router.Current())
	assert.Nil(t, h.app.Sessions.Current())
	assert.Contains(t, viewContent(m), "Log in to Devyntra")
}

func TestPolling_SessionChangeRestartsGeneration(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	finishSessionCheck(t, m)
	loginAs(t, m, h, "first@example.com")
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	first := m.poll.generation
	firstTicker := h.tickers.latest()

	loginAs(t, m, h, "second@example.com")
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	require.NotNil(t, m.poll)
	assert.Greater(t, m.poll.generation, first)
	assert.True(t, firstTicker.stopped.Load())
	assert.Equal(t, 2, h.tickers.count())
}

func TestPolling_ErrorReplacesListAndClearsOnSuccess(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	finishSessionCheck(t, m)
	s := loginAs(t, m, h, "dev@example.com")
	h.backend.SeedProject(s.AccessToken, testutil.SampleProject("api", models.StatusAnalysisPending))
	h.backend.FailProjectList(http.StatusInternalServerError)
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	nextPoll(t, m)
	assert.Contains(t, viewContent(m), "Failed to fetch projects")

	h.backend.FailProjectList(0)
	h.tickers.latest().tick(t)
	nextPoll(t, m)

	out := viewContent(m)
	assert.NotContains(t, out, "Failed to fetch projects")
	assert.Contains(t, out, "analysis pending")
}

func TestPolling_DropsStaleResults(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	finishSessionCheck(t, m)
	loginAs(t, m, h, "dev@example.com")
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	gen := m.poll.generation

	newer := []models.Project{testutil.SampleProject("newer", models.StatusAnalysisPending)}
	older := []models.Project{testutil.SampleProject("older", models.StatusAnalysisPending)}

	update(t, m, pollResultMsg{generation: gen, result: poller.Result[[]models.Project]{Seq: 5, Value: newer}})
	update(t, m, pollResultMsg{generation: gen, result: poller.Result[[]models.Project]{Seq: 4, Value: older}})
	update(t, m, pollResultMsg{generation: gen - 1, result: poller.Result[[]models.Project]{Seq: 9, Value: older}})

	require.Len(t, m.ProjectsState.Projects(), 1)
	assert.Equal(t, "newer", m.ProjectsState.Projects()[0].Name)
}

// ============================================================================
// Dashboard keys
// ============================================================================

func TestDashboard_CursorAndClipboard(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	finishSessionCheck(t, m)
	s := loginAs(t, m, h, "dev@example.com")
	h.backend.SeedProject(s.AccessToken, testutil.SampleProject("api", models.StatusAnalysisPending))
	h.backend.SeedProject(s.AccessToken, testutil.SampleProject("web", models.StatusReadyToDeploy))
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	nextPoll(t, m)

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	update(t, m, keyPress("j"))
	assert.Equal(t, 1, m.ProjectsState.Selected())
	update(t, m, specialKey(tea.KeyUp))
	assert.Equal(t, 0, m.ProjectsState.Selected())
	update(t, m, specialKey(tea.KeyDown))

	// Deploy has no effect
	update(t, m, keyPress("d"))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	cmd := update(t, m, keyPress("y"))
	for _, msg := range runCmd(cmd) {
		update(t, m, msg)
	}
	assert.Equal(t, "https://github.com/acme/web", copied)
	assert.Contains(t, viewContent(m), "Repository URL copied")
}

func TestDashboard_HelpToggle(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	finishSessionCheck(t, m)
	loginAs(t, m, h, "dev@example.com")
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	update(t, m, keyPress("?"))
	assert.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.NotEmpty(t, viewContent(m))

	update(t, m, specialKey(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestDashboard_QuitStopsPolling(t *testing.T) {
	m, h := setupModel(t, navigation.RouteDashboard)
	finishSessionCheck(t, m)
	loginAs(t, m, h, "dev@example.com")
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.NotNil(t, m.poll)

	cmd := update(t, m, keyPress("q"))
	require.NotNil(t, cmd)
	assert.Nil(t, m.poll)
}

func TestUpdate_CancelledContextQuits(t *testing.T) {
	m, _ := setupModel(t, navigation.RouteDashboard)
	ctx, cancel := context.WithCancel(context.Background())
	m.Ctx = ctx
	cancel()

	cmd := update(t, m, keyPress("j"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
