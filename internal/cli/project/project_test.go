package project

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/devyntra/internal/cli"
	"github.com/thenoetrevino/devyntra/internal/models"
	"github.com/thenoetrevino/devyntra/internal/testutil"
	"github.com/thenoetrevino/devyntra/internal/testutil/cli"
)

// ============================================================================
// project create
// ============================================================================

func TestCreateProject_Positive(t *testing.T) {
	backend, app := cli.SetupCLITest(t)
	s := cli.LoginTestUser(t, backend, app, "dev@example.com")

	t.Run("human output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "Demo", "--repo-url", "https://github.com/u/r",
		})
		require.NoError(t, err)
		assert.Contains(t, output, "Project 'Demo' created")
		assert.Contains(t, output, "Analysis has started.")

		posts := backend.RequestsTo(http.MethodPost, "/projects")
		require.Len(t, posts, 1)
		assert.Equal(t, "Bearer "+s.AccessToken, posts[0].Authorization)
		assert.JSONEq(t, `{"name":"Demo","repo_url":"https://github.com/u/r"}`, string(posts[0].Body))
	})

	t.Run("quiet prints the id", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "Quiet", "--repo-url", "https://github.com/u/q", "--quiet",
		})
		require.NoError(t, err)
		assert.Len(t, strings.TrimSpace(output), 36, "uuid from the backend")
	})

	t.Run("json output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "Json", "--repo-url", "https://github.com/u/j", "--json",
		})
		require.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, "Json", data["name"])
		assert.Equal(t, models.StatusAnalysisPending, data["status"])
	})
}

func TestCreateProject_Negative(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *testutil.Backend)
		login   bool
		args    []string
		exit    int
		message string
	}{
		{
			name:    "not logged in",
			args:    []string{"--name", "Demo", "--repo-url", "https://github.com/u/r"},
			exit:    clipkg.ExitUnauthenticated,
			message: "You must be logged in to create a project.",
		},
		{
			name:  "blank name",
			login: true,
			args:  []string{"--name", "  ", "--repo-url", "https://github.com/u/r"},
			exit:  clipkg.ExitValidation,
		},
		{
			name:    "backend detail",
			login:   true,
			setup:   func(b *testutil.Backend) { b.FailProjectCreate(http.StatusBadRequest, "bad url") },
			args:    []string{"--name", "Demo", "--repo-url", "nope"},
			exit:    clipkg.ExitValidation,
			message: "bad url",
		},
		{
			name:    "generic failure",
			login:   true,
			setup:   func(b *testutil.Backend) { b.FailProjectCreate(http.StatusInternalServerError, "") },
			args:    []string{"--name", "Demo", "--repo-url", "https://github.com/u/r"},
			exit:    clipkg.ExitGeneral,
			message: "Failed to create project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, app := cli.SetupCLITest(t)
			if tt.login {
				cli.LoginTestUser(t, backend, app, "dev@example.com")
			}
			if tt.setup != nil {
				tt.setup(backend)
			}

			output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.exit, clipkg.ExitCode(err))
			if tt.message != "" {
				errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
				assert.Equal(t, tt.message, errData["message"])
			}
		})
	}
}

func TestCreateProject_NoNetworkWithoutSession(t *testing.T) {
	backend, app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Demo", "--repo-url", "https://github.com/u/r"})
	require.Error(t, err)
	assert.Zero(t, backend.CountRequests(http.MethodPost, "/projects"))
}

// ============================================================================
// project list
// ============================================================================

func TestListProjects(t *testing.T) {
	backend, app := cli.SetupCLITest(t)
	s := cli.LoginTestUser(t, backend, app, "dev@example.com")

	t.Run("empty", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "You haven't created any projects yet.")
	})

	ready := testutil.SampleProject("api", models.StatusReadyToDeploy)
	ready.ID = "p-1"
	backend.SeedProject(s.AccessToken, ready)
	backend.SeedProject(s.AccessToken, testutil.SampleProject("odd", "foo_bar"))

	t.Run("human output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Found 2 projects")
		assert.Contains(t, output, "ready to deploy")
		assert.Contains(t, output, "foo bar")
		assert.Contains(t, output, "https://github.com/acme/api")
	})

	t.Run("quiet", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "p-1", strings.Split(strings.TrimSpace(output), "\n")[0])
	})

	t.Run("failure", func(t *testing.T) {
		backend.FailProjectList(http.StatusInternalServerError)
		defer backend.FailProjectList(0)

		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.Error(t, err)
		errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "Failed to fetch projects", errData["message"])
	})
}

func TestListProjects_Watch(t *testing.T) {
	backend, app := cli.SetupCLITest(t)
	s := cli.LoginTestUser(t, backend, app, "dev@example.com")
	backend.SeedProject(s.AccessToken, testutil.SampleProject("api", models.StatusAnalysisPending))

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{
		"--watch", "--interval", "10ms", "--count", "3", "--json",
	})
	require.NoError(t, err)

	docs := testutil.ParseJSONLines(t, output)
	require.Len(t, docs, 3, "one JSON document per refresh")
	for _, doc := range docs {
		assert.Equal(t, true, doc["success"])
		assert.Len(t, doc["projects"], 1)
	}
	assert.GreaterOrEqual(t, backend.CountRequests(http.MethodGet, "/projects"), 3)

	// Nothing is issued once the command returned
	after := backend.CountRequests(http.MethodGet, "/projects")
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, backend.CountRequests(http.MethodGet, "/projects"))
}

func TestListProjects_WatchStopsOnCancel(t *testing.T) {
	backend, app := cli.SetupCLITest(t)
	cli.LoginTestUser(t, backend, app, "dev@example.com")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := cli.ExecuteCLICommandWithContext(t, ctx, app, ListCmd(), []string{"--watch", "--interval", "10ms", "--quiet"})
	assert.NoError(t, err)
}

func TestListProjects_WatchRequiresLogin(t *testing.T) {
	backend, app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--watch"})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitUnauthenticated, clipkg.ExitCode(err))
	assert.Zero(t, backend.CountRequests(http.MethodGet, "/projects"))
}
