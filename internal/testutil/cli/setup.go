// Package cli provides helpers for testing cobra commands against an
// in-memory store and a fake backend. It is separate from testutil to avoid
// import cycles when service tests import testutil.
package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/devyntra/internal/api"
	"github.com/thenoetrevino/devyntra/internal/app"
	"github.com/thenoetrevino/devyntra/internal/database"
	"github.com/thenoetrevino/devyntra/internal/logging"
	"github.com/thenoetrevino/devyntra/internal/models"
	"github.com/thenoetrevino/devyntra/internal/testutil"
)

// SetupCLITest creates an in-memory store and a fake backend and returns
// both the backend and the App wired to them
func SetupCLITest(t *testing.T) (*testutil.Backend, *app.App) {
	t.Helper()

	backend := testutil.NewBackend(t)
	client, err := api.NewClient(backend.URL())
	require.NoError(t, err)

	appInstance := app.New(
		database.NewRepository(testutil.SetupTestDB(t)),
		client,
		app.WithLogger(logging.Discard()),
	)
	t.Cleanup(func() { _ = appInstance.Close() })

	return backend, appInstance
}

// LoginTestUser issues a session on the backend and stores it in the app,
// as a previous `devyntra login` would have
func LoginTestUser(t *testing.T, backend *testutil.Backend, appInstance *app.App, email string) *models.Session {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, appInstance.Sessions.Load(ctx))
	s := backend.IssueSession(email, "Test User")
	require.NoError(t, appInstance.Sessions.Login(ctx, s))
	return s
}
