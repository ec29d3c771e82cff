package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/devyntra/internal/database"
	"github.com/thenoetrevino/devyntra/internal/models"
	"github.com/thenoetrevino/devyntra/internal/navigation"
)

func setupStore(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

func testSession() *models.Session {
	return &models.Session{
		AccessToken: "token-123",
		User: models.User{
			ID:       "user-1",
			Email:    "dev@example.com",
			FullName: "Dev Eloper",
		},
	}
}

func TestManager_LoadingFlipsOnce(t *testing.T) {
	ctx := context.Background()
	m := NewManager(setupStore(t))

	assert.True(t, m.Loading(), "manager should be loading before Load")
	require.NoError(t, m.Load(ctx))
	assert.False(t, m.Loading())

	require.NoError(t, m.Load(ctx))
	assert.False(t, m.Loading())
}

func TestManager_LoginPersistsAcrossManagers(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	router := navigation.NewRouter(navigation.RouteLogin)

	m := NewManager(store, WithNavigator(router))
	require.NoError(t, m.Load(ctx))
	require.NoError(t, m.Login(ctx, testSession()))

	assert.Equal(t, testSession(), m.Current())
	assert.Equal(t, navigation.RouteDashboard, router.Current())

	fresh := NewManager(store)
	require.NoError(t, fresh.Load(ctx))
	assert.Equal(t, testSession(), fresh.Current())
}

func TestManager_LogoutClearsMemoryAndStorage(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	router := navigation.NewRouter(navigation.RouteLogin)

	m := NewManager(store, WithNavigator(router))
	require.NoError(t, m.Load(ctx))
	require.NoError(t, m.Login(ctx, testSession()))
	require.NoError(t, m.Logout(ctx))

	assert.Nil(t, m.Current())
	assert.Equal(t, navigation.RouteLogin, router.Current())

	fresh := NewManager(store)
	require.NoError(t, fresh.Load(ctx))
	assert.Nil(t, fresh.Current())
}

func TestManager_LogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	var navigated []navigation.Route
	nav := navigation.NavigatorFunc(func(r navigation.Route) { navigated = append(navigated, r) })

	m := NewManager(setupStore(t), WithNavigator(nav))
	require.NoError(t, m.Load(ctx))

	require.NoError(t, m.Logout(ctx))
	require.NoError(t, m.Logout(ctx))

	assert.Nil(t, m.Current())
	assert.Equal(t, []navigation.Route{navigation.RouteLogin, navigation.RouteLogin}, navigated)
}

func TestManager_LoginReplacesSession(t *testing.T) {
	ctx := context.Background()
	m := NewManager(setupStore(t))
	require.NoError(t, m.Load(ctx))

	first := testSession()
	second := testSession()
	second.AccessToken = "token-456"

	require.NoError(t, m.Login(ctx, first))
	require.NoError(t, m.Login(ctx, second))

	assert.Equal(t, "token-456", m.Current().AccessToken)
}

func TestManager_LoginNil(t *testing.T) {
	m := NewManager(setupStore(t))
	assert.ErrorIs(t, m.Login(context.Background(), nil), ErrNilSession)
}

func TestManager_CurrentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewManager(setupStore(t))
	require.NoError(t, m.Login(ctx, testSession()))

	got := m.Current()
	got.AccessToken = "mutated"

	assert.Equal(t, "token-123", m.Current().AccessToken)
}

func TestManager_CorruptedSessionTreatedAsLoggedOut(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	require.NoError(t, store.SetItem(ctx, models.SessionStorageKey, "{not json"))

	m := NewManager(store)
	require.NoError(t, m.Load(ctx))

	assert.False(t, m.Loading())
	assert.Nil(t, m.Current())

	_, ok, err := store.GetItem(ctx, models.SessionStorageKey)
	require.NoError(t, err)
	assert.False(t, ok, "corrupted entry should be removed")
}

// failingStore fails every operation
type failingStore struct{}

var errDisk = errors.New("disk on fire")

func (failingStore) GetItem(context.Context, string) (string, bool, error) { return "", false, errDisk }
func (failingStore) SetItem(context.Context, string, string) error         { return errDisk }
func (failingStore) RemoveItem(context.Context, string) error              { return errDisk }

// flakyStore fails writes once fail is set
type flakyStore struct {
	database.LocalStorage
	fail bool
}

func (s *flakyStore) SetItem(ctx context.Context, key, value string) error {
	if s.fail {
		return errDisk
	}
	return s.LocalStorage.SetItem(ctx, key, value)
}

func TestManager_LoadStorageErrorStillFinishesLoading(t *testing.T) {
	m := NewManager(failingStore{})

	err := m.Load(context.Background())
	assert.ErrorIs(t, err, errDisk)
	assert.False(t, m.Loading())
	assert.Nil(t, m.Current())
}

func TestManager_LoginPersistFailureDoesNotNavigate(t *testing.T) {
	router := navigation.NewRouter(navigation.RouteLogin)
	m := NewManager(failingStore{}, WithNavigator(router))

	err := m.Login(context.Background(), testSession())
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, navigation.RouteLogin, router.Current())
	assert.Nil(t, m.Current(), "an unpersisted session must not become current")
}

func TestManager_LoginPersistFailureKeepsPreviousSession(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{LocalStorage: setupStore(t)}
	m := NewManager(store)

	first := testSession()
	require.NoError(t, m.Login(ctx, first))

	store.fail = true
	second := testSession()
	second.AccessToken = "token-456"
	require.Error(t, m.Login(ctx, second))

	require.NotNil(t, m.Current())
	assert.Equal(t, first.AccessToken, m.Current().AccessToken)
}

func TestManager_Close(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	m := NewManager(store)
	require.NoError(t, m.Login(ctx, testSession()))
	require.NoError(t, m.Close())

	assert.Nil(t, m.Current())

	// teardown must not touch the persisted copy
	_, ok, err := store.GetItem(ctx, models.SessionStorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
}
