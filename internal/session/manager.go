// Package session holds the client-side session store: the access token and
// user identity, mirrored to local storage so they survive restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/devyntra/internal/database"
	"github.com/thenoetrevino/devyntra/internal/models"
	"github.com/thenoetrevino/devyntra/internal/navigation"
)

// Manager is the session store. Construct one per process with NewManager,
// call Load once at startup and Close on shutdown.
type Manager struct {
	store  database.LocalStorage
	nav    navigation.Navigator
	logger *slog.Logger

	mu       sync.RWMutex
	current  *models.Session
	loading  bool
	loadOnce sync.Once
}

// Option is a functional option for configuring a Manager
type Option func(*Manager)

// WithNavigator sets where Login and Logout send the user
func WithNavigator(nav navigation.Navigator) Option {
	return func(m *Manager) {
		if nav != nil {
			m.nav = nav
		}
	}
}

// WithLogger sets the logger for the manager
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a session store over the given local storage.
// The manager reports Loading() == true until Load has run.
func NewManager(store database.LocalStorage, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		nav:     navigation.Noop,
		logger:  slog.Default(),
		loading: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load performs the initial check of persisted storage. Only the first call
// does any work; loading flips to false exactly once whatever the outcome.
//
// A persisted value that does not decode is treated as "no session": it is
// logged and removed so the next start is clean.
func (m *Manager) Load(ctx context.Context) error {
	var loadErr error
	m.loadOnce.Do(func() {
		loadErr = m.load(ctx)

		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	})
	return loadErr
}

func (m *Manager) load(ctx context.Context) error {
	raw, ok, err := m.store.GetItem(ctx, models.SessionStorageKey)
	if err != nil {
		return fmt.Errorf("failed to read persisted session: %w", err)
	}
	if !ok {
		return nil
	}

	var stored models.Session
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		m.logger.Warn("discarding corrupted persisted session", "error", err)
		if rmErr := m.store.RemoveItem(ctx, models.SessionStorageKey); rmErr != nil {
			m.logger.Error("failed to remove corrupted session", "error", rmErr)
		}
		return nil
	}

	m.mu.Lock()
	m.current = &stored
	m.mu.Unlock()

	m.logger.Debug("restored persisted session", "user", stored.User.Email)
	return nil
}

// Login replaces the current session, persists it and navigates to the dashboard.
// The payload's shape is not validated.
func (m *Manager) Login(ctx context.Context, s *models.Session) error {
	if s == nil {
		return ErrNilSession
	}
	copied := *s

	data, err := json.Marshal(copied)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.store.SetItem(ctx, models.SessionStorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	// Only a stored session becomes current
	m.mu.Lock()
	m.current = &copied
	nav := m.nav
	m.mu.Unlock()

	m.logger.Info("logged in", "user", copied.User.Email)
	nav.Navigate(navigation.RouteDashboard)
	return nil
}

// Logout clears the session from memory and storage and navigates to the login route.
// Calling it while logged out only navigates.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	wasLoggedIn := m.current != nil
	m.current = nil
	nav := m.nav
	m.mu.Unlock()

	if err := m.store.RemoveItem(ctx, models.SessionStorageKey); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}

	if wasLoggedIn {
		m.logger.Info("logged out")
	}
	nav.Navigate(navigation.RouteLogin)
	return nil
}

// Current returns a copy of the active session, or nil when logged out
func (m *Manager) Current() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	copied := *m.current
	return &copied
}

// Loading reports whether the initial storage check is still pending
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Close tears the manager down. The persisted session is left in place so the
// next process can restore it; the in-memory copy and navigator are released.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	m.nav = navigation.Noop
	return nil
}
