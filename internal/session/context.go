package session

import "context"

type contextKey struct{}

// NewContext returns a child context that carries m. Everything that reads the
// session through FromContext must run under a context built here.
func NewContext(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext returns the manager installed by NewContext, or
// ErrNoSessionProvider when ctx was not derived from one.
func FromContext(ctx context.Context) (*Manager, error) {
	m, ok := ctx.Value(contextKey{}).(*Manager)
	if !ok || m == nil {
		return nil, ErrNoSessionProvider
	}
	return m, nil
}
