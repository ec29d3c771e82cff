package cli

import (
	"context"

	"github.com/thenoetrevino/devyntra/internal/app"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying a, which GetCLIFromContext uses instead
// of opening the app from configuration. Tests inject their app this way.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI over the app carried by ctx, or opens one
// from configuration when there is none. The caller must Close it.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return fromApp(ctx, a)
	}
	return NewCLI(ctx)
}
