package app

import "context"

type ctxKey struct{}

// SetAppInContext attaches a to ctx so subcommands can reach it.
func SetAppInContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// GetAppFromContext returns the attached App, or nil.
func GetAppFromContext(ctx context.Context) *App {
	a, _ := ctx.Value(ctxKey{}).(*App)
	return a
}

// Connected returns the attached App with its backend open. Commands that
// only touch configuration never call it, so they work without credentials.
func Connected(ctx context.Context) (*App, error) {
	a := GetAppFromContext(ctx)
	if a == nil {
		return nil, ErrNotInitialized
	}
	if err := a.Connect(ctx); err != nil {
		return nil, err
	}
	return a, nil
}
