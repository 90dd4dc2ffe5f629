package contactapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Option configures the application.
type Option func(*App)

// WithContext sets a custom base context for signal handling.
// Useful for testing or when integrating with existing context hierarchies.
// Defaults to context.Background() if not set.
func WithContext(ctx context.Context) Option {
	return func(a *App) {
		if ctx != nil {
			a.baseCtx = ctx
		}
	}
}

// WithLogger sets the application logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithAddress sets the HTTP server address.
// Defaults to ":8080".
func WithAddress(addr string) Option {
	return func(a *App) {
		if addr != "" {
			a.server.Addr = addr
		}
	}
}

// WithMiddleware appends middleware to the chain, applied in order.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithRoutes registers route mount functions, applied after middleware.
func WithRoutes(mounts ...func(chi.Router)) Option {
	return func(a *App) {
		a.routes = append(a.routes, mounts...)
	}
}

// WithShutdownTimeout sets the graceful shutdown timeout.
// Defaults to 30 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.shutdownTimeout = d
		}
	}
}

// WithShutdownHook registers a function to run during graceful shutdown,
// after the HTTP server has stopped accepting connections.
func WithShutdownHook(hook func(ctx context.Context) error) Option {
	return func(a *App) {
		if hook != nil {
			a.shutdownHooks = append(a.shutdownHooks, hook)
		}
	}
}
