package contactapi

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
)

// App orchestrates the service lifecycle: HTTP routing, middleware, and
// graceful shutdown. App is immutable after creation - all configuration
// is done via New().
type App struct {
	// Base context for signal handling (defaults to context.Background())
	baseCtx context.Context

	logger *slog.Logger

	server      *http.Server
	router      chi.Router
	listener    net.Listener // set during Run()
	middlewares []func(http.Handler) http.Handler
	routes      []func(chi.Router)

	shutdownTimeout time.Duration
	shutdownHooks   []func(ctx context.Context) error
	done            chan struct{} // for programmatic shutdown via Stop()
	setupOnce       sync.Once
}

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := contactapi.New(
//	    contactapi.WithAddress(":8080"),
//	    contactapi.WithLogger(log),
//	    contactapi.WithMiddleware(middlewares.CORS()),
//	    contactapi.WithRoutes(handler.Routes),
//	)
func New(opts ...Option) *App {
	router := chi.NewRouter()

	a := &App{
		router:          router,
		shutdownTimeout: 30 * time.Second,
		done:            make(chan struct{}),
		server: &http.Server{
			Addr:              ":8080",
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Addr returns the server's listening address.
// Returns empty string if the server hasn't started yet.
func (a *App) Addr() string {
	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}

// Stop triggers a graceful shutdown programmatically.
// Safe to call multiple times.
func (a *App) Stop() {
	select {
	case <-a.done:
		// Already closed
	default:
		close(a.done)
	}
}

// Router returns the fully assembled router, with middleware applied and
// routes mounted. Useful for driving the app with httptest without
// starting a real listener.
func (a *App) Router() chi.Router {
	a.setupRoutes()
	return a.router
}

// setupRoutes applies middleware and mounts registered routes, once.
func (a *App) setupRoutes() {
	a.setupOnce.Do(func() {
		for _, mw := range a.middlewares {
			a.router.Use(mw)
		}
		for _, mount := range a.routes {
			mount(a.router)
		}
	})
}
