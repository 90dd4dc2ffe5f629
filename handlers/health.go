package handlers

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/nuverum/contact-api/pkg/health"
)

// HealthRoutes mounts liveness and readiness probes. Readiness reports
// unhealthy while the email provider is unconfigured so monitoring can
// tell a deployment problem from transient delivery failures.
func HealthRoutes(log *slog.Logger, checks health.Checks) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/health/live", health.LivenessHandler())
		r.Get("/health/ready", health.ReadinessHandler(checks, health.WithLogger(log)))
	}
}
