package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nuverum/contact-api/pkg/contact"
	"github.com/nuverum/contact-api/pkg/mailer"
	"github.com/nuverum/contact-api/pkg/sanitizer"
)

// maxBodyBytes caps the request body well above the largest legal payload
// (5000-char message) while rejecting abuse.
const maxBodyBytes = 64 << 10

// ContactHandler is the sole trust boundary of the service. It treats all
// client-supplied data as adversarial regardless of any client-side
// validation already performed: sanitize, validate, then re-sanitize once
// more immediately before constructing the outbound email.
type ContactHandler struct {
	log    *slog.Logger
	mailer *mailer.Mailer // nil when the provider is not configured
	config mailer.Config
}

// NewContactHandler creates the contact submission handler. Pass a nil
// mailer when the provider API key is absent; the handler then reports the
// service as not configured without ever attempting delivery.
func NewContactHandler(log *slog.Logger, m *mailer.Mailer, cfg mailer.Config) *ContactHandler {
	return &ContactHandler{
		log:    log,
		mailer: m,
		config: cfg,
	}
}

// Routes mounts the handler. OPTIONS is answered by the CORS middleware;
// the route is still declared so chi does not reject the method outright.
func (h *ContactHandler) Routes(r chi.Router) {
	r.Post("/api/send-email", h.submit)
	r.Options("/api/send-email", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// submitResponse is the success body.
type submitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// errorResponse is the body for every failure branch. Details carry
// field-level validation messages only: never raw input, never sanitizer
// internals.
type errorResponse struct {
	Error   string               `json:"error"`
	Details []contact.FieldError `json:"details,omitempty"`
}

func (h *ContactHandler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Configuration gate first: an operator problem, not a user problem.
	// No provider call is ever attempted on this branch.
	if h.mailer == nil {
		h.log.ErrorContext(ctx, "contact submission rejected: email provider not configured")
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: "Email service is not configured",
		})
		return
	}

	var sub contact.Submission
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request data"})
		return
	}

	norm := sub.Normalize()
	if fieldErrs := norm.Validate(); fieldErrs != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request data",
			Details: fieldErrs,
		})
		return
	}

	// Defense in depth: one more sanitization pass right before the email
	// is assembled, with the strict variant, so a validation quirk cannot
	// leak an unsanitized value into the outbound message.
	email, err := mailer.ContactNotification(h.config,
		sanitizer.Strict(norm.From),
		sanitizer.Strict(norm.Subject),
		sanitizer.Strict(norm.Message),
	)
	if err != nil {
		h.log.ErrorContext(ctx, "failed to build contact notification", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	// Delivery is detached from request cancellation: an accepted
	// submission must reach the inbox even if the client disconnects
	// mid-send. Request values (request id) stay attached for logging.
	id, err := h.mailer.Send(context.WithoutCancel(ctx), email)
	if err != nil {
		h.log.ErrorContext(ctx, "failed to deliver contact notification", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to send email"})
		return
	}

	h.log.InfoContext(ctx, "contact notification delivered", slog.String("message_id", id))
	writeJSON(w, http.StatusOK, submitResponse{Success: true, ID: id})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
