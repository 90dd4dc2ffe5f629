// Package contactapi is the contact-form submission service behind the
// Nuverum Ventures marketing site.
//
// The service exposes a single trust boundary, POST /api/send-email,
// which sanitizes and validates a contact submission and forwards it to
// the operator's inbox through an email-delivery provider. Submissions are
// transient: nothing is persisted, each request is handled independently,
// and the only suspension point is the provider call.
//
// The App type owns the HTTP server lifecycle; see cmd/server for the
// production wiring and pkg/client for the submission controller that
// drives the endpoint from the form side.
package contactapi
