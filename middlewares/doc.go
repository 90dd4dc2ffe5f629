// Package middlewares provides the HTTP middleware chain for the contact
// service: permissive CORS with preflight handling, request ID propagation,
// and panic recovery.
package middlewares
