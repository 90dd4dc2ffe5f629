package contact

import (
	"github.com/nuverum/contact-api/pkg/sanitizer"
)

// Field length bounds, checked against the sanitized value.
const (
	SubjectMinLen = 1
	SubjectMaxLen = 200
	MessageMinLen = 10
	MessageMaxLen = 5000
)

// Submission is the sole entity of the contact pipeline. It is transient:
// created on form submit, sanitized, forwarded to the mail provider, and
// discarded. Nothing is persisted.
type Submission struct {
	From    string `json:"from"    validate:"required,email_shape"`
	Subject string `json:"subject" validate:"min=1,max=200"`
	Message string `json:"message" validate:"min=10,max=5000"`
}

// Normalize returns a copy with every field passed through the canonical
// sanitizer. Validation rules apply to the normalized value, never the raw
// input (sanitize-then-validate).
func (s Submission) Normalize() Submission {
	return Submission{
		From:    sanitizer.Sanitize(s.From),
		Subject: sanitizer.Sanitize(s.Subject),
		Message: sanitizer.Sanitize(s.Message),
	}
}

// FieldError is a user-facing validation message for a single field.
// It never echoes the offending input or sanitizer internals.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
