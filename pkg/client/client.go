// Package client is the submission controller driving the contact
// endpoint from the form side. It owns field state, computes safe-length
// previews with the same canonical sanitizer the server enforces, performs
// local validation, and submits the sanitized payload.
//
// The submit flow is an explicit finite-state machine (idle, submitting,
// success, error) with transitions triggered only by Submit and its
// asynchronous outcome. Mutually exclusive states fall out of the
// representation instead of ad hoc boolean flags.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/nuverum/contact-api/pkg/contact"
	"github.com/nuverum/contact-api/pkg/sanitizer"
)

// Status is the submission state of the form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Form field names, matching the wire format.
const (
	FieldFrom    = "from"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// DefaultResetDelay is how long a successful submission is shown before
// the form returns to idle.
const DefaultResetDelay = 3 * time.Second

// Default mailto fallback target: the operator's inbox, reachable even
// when the endpoint is down.
const (
	DefaultMailtoAddress = "thomas@nuverum.com"
	DefaultMailtoSubject = "Nuverum Ventures Inquiry"
)

var (
	// ErrSubmitInFlight indicates Submit was called while a submission
	// was already in flight.
	ErrSubmitInFlight = errors.New("a submission is already in flight")

	// ErrValidationFailed indicates local validation blocked the
	// submission; see FieldErrors for per-field messages.
	ErrValidationFailed = errors.New("submission failed local validation")

	// ErrSubmitFailed indicates the endpoint rejected the submission or
	// was unreachable. Deliberately generic: the mailto fallback remains
	// available regardless of the cause.
	ErrSubmitFailed = errors.New("failed to submit contact form")

	// ErrUnknownField indicates an unrecognized form field name.
	ErrUnknownField = errors.New("unknown form field")
)

// Form is the client-side submission controller. Safe for concurrent use,
// though it models a single user's form: at most one submission is in
// flight at a time.
type Form struct {
	mu          sync.Mutex
	values      contact.Submission // raw input as typed
	status      Status
	fieldErrors map[string]string

	endpoint   string
	httpClient *http.Client
	resetDelay time.Duration
	// scheduleReset is swappable so tests can trigger the auto-reset
	// without waiting.
	scheduleReset func(d time.Duration, fn func())

	mailtoAddress string
	mailtoSubject string
}

// Option configures the Form.
type Option func(*Form)

// WithHTTPClient sets the HTTP client used for submission.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Form) {
		if c != nil {
			f.httpClient = c
		}
	}
}

// WithResetDelay sets how long the success state is held before the form
// auto-resets to idle. Defaults to 3 seconds.
func WithResetDelay(d time.Duration) Option {
	return func(f *Form) {
		if d > 0 {
			f.resetDelay = d
		}
	}
}

// WithResetScheduler replaces the timer used for the success auto-reset.
func WithResetScheduler(schedule func(d time.Duration, fn func())) Option {
	return func(f *Form) {
		if schedule != nil {
			f.scheduleReset = schedule
		}
	}
}

// WithMailto sets the fallback mail address and subject.
func WithMailto(address, subject string) Option {
	return func(f *Form) {
		if address != "" {
			f.mailtoAddress = address
		}
		if subject != "" {
			f.mailtoSubject = subject
		}
	}
}

// WithPrefill seeds the sender email and subject, e.g. from a referring
// call-to-action.
func WithPrefill(email, subject string) Option {
	return func(f *Form) {
		f.values.From = email
		f.values.Subject = subject
	}
}

// New creates a Form targeting the given submission endpoint URL.
func New(endpoint string, opts ...Option) *Form {
	f := &Form{
		status:        StatusIdle,
		endpoint:      endpoint,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		resetDelay:    DefaultResetDelay,
		mailtoAddress: DefaultMailtoAddress,
		mailtoSubject: DefaultMailtoSubject,
	}
	f.scheduleReset = func(d time.Duration, fn func()) {
		time.AfterFunc(d, fn)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetField stores raw input for the named field. Typing is never blocked;
// validation only gates Submit.
func (f *Form) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case FieldFrom:
		f.values.From = value
	case FieldSubject:
		f.values.Subject = value
	case FieldMessage:
		f.values.Message = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// SafeLength reports how long the named field will be after sanitization,
// for live character counters. This is the same canonical sanitizer the
// server enforces, so the preview never drifts from the authoritative pass.
func (f *Form) SafeLength(name string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var raw string
	switch name {
	case FieldFrom:
		raw = f.values.From
	case FieldSubject:
		raw = f.values.Subject
	case FieldMessage:
		raw = f.values.Message
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return utf8.RuneCountInString(sanitizer.Sanitize(raw)), nil
}

// Status returns the current submission state.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// FieldErrors returns the messages from the last failed validation, keyed
// by field name. Nil when the last validation passed.
func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fieldErrors == nil {
		return nil
	}
	out := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

// Validate applies the shared format rules to the sanitized field values
// and records per-field messages. It never changes the submission state.
func (f *Form) Validate() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fieldErrors = toFieldMap(f.values.Normalize().Validate())
	if f.fieldErrors == nil {
		return nil
	}
	out := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

// Submit validates and posts the sanitized submission.
//
// Transitions: idle|success|error -> submitting, then success or error
// depending on the outcome. While submitting, further Submit calls return
// ErrSubmitInFlight (the UI disables the button for the same reason). On
// success the fields are cleared and the form auto-resets to idle after
// the reset delay. On any failure the raw input is preserved so the user
// can retry or fall back to MailtoURL.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}

	// The payload sent is always the sanitized version, never raw input.
	norm := f.values.Normalize()
	if errs := norm.Validate(); errs != nil {
		f.fieldErrors = toFieldMap(errs)
		f.mu.Unlock()
		return ErrValidationFailed
	}
	f.fieldErrors = nil
	f.status = StatusSubmitting
	f.mu.Unlock()

	err := f.post(ctx, norm)
	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.status = StatusError
		return errors.Join(ErrSubmitFailed, err)
	}

	f.values = contact.Submission{}
	f.status = StatusSuccess
	f.scheduleReset(f.resetDelay, f.resetFromSuccess)
	return nil
}

func (f *Form) post(ctx context.Context, payload contact.Submission) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// resetFromSuccess returns the form to idle after the success delay. A new
// submission started in the meantime wins; only the success state resets.
func (f *Form) resetFromSuccess() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSuccess {
		f.status = StatusIdle
	}
}

// MailtoURL is the always-available fallback contact mechanism. It does
// not depend on the endpoint at all, so the contact channel is never fully
// blocked by a backend fault.
func (f *Form) MailtoURL() string {
	subject := strings.ReplaceAll(url.QueryEscape(f.mailtoSubject), "+", "%20")
	return fmt.Sprintf("mailto:%s?subject=%s", f.mailtoAddress, subject)
}

func toFieldMap(errs []contact.FieldError) map[string]string {
	if errs == nil {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}
