package mailer

import (
	"context"
	"errors"
	"time"
)

// Defaults for provider delivery. The provider call is the pipeline's only
// suspension point; a per-attempt timeout closes the original "wait
// indefinitely" gap, and a single retry covers transient provider faults
// (re-sending the same notification twice is low-harm compared to silently
// dropping a lead).
const (
	defaultSendTimeout  = 10 * time.Second
	defaultMaxAttempts  = 2
	defaultRetryBackoff = 500 * time.Millisecond
)

// Mailer wraps a provider Sender with a per-attempt timeout and a bounded
// retry. It holds no state beyond its configuration and is safe for
// concurrent use.
type Mailer struct {
	sender       Sender
	sendTimeout  time.Duration
	maxAttempts  int
	retryBackoff time.Duration
}

// Option configures the Mailer.
type Option func(*Mailer)

// WithSendTimeout sets the per-attempt delivery timeout.
// Defaults to 10 seconds.
func WithSendTimeout(d time.Duration) Option {
	return func(m *Mailer) {
		if d > 0 {
			m.sendTimeout = d
		}
	}
}

// WithMaxAttempts sets how many delivery attempts are made before giving up.
// Defaults to 2.
func WithMaxAttempts(n int) Option {
	return func(m *Mailer) {
		if n > 0 {
			m.maxAttempts = n
		}
	}
}

// WithRetryBackoff sets the pause between delivery attempts.
// Defaults to 500ms.
func WithRetryBackoff(d time.Duration) Option {
	return func(m *Mailer) {
		if d > 0 {
			m.retryBackoff = d
		}
	}
}

// New creates a new Mailer delivering through the given sender.
func New(sender Sender, opts ...Option) *Mailer {
	m := &Mailer{
		sender:       sender,
		sendTimeout:  defaultSendTimeout,
		maxAttempts:  defaultMaxAttempts,
		retryBackoff: defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send delivers the email and returns the provider message id.
// Retries once on provider failure; context cancellation stops the retry
// loop immediately.
func (m *Mailer) Send(ctx context.Context, email *Email) (string, error) {
	if len(email.To) == 0 {
		return "", ErrNoRecipient
	}
	if email.Subject == "" {
		return "", ErrNoSubject
	}
	if email.HTML == "" {
		return "", ErrNoContent
	}

	var lastErr error
	for attempt := range m.maxAttempts {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", errors.Join(ErrSendFailed, ctx.Err())
			case <-time.After(m.retryBackoff):
			}
		}

		sendCtx, cancel := context.WithTimeout(ctx, m.sendTimeout)
		id, err := m.sender.Send(sendCtx, email)
		cancel()
		if err == nil {
			return id, nil
		}
		lastErr = err
	}

	return "", errors.Join(ErrSendFailed, lastErr)
}
