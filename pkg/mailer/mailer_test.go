package mailer_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuverum/contact-api/pkg/mailer"
)

// stubSender records calls and plays back scripted results.
type stubSender struct {
	mu      sync.Mutex
	calls   int
	failFor int // number of leading calls that fail
	id      string
	err     error
}

func (s *stubSender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failFor {
		return "", s.err
	}
	return s.id, nil
}

func (s *stubSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func validEmail() *mailer.Email {
	return &mailer.Email{
		From:    "Contact Form <noreply@nuverum.com>",
		To:      []string{"thomas@nuverum.com"},
		Subject: "Contact Form: Hello",
		HTML:    "<p>hi</p>",
	}
}

func TestMailerSendSuccess(t *testing.T) {
	t.Parallel()

	stub := &stubSender{id: "msg_123"}
	m := mailer.New(stub)

	id, err := m.Send(context.Background(), validEmail())
	require.NoError(t, err)
	assert.Equal(t, "msg_123", id)
	assert.Equal(t, 1, stub.callCount())
}

func TestMailerSendValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*mailer.Email)
		wantErr error
	}{
		{
			name:    "missing recipient",
			mutate:  func(e *mailer.Email) { e.To = nil },
			wantErr: mailer.ErrNoRecipient,
		},
		{
			name:    "missing subject",
			mutate:  func(e *mailer.Email) { e.Subject = "" },
			wantErr: mailer.ErrNoSubject,
		},
		{
			name:    "missing content",
			mutate:  func(e *mailer.Email) { e.HTML = "" },
			wantErr: mailer.ErrNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stub := &stubSender{id: "msg_123"}
			m := mailer.New(stub)

			email := validEmail()
			tt.mutate(email)

			_, err := m.Send(context.Background(), email)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, stub.callCount(), "invalid email must not reach the provider")
		})
	}
}

func TestMailerRetriesOnceOnProviderFailure(t *testing.T) {
	t.Parallel()

	stub := &stubSender{id: "msg_456", failFor: 1, err: errors.New("transient")}
	m := mailer.New(stub, mailer.WithRetryBackoff(time.Millisecond))

	id, err := m.Send(context.Background(), validEmail())
	require.NoError(t, err)
	assert.Equal(t, "msg_456", id)
	assert.Equal(t, 2, stub.callCount())
}

func TestMailerGivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	providerErr := errors.New("provider down")
	stub := &stubSender{failFor: 10, err: providerErr}
	m := mailer.New(stub, mailer.WithRetryBackoff(time.Millisecond))

	_, err := m.Send(context.Background(), validEmail())
	assert.ErrorIs(t, err, mailer.ErrSendFailed)
	assert.ErrorIs(t, err, providerErr)
	assert.Equal(t, 2, stub.callCount())
}

func TestMailerStopsRetryOnCancelledContext(t *testing.T) {
	t.Parallel()

	stub := &stubSender{failFor: 10, err: errors.New("transient")}
	m := mailer.New(stub, mailer.WithRetryBackoff(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := m.Send(ctx, validEmail())
		done <- err
	}()

	// Let the first attempt fail, then cancel during the backoff pause.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, mailer.ErrSendFailed)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, stub.callCount())
	case <-time.After(5 * time.Second):
		t.Fatal("Send did not return after context cancellation")
	}
}
