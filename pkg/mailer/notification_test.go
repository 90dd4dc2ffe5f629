package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuverum/contact-api/pkg/mailer"
)

func testConfig() mailer.Config {
	return mailer.Config{
		Recipient:     "thomas@nuverum.com",
		SenderEmail:   "noreply@nuverum.com",
		SenderName:    "Contact Form",
		SubjectPrefix: "Contact Form: ",
	}
}

func TestContactNotification(t *testing.T) {
	t.Parallel()

	email, err := mailer.ContactNotification(testConfig(),
		"a@b.com", "Hello", "This is a ten-char message.")
	require.NoError(t, err)

	assert.Equal(t, "Contact Form <noreply@nuverum.com>", email.From)
	assert.Equal(t, []string{"thomas@nuverum.com"}, email.To)
	assert.Equal(t, "Contact Form: Hello", email.Subject)
	assert.Equal(t, "a@b.com", email.ReplyTo)

	assert.Contains(t, email.HTML, "a@b.com")
	assert.Contains(t, email.HTML, "This is a ten-char message.")
	assert.Contains(t, email.Text, "This is a ten-char message.")
}

func TestContactNotificationEscapesBodyAtRenderTime(t *testing.T) {
	t.Parallel()

	// Sanitized text may still legally contain &, quotes etc.; those must
	// be escaped in the HTML body so they stay literal.
	email, err := mailer.ContactNotification(testConfig(),
		"a@b.com", "M&A intro", `we'd love to talk about "terms" & more`)
	require.NoError(t, err)

	assert.Contains(t, email.HTML, "M&amp;A intro")
	assert.Contains(t, email.HTML, "&amp; more")
	assert.Contains(t, email.HTML, "&#34;terms&#34;")
	assert.NotContains(t, email.HTML, `"terms"`)

	// Subject carries the sanitized text verbatim, no HTML escaping.
	assert.Equal(t, "Contact Form: M&A intro", email.Subject)

	// Plain text alternative stays unescaped.
	assert.Contains(t, email.Text, `"terms" & more`)
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Contact Form <noreply@nuverum.com>",
		mailer.Recipient("Contact Form", "noreply@nuverum.com"))
	assert.Equal(t, "noreply@nuverum.com", mailer.Recipient("", "noreply@nuverum.com"))
}
