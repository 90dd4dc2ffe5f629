package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nuverum/contact-api/pkg/sanitizer"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips tags but keeps enclosed text",
			input:    "<script>alert(1)</script>hello",
			expected: "alert(1)hello",
		},
		{
			name:     "strips nested tags",
			input:    "<div><p>nested <span>content</span></p></div>",
			expected: "nested content",
		},
		{
			name:     "removes stray angle brackets",
			input:    "a < b > c",
			expected: "a b c",
		},
		{
			name:     "decodes entities before stripping",
			input:    "&lt;script&gt;",
			expected: "",
		},
		{
			name:     "strips javascript scheme",
			input:    "javascript:alert(1)",
			expected: "alert(1)",
		},
		{
			name:     "strips mixed-case scheme",
			input:    "JavaScript:alert(1)",
			expected: "alert(1)",
		},
		{
			name:     "strips data and vbscript schemes",
			input:    "data:text/html vbscript:x",
			expected: "text/html x",
		},
		{
			name:     "strips event handler attributes",
			input:    `img src=x onerror = alert(1)`,
			expected: "img src=x alert(1)",
		},
		{
			name:     "strips css expression and url",
			input:    "expression(alert(1)) url (evil)",
			expected: "alert(1)) evil)",
		},
		{
			name:     "collapses and trims whitespace",
			input:    "  hello \t\n  world  ",
			expected: "hello world",
		},
		{
			name:     "keeps plain text",
			input:    "normal text without HTML",
			expected: "normal text without HTML",
		},
		{
			name:     "keeps unknown entities",
			input:    "fish &amp; chips &copy; 2024",
			expected: "fish & chips &copy; 2024",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Sanitize(tt.input))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain text",
		"<script>alert(1)</script>hello",
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"&amp;lt;script&amp;gt;",
		"&amp;amp;amp;lt;b&amp;amp;amp;gt;",
		"javascript:javascript:alert(1)",
		"javajavascript:script:alert(1)",
		"onclick = onclick = x",
		"  spaced \t out  ",
		`<img src=x onerror=alert(1)>Hi`,
		"fish &amp; chips",
	}

	for _, in := range inputs {
		once := sanitizer.Sanitize(in)
		assert.Equal(t, once, sanitizer.Sanitize(once), "not a fixpoint for %q", in)
	}
}

func TestSanitizeEntityEvasion(t *testing.T) {
	t.Parallel()

	// An encoded tag must end up exactly where the literal tag ends up,
	// proving decode-before-strip ordering.
	assert.Equal(t, sanitizer.Sanitize("<script>"), sanitizer.Sanitize("&lt;script&gt;"))
	assert.Equal(t, sanitizer.Sanitize("<b>bold</b>"), sanitizer.Sanitize("&lt;b&gt;bold&lt;/b&gt;"))
}

func TestSanitizeNoResidualDangerousSubstrings(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<script>alert(1)</script>",
		"JaVaScRiPt:alert(1)",
		"&lt;img src=x onerror=alert(1)&gt;",
		"<a href=\"javascript:alert(1)\">x</a>",
	}

	for _, in := range inputs {
		out := sanitizer.Sanitize(in)
		assert.NotContains(t, out, "<")
		assert.NotContains(t, out, ">")
		assert.NotContains(t, strings.ToLower(out), "javascript:")
	}
}
