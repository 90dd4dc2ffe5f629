package sanitizer

import (
	"regexp"
	"strings"
)

var (
	// entityDecoder reverses the common HTML entity encodings an attacker
	// may use to smuggle markup past a single-pass tag stripper.
	entityDecoder = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", `"`,
		"&#x27;", "'",
		"&#x2F;", "/",
		"&#x60;", "`",
		"&#x3D;", "=",
	)

	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	schemePattern     = regexp.MustCompile(`(?i)(?:javascript|data|vbscript):`)
	eventAttrPattern  = regexp.MustCompile(`(?i)on\w+\s*=`)
	cssExprPattern    = regexp.MustCompile(`(?i)expression\s*\(`)
	cssURLPattern     = regexp.MustCompile(`(?i)url\s*\(`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Sanitize strips markup and script-triggering substrings from free-text
// input. The pipeline decodes common HTML entities, removes tags (keeping
// their text content), drops stray angle brackets, erases URI-scheme and
// event-handler injection patterns, and collapses whitespace.
//
// The pipeline is applied repeatedly until the output stabilizes, so the
// result is a fixpoint: Sanitize(Sanitize(x)) == Sanitize(x) for all x,
// including double-encoded input such as "&amp;lt;script&amp;gt;".
// Every step is length-non-increasing, which guarantees termination.
func Sanitize(s string) string {
	for {
		next := sanitizeOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func sanitizeOnce(s string) string {
	s = entityDecoder.Replace(s)
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = schemePattern.ReplaceAllString(s, "")
	s = eventAttrPattern.ReplaceAllString(s, "")
	s = cssExprPattern.ReplaceAllString(s, "")
	s = cssURLPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
