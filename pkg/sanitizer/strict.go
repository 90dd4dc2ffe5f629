package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicy() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// Strict runs Sanitize and then a bluemonday StrictPolicy pass over the
// result. bluemonday entity-escapes the text it keeps, so the output is
// unescaped once and re-normalized to stay within the Sanitize contract.
//
// On anything Sanitize has already processed the extra pass is observably
// a no-op (see strict_test.go); it exists as an independent safety layer
// for the authoritative pre-send path.
func Strict(s string) string {
	initPolicy()
	out := strictPolicy.Sanitize(Sanitize(s))
	return Sanitize(html.UnescapeString(out))
}
