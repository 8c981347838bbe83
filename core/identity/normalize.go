// Package identity resolves raw author name/email combinations into
// canonical contributors using explicit alias groups and edit-distance
// similarity.
package identity

import (
	"strings"
	"unicode"
)

// Normalize converts a raw identity string into a comparison key: the
// email domain is dropped, punctuation other than '.', '_' and '-' is
// removed, runs of whitespace collapse to a single space, and the
// result is trimmed and lowercased. The key is only ever used for
// similarity scoring, never as a display value.
func Normalize(raw string) string {
	if at := strings.Index(raw, "@"); at >= 0 {
		raw = raw[:at]
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}

	collapsed := strings.Join(strings.Fields(b.String()), " ")
	return strings.ToLower(collapsed)
}
