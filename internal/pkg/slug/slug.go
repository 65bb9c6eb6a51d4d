// Package slug derives URL-friendly route slugs from titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make converts a title into its slug: accents stripped, lowercased, every
// character outside [a-z0-9 space hyphen] dropped, whitespace runs collapsed
// to single hyphens, hyphen runs collapsed. Deterministic for a given title.
func Make(title string) string {
	// NFD splits accented letters into base letter + combining marks.
	decomposed := norm.NFD.String(title)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	cleaned := make([]rune, 0, b.Len())
	for _, r := range strings.TrimSpace(b.String()) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || unicode.IsSpace(r) {
			cleaned = append(cleaned, r)
		}
	}

	var out strings.Builder
	lastHyphen := false
	for _, r := range cleaned {
		if unicode.IsSpace(r) || r == '-' {
			if !lastHyphen {
				out.WriteByte('-')
				lastHyphen = true
			}
			continue
		}
		out.WriteRune(r)
		lastHyphen = false
	}

	return strings.Trim(out.String(), "-")
}
