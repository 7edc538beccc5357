package match

import (
	"strings"
	"unicode"
)

// NormalizeName normalizes a planet or sign name for lookup.
// The normalization pipeline:
// 1. Case-fold to lower.
// 2. Strip separators (_, -, spaces, dots).
// 3. Drop anything that is not a letter or digit.
//
// "North_Node", "north-node" and "NorthNode" all become "northnode".
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
