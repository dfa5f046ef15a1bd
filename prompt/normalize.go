package prompt

import (
	"strings"
	"unicode"
)

// Normalize turns a typed answer into a comparison key: every whitespace
// rune is removed and the rest is lower-cased, so " New York " becomes
// "newyork".
func Normalize(raw string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw))
}
