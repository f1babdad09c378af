// internal/pkg/format/string.go
package format

import (
	"strings"
	"unicode/utf8"
)

// CapitalizeWord trims surrounding whitespace, upper-cases the first rune and
// lower-cases the rest. The input is returned unchanged when it is empty after
// trimming.
func CapitalizeWord(word string) string {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return word
	}

	first, size := utf8.DecodeRuneInString(trimmed)
	return strings.ToUpper(string(first)) + strings.ToLower(trimmed[size:])
}
