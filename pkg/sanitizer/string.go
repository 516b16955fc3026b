package sanitizer

import (
	"strings"

	"github.com/spf13/cast"
)

// ToText coerces an arbitrary value to its textual form. Nil and values
// without a sensible textual form become an empty string; numbers use their
// shortest decimal representation (250.0 -> "250").
func ToText(v any) string {
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveChars removes all occurrences of the specified characters from a string.
func RemoveChars(s string, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// LimitLength truncates s to at most maxLength runes.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	// Fast path: byte length bounds rune length.
	if len(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength])
}
