package validator

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ParseNumber parses a decimal number. Empty input, NaN and infinities are rejected.
func ParseNumber(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// NumberInRange validates that value parses as a number within [min, max].
func NumberInRange(field, value string, min, max float64, message string) Rule {
	return Rule{
		Check: func() bool {
			n, ok := ParseNumber(value)
			return ok && n >= min && n <= max
		},
		Error: ValidationError{Field: field, Message: message},
	}
}
