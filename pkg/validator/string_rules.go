package validator

import "unicode/utf8"

// MinLen validates that value has at least min characters.
func MinLen(field, value string, min int, message string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{Field: field, Message: message},
	}
}

// MaxLen validates that value has at most max characters.
func MaxLen(field, value string, max int, message string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{Field: field, Message: message},
	}
}
