package validator

import "regexp"

// Matches validates value against a precompiled pattern. The pattern is
// expected to be anchored so that the whole value must satisfy it.
func Matches(field, value string, pattern *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: message},
	}
}
