package validator

import "errors"

// ErrValidationFailed prefixes the message of every ValidationErrors.
var ErrValidationFailed = errors.New("validation failed")
