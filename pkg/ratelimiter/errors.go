package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("ratelimiter: invalid configuration")

	// ErrInvalidTimestamp indicates the stored timestamp could not be parsed.
	ErrInvalidTimestamp = errors.New("ratelimiter: invalid stored timestamp")
)
