package storage

import "errors"

var (
	// ErrEmptyKey is returned when an operation is called with an empty key.
	ErrEmptyKey = errors.New("storage: empty key")

	// ErrUnavailable indicates the backing store could not be reached.
	ErrUnavailable = errors.New("storage: backend unavailable")
)
