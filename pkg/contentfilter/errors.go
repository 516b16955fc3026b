package contentfilter

import "errors"

var (
	// ErrEmptyLists is returned when a filter would have nothing to match against.
	ErrEmptyLists = errors.New("contentfilter: both phrase lists are empty")

	// ErrInvalidLists is returned when a YAML list document cannot be decoded.
	ErrInvalidLists = errors.New("contentfilter: invalid lists document")
)
