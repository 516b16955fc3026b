package sellersession

import "errors"

var (
	// ErrSessionNotFound indicates no row exists for the device. It is an
	// expected outcome, not a failure.
	ErrSessionNotFound = errors.New("sellersession: not found")

	// ErrInvalidSession indicates a session without a device identifier.
	ErrInvalidSession = errors.New("sellersession: invalid session")

	// ErrRepository wraps failures of the remote store.
	ErrRepository = errors.New("sellersession: repository failure")
)
