package listing

import "errors"

// ErrInvalidPrice is returned when a JSON price is neither a string nor a number.
var ErrInvalidPrice = errors.New("listing: price must be a string or a number")
