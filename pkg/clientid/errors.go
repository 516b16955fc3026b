package clientid

import "errors"

// ErrNotFound is returned by a Transport when the request carries no id.
var ErrNotFound = errors.New("clientid: not found")
