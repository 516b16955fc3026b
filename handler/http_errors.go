package handler

import "net/http"

// HTTPError is an error with an HTTP status code and a machine-readable key.
// Message, when set, is shown to the client instead of the status text.
type HTTPError struct {
	Code    int
	Key     string
	Message string
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// WithMessage returns a copy of e with a client-facing message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

func (e HTTPError) message() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Code)
}

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrInternal             = HTTPError{Code: http.StatusInternalServerError, Key: "internal_error"}
	ErrBadGateway           = HTTPError{Code: http.StatusBadGateway, Key: "bad_gateway"}
	ErrServiceUnavailable   = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

// CodeValidationFailed is the error code of validation failures.
const CodeValidationFailed = "validation_failed"
