package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/listingkit/pkg/binder"
	"github.com/dmitrymomot/listingkit/pkg/validator"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMessage replaces the client-facing error message.
func WithJSONMessage(message string) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Error != nil {
			r.body.Error.Message = message
		}
	}
}

// WithJSONDetails sets per-key error details.
func WithJSONDetails(details map[string][]string) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Error != nil {
			r.body.Error.Details = details
		}
	}
}

// JSON creates a JSON response with options
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates a JSON error response from an error with options
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}
	r.body.Error = errorToDetail(err, &r.status)

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorToDetail converts error to ErrorDetail and sets appropriate status
func errorToDetail(err error, status *int) *ErrorDetail {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		*status = http.StatusUnprocessableEntity
		detail := &ErrorDetail{
			Code:    CodeValidationFailed,
			Message: "The request is invalid",
			Details: make(map[string][]string, len(verrs)),
		}
		for _, field := range verrs.Fields() {
			detail.Details[field] = verrs.Get(field)
		}
		return detail
	}

	httpErr := classify(err)
	*status = httpErr.Code
	return &ErrorDetail{
		Code:    httpErr.Key,
		Message: httpErr.message(),
	}
}

// classify maps err to the HTTPError it is reported as.
func classify(err error) HTTPError {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return ErrUnsupportedMediaType.WithMessage("Request body must be application/json")
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return ErrBadRequest.WithMessage("Request body must be a valid JSON object")
	default:
		return ErrInternal
	}
}
