package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/listingkit/pkg/logger"
	"github.com/dmitrymomot/listingkit/pkg/validator"
)

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler creates an error handler that logs err and renders it as
// a JSON error. A nil logger discards records.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		status := http.StatusUnprocessableEntity
		if validator.ExtractValidationErrors(err) == nil {
			status = classify(err).Code
		}

		r := ctx.Request()
		log.LogAttrs(r.Context(), determineLogLevel(status), "request error",
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("handler"),
		)

		_ = JSONError(err).Render(ctx.ResponseWriter(), r)
	}
}
