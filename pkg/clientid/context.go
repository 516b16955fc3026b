package clientid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/listingkit/pkg/logger"
)

type contextKey struct{}

// WithContext stores the client id in ctx.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the client id of the request, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// LogExtractor adds the client id to log records.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	id := FromContext(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.ClientID(id), true
}
