package fingerprint

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/listingkit/pkg/logger"
)

type deviceIDContextKey struct{}

func SetDeviceIDToContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, deviceIDContextKey{}, id)
}

func DeviceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(deviceIDContextKey{}).(string)
	return id
}

// LogExtractor adds the device id from context to log records.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	id := DeviceIDFromContext(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.DeviceID(id), true
}

// ContextResolver resolves the device id placed in the context by Middleware.
type ContextResolver struct{}

func (ContextResolver) Resolve(ctx context.Context) string {
	return DeviceIDFromContext(ctx)
}
