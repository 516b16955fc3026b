package fingerprint

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/listingkit/pkg/storage"
)

// StorageFunc returns the storage profile for a request.
type StorageFunc func(r *http.Request) storage.Storage

// Middleware resolves the device id for every request and stores it in the
// request context.
func Middleware(storeFor StorageFunc, opts ...ResolverOption) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			resolver := NewResolver(storeFor(r), func(context.Context) Components {
				return FromRequest(r)
			}, opts...)
			ctx := SetDeviceIDToContext(r.Context(), resolver.Resolve(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
