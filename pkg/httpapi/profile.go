package httpapi

import (
	"net/http"

	"github.com/dmitrymomot/listingkit/pkg/clientid"
	"github.com/dmitrymomot/listingkit/pkg/storage"
)

// profileMiddleware attaches the storage namespace of the request's client
// id. It must run after clientid.Middleware.
func (a *API) profileMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := clientid.FromContext(r.Context())
		ctx := storage.WithContext(r.Context(), storage.Namespace(a.base, "client:"+id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// profileStorage returns the storage attached by profileMiddleware.
func profileStorage(r *http.Request) storage.Storage {
	s, _ := storage.FromContext(r.Context())
	return s
}
