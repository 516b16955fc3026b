package clientid

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/listingkit/pkg/logger"
)

// DefaultTTL is how long a browser keeps its profile id.
const DefaultTTL = 365 * 24 * time.Hour

type middlewareConfig struct {
	log *slog.Logger
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithLogger sets the logger for transport failures.
func WithLogger(log *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// Middleware resolves the client id through t, issuing a new UUID when the
// request has none or an invalid one, and stores it in the request context.
func Middleware(t Transport, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{log: logger.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := t.GetID(r)
			if err != nil || !valid(id) {
				id = uuid.NewString()
				if err := t.SetID(w, id, DefaultTTL); err != nil {
					cfg.log.WarnContext(r.Context(), "failed to issue client id",
						logger.Component("clientid"),
						logger.Error(err),
					)
				}
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

func valid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
