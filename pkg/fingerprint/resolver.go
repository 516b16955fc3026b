package fingerprint

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/listingkit/pkg/logger"
	"github.com/dmitrymomot/listingkit/pkg/storage"
)

// DefaultKey is the storage key holding the cached device identifier.
const DefaultKey = "device_id"

// Collector gathers the current environment components. GeneratedAt is
// filled in by the Resolver.
type Collector func(ctx context.Context) Components

// Resolver returns a stable device identifier for one storage profile.
type Resolver struct {
	store   storage.Storage
	collect Collector
	key     string
	now     func() time.Time
	log     *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithKey overrides the storage key.
func WithKey(key string) ResolverOption {
	return func(r *Resolver) {
		if key != "" {
			r.key = key
		}
	}
}

// WithClock overrides the time source used for the generation timestamp.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger sets the logger for storage failures.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewResolver creates a resolver over store. A nil collector yields empty components.
func NewResolver(store storage.Storage, collect Collector, opts ...ResolverOption) *Resolver {
	if collect == nil {
		collect = func(context.Context) Components { return Components{} }
	}
	r := &Resolver{
		store:   store,
		collect: collect,
		key:     DefaultKey,
		now:     time.Now,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the cached identifier or derives, persists and returns a new one.
func (r *Resolver) Resolve(ctx context.Context) string {
	cached, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		r.log.WarnContext(ctx, "failed to read cached device id",
			logger.Component("fingerprint"),
			logger.Error(err),
		)
	}
	if ok && cached != "" {
		return cached
	}

	c := r.collect(ctx)
	c.GeneratedAt = r.now()
	id := Derive(c)

	if err := r.store.Set(ctx, r.key, id); err != nil {
		r.log.WarnContext(ctx, "failed to persist device id",
			logger.Component("fingerprint"),
			logger.DeviceID(id),
			logger.Error(err),
		)
	}
	return id
}
