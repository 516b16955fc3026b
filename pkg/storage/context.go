package storage

import "context"

type storageContextKey struct{}

// WithContext returns a copy of ctx carrying s as the current profile storage.
func WithContext(ctx context.Context, s Storage) context.Context {
	return context.WithValue(ctx, storageContextKey{}, s)
}

// FromContext returns the profile storage carried by ctx.
func FromContext(ctx context.Context) (Storage, bool) {
	s, ok := ctx.Value(storageContextKey{}).(Storage)
	return s, ok && s != nil
}

type contextual struct {
	fallback Storage
}

// Contextual returns a Storage that forwards every call to the storage
// carried by the call's context, or to fallback when there is none.
// A nil fallback makes calls without a context storage fail with ErrUnavailable.
func Contextual(fallback Storage) Storage {
	return &contextual{fallback: fallback}
}

func (c *contextual) pick(ctx context.Context) (Storage, error) {
	if s, ok := FromContext(ctx); ok {
		return s, nil
	}
	if c.fallback == nil {
		return nil, ErrUnavailable
	}
	return c.fallback, nil
}

func (c *contextual) Get(ctx context.Context, key string) (string, bool, error) {
	s, err := c.pick(ctx)
	if err != nil {
		return "", false, err
	}
	return s.Get(ctx, key)
}

func (c *contextual) Set(ctx context.Context, key, value string) error {
	s, err := c.pick(ctx)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, value)
}

func (c *contextual) Remove(ctx context.Context, key string) error {
	s, err := c.pick(ctx)
	if err != nil {
		return err
	}
	return s.Remove(ctx, key)
}
