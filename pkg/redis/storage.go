package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/listingkit/pkg/storage"
)

// Storage is a storage.Storage backed by Redis string keys.
type Storage struct {
	db     redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ storage.Storage = (*Storage)(nil)

// StorageOption configures a Storage.
type StorageOption func(*Storage)

// WithPrefix prepends prefix and a colon to every key.
func WithPrefix(prefix string) StorageOption {
	return func(s *Storage) {
		s.prefix = strings.TrimSuffix(prefix, ":")
	}
}

// WithTTL expires keys d after their last write. Zero disables expiry.
func WithTTL(d time.Duration) StorageOption {
	return func(s *Storage) {
		if d >= 0 {
			s.ttl = d
		}
	}
}

// NewStorage wraps client.
func NewStorage(client redis.UniversalClient, opts ...StorageOption) *Storage {
	s := &Storage{db: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStorageFromConfig wraps client using the prefix and TTL from cfg.
func NewStorageFromConfig(client redis.UniversalClient, cfg Config) *Storage {
	return NewStorage(client, WithPrefix(cfg.KeyPrefix), WithTTL(cfg.TTL))
}

func (s *Storage) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}

// Get returns ok == false for missing keys.
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, storage.ErrEmptyKey
	}
	val, err := s.db.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(storage.ErrUnavailable, err)
	}
	return val, true, nil
}

// Set overwrites key. Empty values are stored as empty strings.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	if err := s.db.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return errors.Join(storage.ErrUnavailable, err)
	}
	return nil
}

// Remove deletes key.
func (s *Storage) Remove(ctx context.Context, key string) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	if err := s.db.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Join(storage.ErrUnavailable, err)
	}
	return nil
}
