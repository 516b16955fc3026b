package storage

import (
	"context"
	"strings"
)

// Storage is a persistent string key-value store scoped to one browser profile.
type Storage interface {
	// Get returns the value stored under key. A missing key yields ok == false
	// and a nil error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

type namespaced struct {
	next   Storage
	prefix string
}

// Namespace returns a Storage that prefixes every key with prefix and a colon.
// An empty prefix returns next unchanged.
func Namespace(next Storage, prefix string) Storage {
	prefix = strings.TrimSuffix(prefix, ":")
	if prefix == "" {
		return next
	}
	return &namespaced{next: next, prefix: prefix + ":"}
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	return n.next.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return n.next.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return n.next.Remove(ctx, n.prefix+key)
}
