// Package storage defines the small string key-value contract used for
// per-browser persistent state: the submission cooldown timestamp, the device
// identifier and the cached seller contact details.
//
// The contract mirrors a browser's local storage: values are plain strings,
// a missing key is not an error, and writes overwrite. Any backend that can
// satisfy Get, Set and Remove works. The kit ships two:
//
//   - Memory – mutex-guarded map, used in tests and single-process setups.
//   - redis.Storage (pkg/redis) – go-redis backed storage shared between
//     instances.
//
// Namespace scopes any Storage to a key prefix so that one physical backend
// can hold state for many browser profiles.
//
// # Usage
//
//	store := storage.NewMemory()
//	profile := storage.Namespace(store, "client:"+clientID)
//
//	_ = profile.Set(ctx, "device_id", "device_abc_xyz")
//	id, ok, err := profile.Get(ctx, "device_id")
//
// # Error Handling
//
// Backends return ErrEmptyKey for empty keys and wrap transport failures with
// ErrUnavailable. Callers in this kit treat every storage error as a degraded
// condition, never as a fatal one.
package storage
