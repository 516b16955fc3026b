// Package redis backs the per-profile local storage with Redis when the
// listing service runs server side.
//
// Storage implements storage.Storage: missing keys report ok == false,
// transport failures are joined with storage.ErrUnavailable so callers can
// enter degraded mode. Combine it with storage.Namespace to give every
// browser profile its own key space:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	base := redis.NewStorageFromConfig(client, cfg)
//	profile := storage.Namespace(base, clientID)
//
// Healthcheck returns a readiness check for the HTTP layer.
package redis
