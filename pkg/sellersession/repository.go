package sellersession

import (
	"context"
	"time"
)

// Repository is the remote store of seller sessions, keyed by device id.
type Repository interface {
	// Upsert inserts the session or fully replaces the row with the same device id.
	Upsert(ctx context.Context, session *Session) error

	// FindByDeviceID returns the row for deviceID or ErrSessionNotFound.
	FindByDeviceID(ctx context.Context, deviceID string) (*Session, error)

	// UpdateLastActive bumps the last-active timestamp of an existing row.
	UpdateLastActive(ctx context.Context, deviceID string, at time.Time) error

	// Delete removes the row for deviceID. Deleting a missing row is not an error.
	Delete(ctx context.Context, deviceID string) error
}

// DeviceResolver yields the device identifier of the current browser profile.
type DeviceResolver interface {
	Resolve(ctx context.Context) string
}
