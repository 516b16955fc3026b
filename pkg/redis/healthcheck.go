package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// HealthcheckTimeout bounds a check when the caller's context has no deadline.
const HealthcheckTimeout = 2 * time.Second

// Healthcheck returns a check for readiness endpoints such as /healthz.
// It pings the server backing the profile store and returns an error
// wrapping ErrHealthcheckFailed when the server does not answer.
//
// When ctx carries no deadline the ping is bounded by HealthcheckTimeout.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, HealthcheckTimeout)
			defer cancel()
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
