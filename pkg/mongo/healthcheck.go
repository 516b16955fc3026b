package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// HealthcheckTimeout bounds a check when the caller's context has no deadline.
const HealthcheckTimeout = 2 * time.Second

// Healthcheck returns a check for readiness endpoints such as /healthz.
//
// The check pings the primary, since seller sessions are written there and a
// deployment that only has secondaries cannot serve them. When ctx carries no
// deadline the ping is bounded by HealthcheckTimeout so a stalled deployment
// reports unavailable instead of hanging the endpoint.
func Healthcheck(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, HealthcheckTimeout)
			defer cancel()
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
