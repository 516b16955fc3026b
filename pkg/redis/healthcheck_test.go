package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listingkit/pkg/redis"
)

func TestHealthcheck_UnreachableServer(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	start := time.Now()
	err := redis.Healthcheck(client)(context.Background())
	require.ErrorIs(t, err, redis.ErrHealthcheckFailed)
	assert.Less(t, time.Since(start), redis.HealthcheckTimeout+time.Second)
}
