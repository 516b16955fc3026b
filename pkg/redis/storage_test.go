package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listingkit/pkg/redis"
	"github.com/dmitrymomot/listingkit/pkg/storage"
)

func TestConnect_Validation(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	require.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost"})
	require.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestStorage_Integration(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	prefix := "listingkit-test-" + uuid.NewString()
	store := redis.NewStorage(client, redis.WithPrefix(prefix), redis.WithTTL(time.Minute))

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "seller_phone")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set get remove", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "seller_phone", "0821234567"))

		v, ok, err := store.Get(ctx, "seller_phone")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "0821234567", v)

		raw, err := client.Get(ctx, prefix+":seller_phone").Result()
		require.NoError(t, err)
		assert.Equal(t, "0821234567", raw)

		require.NoError(t, store.Remove(ctx, "seller_phone"))
		_, ok, err = store.Get(ctx, "seller_phone")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("namespaced profiles are isolated", func(t *testing.T) {
		a := storage.Namespace(store, "profile-a")
		b := storage.Namespace(store, "profile-b")

		require.NoError(t, a.Set(ctx, "device_id", "device_a_1"))
		_, ok, err := b.Get(ctx, "device_id")
		require.NoError(t, err)
		assert.False(t, ok)
		require.NoError(t, a.Remove(ctx, "device_id"))
	})

	t.Run("empty key", func(t *testing.T) {
		require.ErrorIs(t, store.Set(ctx, "", "x"), storage.ErrEmptyKey)
	})
}

func TestHealthcheck_Integration(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	client, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: url, RetryAttempts: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, redis.Healthcheck(client)(context.Background()))
}
