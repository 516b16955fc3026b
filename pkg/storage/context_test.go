package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listingkit/pkg/storage"
)

func TestContextual(t *testing.T) {
	t.Parallel()

	fallback := storage.NewMemory()
	profile := storage.NewMemory()
	s := storage.Contextual(fallback)

	ctx := storage.WithContext(context.Background(), profile)
	require.NoError(t, s.Set(ctx, "device_id", "device_a_1"))
	require.NoError(t, s.Set(context.Background(), "device_id", "device_b_2"))

	assert.Equal(t, map[string]string{"device_id": "device_a_1"}, profile.Snapshot())
	assert.Equal(t, map[string]string{"device_id": "device_b_2"}, fallback.Snapshot())

	v, ok, err := s.Get(ctx, "device_id")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "device_a_1", v)

	require.NoError(t, s.Remove(ctx, "device_id"))
	assert.Empty(t, profile.Snapshot())
}

func TestContextual_NoFallback(t *testing.T) {
	t.Parallel()

	s := storage.Contextual(nil)
	_, _, err := s.Get(context.Background(), "k")
	require.ErrorIs(t, err, storage.ErrUnavailable)
	require.ErrorIs(t, s.Set(context.Background(), "k", "v"), storage.ErrUnavailable)
	require.ErrorIs(t, s.Remove(context.Background(), "k"), storage.ErrUnavailable)

	got, ok := storage.FromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}
