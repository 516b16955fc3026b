package sellersession_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listingkit/pkg/sellersession"
)

// runRepositoryContract exercises the behaviour every Repository must share.
func runRepositoryContract(t *testing.T, repo sellersession.Repository, deviceID string) {
	t.Helper()
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := repo.FindByDeviceID(ctx, deviceID)
	require.ErrorIs(t, err, sellersession.ErrSessionNotFound)
	require.ErrorIs(t, repo.UpdateLastActive(ctx, deviceID, at), sellersession.ErrSessionNotFound)
	require.NoError(t, repo.Delete(ctx, deviceID))

	require.ErrorIs(t, repo.Upsert(ctx, &sellersession.Session{}), sellersession.ErrInvalidSession)

	require.NoError(t, repo.Upsert(ctx, &sellersession.Session{
		DeviceID:    deviceID,
		SellerPhone: "0821234567",
		SellerName:  "Thandi",
		LastActive:  at,
	}))
	require.NoError(t, repo.Upsert(ctx, &sellersession.Session{
		DeviceID:    deviceID,
		SellerPhone: "0837654321",
		SellerName:  "Sipho",
		LastActive:  at,
	}))

	got, err := repo.FindByDeviceID(ctx, deviceID)
	require.NoError(t, err)
	assert.Equal(t, deviceID, got.DeviceID)
	assert.Equal(t, "0837654321", got.SellerPhone)
	assert.Equal(t, "Sipho", got.SellerName)
	assert.True(t, got.LastActive.Equal(at))

	later := at.Add(time.Hour)
	require.NoError(t, repo.UpdateLastActive(ctx, deviceID, later))
	got, err = repo.FindByDeviceID(ctx, deviceID)
	require.NoError(t, err)
	assert.True(t, got.LastActive.Equal(later))

	require.NoError(t, repo.Delete(ctx, deviceID))
	_, err = repo.FindByDeviceID(ctx, deviceID)
	require.ErrorIs(t, err, sellersession.ErrSessionNotFound)
}

func TestMemoryRepository(t *testing.T) {
	t.Parallel()
	runRepositoryContract(t, sellersession.NewMemoryRepository(), testDevice)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := sellersession.NewMemoryRepository()
	require.NoError(t, repo.Upsert(ctx, &sellersession.Session{DeviceID: "d", SellerPhone: "0821234567"}))

	got, err := repo.FindByDeviceID(ctx, "d")
	require.NoError(t, err)
	got.SellerPhone = "mutated"

	again, err := repo.FindByDeviceID(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "0821234567", again.SellerPhone)
}
