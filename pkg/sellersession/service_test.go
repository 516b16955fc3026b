package sellersession_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listingkit/pkg/fingerprint"
	"github.com/dmitrymomot/listingkit/pkg/sellersession"
	"github.com/dmitrymomot/listingkit/pkg/storage"
)

type staticDevice string

func (d staticDevice) Resolve(context.Context) string { return string(d) }

// flakyRepository wraps a MemoryRepository and fails selected operations.
type flakyRepository struct {
	*sellersession.MemoryRepository

	mu         sync.Mutex
	failWrites bool
	failReads  bool
	touched    []string
}

var errOffline = errors.New("network unreachable")

func newFlakyRepository() *flakyRepository {
	return &flakyRepository{MemoryRepository: sellersession.NewMemoryRepository()}
}

func (r *flakyRepository) Upsert(ctx context.Context, s *sellersession.Session) error {
	if r.failWrites {
		return errOffline
	}
	return r.MemoryRepository.Upsert(ctx, s)
}

func (r *flakyRepository) FindByDeviceID(ctx context.Context, id string) (*sellersession.Session, error) {
	if r.failReads {
		return nil, errOffline
	}
	return r.MemoryRepository.FindByDeviceID(ctx, id)
}

func (r *flakyRepository) UpdateLastActive(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	r.touched = append(r.touched, id)
	r.mu.Unlock()
	return r.MemoryRepository.UpdateLastActive(ctx, id, at)
}

func (r *flakyRepository) Delete(ctx context.Context, id string) error {
	if r.failWrites {
		return errOffline
	}
	return r.MemoryRepository.Delete(ctx, id)
}

const testDevice = "device_m5t6v2_m7q5h1c0"

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newService(repo sellersession.Repository, cache storage.Storage) *sellersession.Service {
	return sellersession.New(repo, cache, staticDevice(testDevice),
		sellersession.WithClock(func() time.Time { return testNow }),
	)
}

func TestService_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepository()
	cache := storage.NewMemory()
	svc := newService(repo, cache)

	res := svc.Save(ctx, "0821234567", "Thandi")
	assert.True(t, res.Success)
	assert.False(t, res.Fallback)
	assert.Equal(t, testDevice, res.DeviceID)

	loaded := svc.Load(ctx)
	svc.Wait()
	require.NotNil(t, loaded)
	assert.False(t, loaded.Fallback)
	assert.Equal(t, testDevice, loaded.DeviceID)
	assert.Equal(t, "0821234567", loaded.SellerPhone)
	assert.Equal(t, "Thandi", loaded.SellerName)
	assert.Equal(t, testNow, loaded.LastActive)

	assert.Equal(t, map[string]string{
		sellersession.CacheKeyPhone: "0821234567",
		sellersession.CacheKeyName:  "Thandi",
	}, cache.Snapshot())
	assert.Equal(t, []string{testDevice}, repo.touched)
}

func TestService_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepository()
	svc := newService(repo, storage.NewMemory())

	svc.Save(ctx, "0821234567", "Thandi")
	svc.Save(ctx, "0837654321", "Sipho")

	loaded := svc.Load(ctx)
	svc.Wait()
	require.NotNil(t, loaded)
	assert.Equal(t, "0837654321", loaded.SellerPhone)
	assert.Equal(t, "Sipho", loaded.SellerName)
	assert.Equal(t, 1, repo.Len())
}

func TestService_SaveFallback(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepository()
	repo.failWrites = true
	cache := storage.NewMemory()
	svc := newService(repo, cache)

	res := svc.Save(ctx, "0821234567", "Thandi")
	assert.True(t, res.Success)
	assert.True(t, res.Fallback)
	assert.Equal(t, 0, repo.Len())
	assert.Equal(t, "0821234567", cache.Snapshot()[sellersession.CacheKeyPhone])
}

func TestService_LoadFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("remote failure uses cache", func(t *testing.T) {
		repo := newFlakyRepository()
		cache := storage.NewMemory()
		svc := newService(repo, cache)
		svc.Save(ctx, "0821234567", "Thandi")

		repo.failReads = true
		loaded := svc.Load(ctx)
		svc.Wait()
		require.NotNil(t, loaded)
		assert.True(t, loaded.Fallback)
		assert.Equal(t, "0821234567", loaded.SellerPhone)
		assert.Equal(t, "Thandi", loaded.SellerName)
		assert.Equal(t, testDevice, loaded.DeviceID)
		assert.True(t, loaded.LastActive.IsZero())
		assert.Empty(t, repo.touched)
	})

	t.Run("not found uses cache", func(t *testing.T) {
		cache := storage.NewMemory()
		require.NoError(t, cache.Set(ctx, sellersession.CacheKeyPhone, "0821234567"))
		svc := newService(newFlakyRepository(), cache)

		loaded := svc.Load(ctx)
		require.NotNil(t, loaded)
		assert.True(t, loaded.Fallback)
		assert.Equal(t, "0821234567", loaded.SellerPhone)
		assert.Empty(t, loaded.SellerName)
	})

	t.Run("remote failure without cache", func(t *testing.T) {
		repo := newFlakyRepository()
		repo.failReads = true
		svc := newService(repo, storage.NewMemory())

		assert.Nil(t, svc.Load(ctx))
		assert.False(t, svc.IsKnownSeller(ctx))
	})

	t.Run("name without phone is not a session", func(t *testing.T) {
		cache := storage.NewMemory()
		require.NoError(t, cache.Set(ctx, sellersession.CacheKeyName, "Thandi"))
		svc := newService(newFlakyRepository(), cache)

		assert.Nil(t, svc.Load(ctx))
	})
}

func TestService_LoadRefreshesCache(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepository()
	require.NoError(t, repo.Upsert(ctx, &sellersession.Session{
		DeviceID:    testDevice,
		SellerPhone: "0821234567",
		SellerName:  "Thandi",
		LastActive:  testNow.Add(-time.Hour),
	}))
	cache := storage.NewMemory()
	require.NoError(t, cache.Set(ctx, sellersession.CacheKeyPhone, "0000000000"))
	svc := newService(repo, cache)

	loaded := svc.Load(ctx)
	svc.Wait()
	require.NotNil(t, loaded)
	assert.False(t, loaded.Fallback)
	assert.Equal(t, "0821234567", cache.Snapshot()[sellersession.CacheKeyPhone])

	row, err := repo.FindByDeviceID(ctx, testDevice)
	require.NoError(t, err)
	assert.Equal(t, testNow, row.LastActive)
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()

	t.Run("removes remote and local", func(t *testing.T) {
		repo := newFlakyRepository()
		cache := storage.NewMemory()
		svc := newService(repo, cache)
		svc.Save(ctx, "0821234567", "Thandi")

		svc.Clear(ctx)
		assert.Equal(t, 0, repo.Len())
		assert.Empty(t, cache.Snapshot())
		assert.Nil(t, svc.Load(ctx))
	})

	t.Run("remote failure still clears local", func(t *testing.T) {
		repo := newFlakyRepository()
		cache := storage.NewMemory()
		svc := newService(repo, cache)
		svc.Save(ctx, "0821234567", "Thandi")

		repo.failWrites = true
		svc.Clear(ctx)
		assert.Empty(t, cache.Snapshot())
		assert.Equal(t, 1, repo.Len())
	})
}

func TestService_Describe(t *testing.T) {
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		svc := newService(newFlakyRepository(), storage.NewMemory())
		assert.Nil(t, svc.Describe(ctx))
	})

	t.Run("named seller", func(t *testing.T) {
		svc := newService(newFlakyRepository(), storage.NewMemory())
		svc.Save(ctx, "0821234567", "Thandi")

		p := svc.Describe(ctx)
		svc.Wait()
		require.NotNil(t, p)
		assert.Equal(t, sellersession.Profile{
			Phone:    "0821234567",
			Name:     "Thandi",
			DeviceID: testDevice,
		}, *p)
	})

	t.Run("unnamed seller", func(t *testing.T) {
		svc := newService(newFlakyRepository(), storage.NewMemory())
		svc.Save(ctx, "0821234567", "")

		p := svc.Describe(ctx)
		svc.Wait()
		require.NotNil(t, p)
		assert.Equal(t, sellersession.UnknownSellerName, p.Name)
		assert.True(t, svc.IsKnownSeller(ctx))
		svc.Wait()
	})
}

func TestService_TouchOutlivesRequestContext(t *testing.T) {
	repo := newFlakyRepository()
	svc := newService(repo, storage.NewMemory())
	svc.Save(context.Background(), "0821234567", "Thandi")

	ctx, cancel := context.WithCancel(context.Background())
	require.NotNil(t, svc.Load(ctx))
	cancel()
	svc.Wait()

	assert.Equal(t, []string{testDevice}, repo.touched)
}

func TestService_DrainStopsNewRefreshes(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepository()
	svc := newService(repo, storage.NewMemory())
	svc.Save(ctx, "0821234567", "Thandi")

	require.NotNil(t, svc.Load(ctx))
	svc.Drain()
	repo.mu.Lock()
	assert.Len(t, repo.touched, 1)
	repo.mu.Unlock()

	// Loads racing with shutdown still succeed but no longer touch.
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loaded := svc.Load(ctx)
			assert.NotNil(t, loaded)
		}()
	}
	wg.Wait()
	svc.Drain()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.touched, 1)
}

func TestService_WithFingerprintResolver(t *testing.T) {
	ctx := context.Background()
	profile := storage.NewMemory()
	resolver := fingerprint.NewResolver(profile, func(context.Context) fingerprint.Components {
		return fingerprint.Components{UserAgent: "Mozilla/5.0", Language: "en-US"}
	}, fingerprint.WithClock(func() time.Time { return testNow }))

	svc := sellersession.New(sellersession.NewMemoryRepository(), profile, resolver)
	res := svc.Save(ctx, "0821234567", "Thandi")

	deviceID, ok, err := profile.Get(ctx, fingerprint.DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, deviceID, res.DeviceID)

	loaded := svc.Load(ctx)
	svc.Wait()
	require.NotNil(t, loaded)
	assert.Equal(t, deviceID, loaded.DeviceID)
}
