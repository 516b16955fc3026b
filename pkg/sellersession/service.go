package sellersession

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/listingkit/pkg/logger"
	"github.com/dmitrymomot/listingkit/pkg/storage"
)

// DefaultTouchTimeout bounds the detached last-active refresh.
const DefaultTouchTimeout = 5 * time.Second

// Service associates the current device with seller contact details.
// It is safe for concurrent use when its collaborators are.
type Service struct {
	repo    Repository
	cache   storage.Storage
	devices DeviceResolver

	now          func() time.Time
	log          *slog.Logger
	touchTimeout time.Duration

	mu       sync.Mutex
	draining bool
	pending  sync.WaitGroup
}

// New creates a Service. cache is the per-profile local storage and devices
// resolves the identifier the repository is keyed by.
func New(repo Repository, cache storage.Storage, devices DeviceResolver, opts ...Option) *Service {
	s := &Service{
		repo:         repo,
		cache:        cache,
		devices:      devices,
		now:          time.Now,
		log:          logger.Discard(),
		touchTimeout: DefaultTouchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save upserts the seller for the current device and mirrors it locally.
// When the repository fails, only the local cache is written and the result
// is marked as a fallback. Save never reports failure.
func (s *Service) Save(ctx context.Context, phone, name string) SaveResult {
	deviceID := s.devices.Resolve(ctx)
	session := &Session{
		DeviceID:    deviceID,
		SellerPhone: phone,
		SellerName:  name,
		LastActive:  s.now(),
	}

	res := SaveResult{Success: true, DeviceID: deviceID}
	if err := s.repo.Upsert(ctx, session); err != nil {
		s.log.WarnContext(ctx, "seller session saved locally only",
			logger.Component("sellersession"),
			logger.DeviceID(deviceID),
			logger.Fallback(true),
			logger.Error(err),
		)
		res.Fallback = true
	}

	s.writeCache(ctx, phone, name)
	return res
}

// Load returns the seller session for the current device, or nil when the
// device is unknown both remotely and locally. Values served from the local
// cache are marked as a fallback.
func (s *Service) Load(ctx context.Context) *LoadResult {
	deviceID := s.devices.Resolve(ctx)
	local := s.readCache(ctx, deviceID)

	session, err := s.repo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			s.log.WarnContext(ctx, "seller session lookup failed",
				logger.Component("sellersession"),
				logger.DeviceID(deviceID),
				logger.Fallback(local != nil),
				logger.Error(err),
			)
		}
		return local
	}

	s.writeCache(ctx, session.SellerPhone, session.SellerName)
	s.touch(ctx, deviceID)

	return &LoadResult{Session: *session}
}

// Clear deletes the remote row (best effort) and always removes the local
// phone and name.
func (s *Service) Clear(ctx context.Context) {
	deviceID := s.devices.Resolve(ctx)
	if err := s.repo.Delete(ctx, deviceID); err != nil {
		s.log.WarnContext(ctx, "failed to delete seller session",
			logger.Component("sellersession"),
			logger.DeviceID(deviceID),
			logger.Error(err),
		)
	}

	for _, key := range []string{CacheKeyPhone, CacheKeyName} {
		if err := s.cache.Remove(ctx, key); err != nil {
			s.log.WarnContext(ctx, "failed to remove cached seller field",
				logger.Component("sellersession"),
				slog.String("key", key),
				logger.Error(err),
			)
		}
	}
}

// IsKnownSeller reports whether any session, remote or cached, exists.
func (s *Service) IsKnownSeller(ctx context.Context) bool {
	return s.Load(ctx) != nil
}

// Describe returns a display profile of the current seller or nil.
// An empty name is reported as UnknownSellerName.
func (s *Service) Describe(ctx context.Context) *Profile {
	res := s.Load(ctx)
	if res == nil {
		return nil
	}

	name := res.SellerName
	if name == "" {
		name = UnknownSellerName
	}
	return &Profile{
		Phone:    res.SellerPhone,
		Name:     name,
		DeviceID: res.DeviceID,
		Fallback: res.Fallback,
	}
}

// Wait blocks until all background last-active refreshes have finished.
// It must not run concurrently with Load; use Drain at shutdown.
func (s *Service) Wait() {
	s.pending.Wait()
}

// Drain stops starting new last-active refreshes and waits for those in
// flight. Load keeps serving sessions afterwards without refreshing them,
// so Drain is safe while requests are still being handled.
func (s *Service) Drain() {
	s.mu.Lock()
	s.draining = true
	s.mu.Unlock()

	s.pending.Wait()
}

func (s *Service) touch(ctx context.Context, deviceID string) {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		s.log.DebugContext(ctx, "skipping last activity refresh while draining",
			logger.Component("sellersession"),
			logger.DeviceID(deviceID),
		)
		return
	}
	s.pending.Add(1)
	s.mu.Unlock()

	at := s.now()
	detached := context.WithoutCancel(ctx)

	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(detached, s.touchTimeout)
		defer cancel()

		if err := s.repo.UpdateLastActive(ctx, deviceID, at); err != nil {
			s.log.WarnContext(ctx, "failed to refresh seller last activity",
				logger.Component("sellersession"),
				logger.DeviceID(deviceID),
				logger.Error(err),
			)
		}
	}()
}

// readCache returns the locally cached session or nil. A cache entry exists
// only when a phone number is stored.
func (s *Service) readCache(ctx context.Context, deviceID string) *LoadResult {
	phone, ok, err := s.cache.Get(ctx, CacheKeyPhone)
	if err != nil {
		s.log.WarnContext(ctx, "failed to read cached seller phone",
			logger.Component("sellersession"),
			logger.Error(err),
		)
		return nil
	}
	if !ok || phone == "" {
		return nil
	}

	name, _, err := s.cache.Get(ctx, CacheKeyName)
	if err != nil {
		s.log.WarnContext(ctx, "failed to read cached seller name",
			logger.Component("sellersession"),
			logger.Error(err),
		)
	}

	return &LoadResult{
		Session: Session{
			DeviceID:    deviceID,
			SellerPhone: phone,
			SellerName:  name,
		},
		Fallback: true,
	}
}

func (s *Service) writeCache(ctx context.Context, phone, name string) {
	if err := errors.Join(
		s.cache.Set(ctx, CacheKeyPhone, phone),
		s.cache.Set(ctx, CacheKeyName, name),
	); err != nil {
		s.log.WarnContext(ctx, "failed to cache seller session",
			logger.Component("sellersession"),
			logger.Error(err),
		)
	}
}
