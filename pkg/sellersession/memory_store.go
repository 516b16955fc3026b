package sellersession

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-process Repository for tests and single-node setups.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]Session
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[string]Session)}
}

func (r *MemoryRepository) Upsert(_ context.Context, session *Session) error {
	if session == nil || session.DeviceID == "" {
		return ErrInvalidSession
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[session.DeviceID] = *session
	return nil
}

func (r *MemoryRepository) FindByDeviceID(_ context.Context, deviceID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[deviceID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &row, nil
}

func (r *MemoryRepository) UpdateLastActive(_ context.Context, deviceID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[deviceID]
	if !ok {
		return ErrSessionNotFound
	}
	row.LastActive = at
	r.rows[deviceID] = row
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, deviceID)
	return nil
}

// Len returns the number of stored sessions.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}
