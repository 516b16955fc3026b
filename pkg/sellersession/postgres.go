package sellersession

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/listingkit/pkg/pg"
)

// DBTX is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx used by PostgresRepository.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	upsertSessionQuery = `
INSERT INTO seller_sessions (device_id, seller_phone, seller_name, last_active)
VALUES ($1, $2, $3, $4)
ON CONFLICT (device_id) DO UPDATE SET
    seller_phone = EXCLUDED.seller_phone,
    seller_name  = EXCLUDED.seller_name,
    last_active  = EXCLUDED.last_active`

	findSessionQuery = `
SELECT device_id, seller_phone, seller_name, last_active
FROM seller_sessions
WHERE device_id = $1`

	touchSessionQuery  = `UPDATE seller_sessions SET last_active = $2 WHERE device_id = $1`
	deleteSessionQuery = `DELETE FROM seller_sessions WHERE device_id = $1`
)

// PostgresRepository stores sessions in the seller_sessions table.
// The schema is provided by Migrations.
type PostgresRepository struct {
	db DBTX
}

// NewPostgresRepository creates a repository over db.
func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, session *Session) error {
	if session == nil || session.DeviceID == "" {
		return ErrInvalidSession
	}
	_, err := r.db.Exec(ctx, upsertSessionQuery,
		session.DeviceID,
		session.SellerPhone,
		session.SellerName,
		session.LastActive.UTC(),
	)
	if err != nil {
		return errors.Join(ErrRepository, err)
	}
	return nil
}

func (r *PostgresRepository) FindByDeviceID(ctx context.Context, deviceID string) (*Session, error) {
	var s Session
	err := r.db.QueryRow(ctx, findSessionQuery, deviceID).
		Scan(&s.DeviceID, &s.SellerPhone, &s.SellerName, &s.LastActive)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Join(ErrRepository, err)
	}
	return &s, nil
}

func (r *PostgresRepository) UpdateLastActive(ctx context.Context, deviceID string, at time.Time) error {
	tag, err := r.db.Exec(ctx, touchSessionQuery, deviceID, at.UTC())
	if err != nil {
		return errors.Join(ErrRepository, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, deviceID string) error {
	if _, err := r.db.Exec(ctx, deleteSessionQuery, deviceID); err != nil {
		return errors.Join(ErrRepository, err)
	}
	return nil
}
