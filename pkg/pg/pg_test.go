package pg_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listingkit/pkg/logger"
	"github.com/dmitrymomot/listingkit/pkg/pg"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	assert.True(t, pg.IsNotFoundError(pgx.ErrNoRows))
	assert.True(t, pg.IsNotFoundError(fmt.Errorf("query: %w", pgx.ErrNoRows)))
	assert.False(t, pg.IsNotFoundError(nil))
	assert.False(t, pg.IsNotFoundError(errors.New("boom")))
}

func TestConnect_EmptyConnectionString(t *testing.T) {
	t.Parallel()

	_, err := pg.Connect(context.Background(), pg.Config{})
	require.ErrorIs(t, err, pg.ErrEmptyConnectionString)
}

func TestConnect_InvalidConnectionString(t *testing.T) {
	t.Parallel()

	_, err := pg.Connect(context.Background(), pg.Config{ConnectionString: "postgres://%zz"})
	require.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
}

func TestMigrate_Validation(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		err := pg.Migrate(context.Background(), nil, pg.Config{}, logger.Discard())
		require.ErrorIs(t, err, pg.ErrMigrationPathNotProvided)
	})

	t.Run("missing dir on disk", func(t *testing.T) {
		t.Parallel()
		err := pg.Migrate(context.Background(), nil, pg.Config{MigrationsPath: "does/not/exist"}, logger.Discard())
		require.ErrorIs(t, err, pg.ErrMigrationsDirNotFound)
	})

	t.Run("missing dir in fs", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"other/00001_init.sql": {Data: []byte("-- +goose Up\n")}}
		err := pg.Migrate(context.Background(), nil, pg.Config{MigrationsPath: "migrations"}, logger.Discard(),
			pg.WithMigrationsFS(fsys))
		require.ErrorIs(t, err, pg.ErrMigrationsDirNotFound)
	})
}

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	ok := pg.Healthcheck(pingFunc(func(context.Context) error { return nil }))
	require.NoError(t, ok(context.Background()))

	down := pg.Healthcheck(pingFunc(func(context.Context) error { return errors.New("refused") }))
	require.ErrorIs(t, down(context.Background()), pg.ErrHealthcheckFailed)
}
