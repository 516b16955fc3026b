package pg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Logger is the subset of *slog.Logger used to report migration progress.
type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MigrateOption configures Migrate.
type MigrateOption func(*migrateOptions)

type migrateOptions struct {
	fsys fs.FS
}

// WithMigrationsFS reads migrations from fsys instead of the local disk,
// e.g. sellersession.Migrations.
func WithMigrationsFS(fsys fs.FS) MigrateOption {
	return func(o *migrateOptions) {
		o.fsys = fsys
	}
}

// goose keeps its settings in package globals.
var gooseMu sync.Mutex

// Migrate applies all pending goose migrations from cfg.MigrationsPath.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log Logger, opts ...MigrateOption) error {
	if cfg.MigrationsPath == "" {
		return errors.Join(ErrFailedToApplyMigrations, ErrMigrationPathNotProvided)
	}

	o := migrateOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkMigrationsDir(o.fsys, cfg.MigrationsPath); err != nil {
		return err
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close migration connection", "error", err)
		}
	}()

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(o.fsys)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{ctx: ctx, log: log})
	goose.SetTableName(cfg.MigrationsTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, db, cfg.MigrationsPath); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

func checkMigrationsDir(fsys fs.FS, dir string) error {
	var err error
	if fsys != nil {
		_, err = fs.Stat(fsys, dir)
	} else {
		_, err = os.Stat(dir)
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return errors.Join(ErrMigrationsDirNotFound, err)
	default:
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
}

// gooseLogger routes goose's printf output into the structured logger.
type gooseLogger struct {
	ctx context.Context
	log Logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.ErrorContext(l.ctx, fmt.Sprintf(format, v...))
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.InfoContext(l.ctx, fmt.Sprintf(format, v...))
}
