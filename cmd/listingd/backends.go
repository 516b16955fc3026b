package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/listingkit/pkg/config"
	"github.com/dmitrymomot/listingkit/pkg/httpapi"
	"github.com/dmitrymomot/listingkit/pkg/httpserver"
	"github.com/dmitrymomot/listingkit/pkg/mongo"
	"github.com/dmitrymomot/listingkit/pkg/pg"
	"github.com/dmitrymomot/listingkit/pkg/redis"
	"github.com/dmitrymomot/listingkit/pkg/sellersession"
	"github.com/dmitrymomot/listingkit/pkg/storage"
)

// wiring collects the API options and the closers produced while opening
// backends.
type wiring struct {
	api     []httpapi.Option
	closers []func(context.Context) error
}

func (w *wiring) onClose(fn func(context.Context) error) {
	w.closers = append(w.closers, fn)
}

// shutdownHooks hands the closers to the server, which runs them after the
// last request.
func (w *wiring) shutdownHooks() []httpserver.Option {
	opts := make([]httpserver.Option, 0, len(w.closers))
	for _, fn := range w.closers {
		opts = append(opts, httpserver.WithShutdownHook(fn))
	}
	return opts
}

// close releases everything opened so far, newest first. It is used when
// startup fails before the server owns the closers.
func (w *wiring) close(ctx context.Context) error {
	var errs []error
	for _, fn := range slices.Backward(w.closers) {
		errs = append(errs, fn(ctx))
	}
	w.closers = nil
	return errors.Join(errs...)
}

func openProfileStore(ctx context.Context, kind string, w *wiring) (storage.Storage, error) {
	switch kind {
	case backendMemory, "":
		return storage.NewMemory(), nil
	case backendRedis:
		cfg, err := config.Load[redis.Config]()
		if err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		w.api = append(w.api, httpapi.WithHealthcheck("redis", redis.Healthcheck(client)))
		w.onClose(func(context.Context) error { return client.Close() })
		return redis.NewStorageFromConfig(client, cfg), nil
	default:
		return nil, fmt.Errorf("unknown PROFILE_STORE %q", kind)
	}
}

func openRepository(ctx context.Context, kind string, log *slog.Logger, w *wiring) (sellersession.Repository, error) {
	switch kind {
	case backendMemory, "":
		return sellersession.NewMemoryRepository(), nil

	case backendPostgres:
		cfg, err := config.Load[pg.Config]()
		if err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		cfg.MigrationsPath = sellersession.MigrationsDir
		if err := pg.Migrate(ctx, pool, cfg, log, pg.WithMigrationsFS(sellersession.Migrations)); err != nil {
			pool.Close()
			return nil, err
		}
		w.api = append(w.api, httpapi.WithHealthcheck("postgres", pg.Healthcheck(pool)))
		w.onClose(func(context.Context) error {
			pool.Close()
			return nil
		})
		return sellersession.NewPostgresRepository(pool), nil

	case backendMongo:
		cfg, err := config.Load[mongo.Config]()
		if err != nil {
			return nil, err
		}
		db, err := mongo.NewWithDatabase(ctx, cfg, "")
		if err != nil {
			return nil, err
		}
		w.onClose(db.Client().Disconnect)
		repo := sellersession.NewMongoRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		w.api = append(w.api, httpapi.WithHealthcheck("mongo", mongo.Healthcheck(db.Client())))
		return repo, nil

	default:
		return nil, fmt.Errorf("unknown SESSION_BACKEND %q", kind)
	}
}
