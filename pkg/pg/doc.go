// Package pg bootstraps the PostgreSQL backend of the seller session store
// on top of pgx/v5 and goose/v3.
//
// Config is populated from PG_* environment variables through pkg/config.
// Connect opens a pool with retries, Migrate applies goose migrations from
// disk or from an embedded filesystem, and Healthcheck returns a readiness
// check.
//
// # Usage
//
//	cfg := config.MustLoad[pg.Config]()
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	cfg.MigrationsPath = sellersession.MigrationsDir
//	if err := pg.Migrate(ctx, pool, cfg, log, pg.WithMigrationsFS(sellersession.Migrations)); err != nil {
//	    return err
//	}
//
//	repo := sellersession.NewPostgresRepository(pool)
//
// IsNotFoundError classifies pgx errors so repositories can translate them
// into their own sentinels.
package pg
