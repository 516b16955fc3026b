// Command listingd serves the listing guard and seller session API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/listingkit/pkg/clientid"
	"github.com/dmitrymomot/listingkit/pkg/config"
	"github.com/dmitrymomot/listingkit/pkg/contentfilter"
	"github.com/dmitrymomot/listingkit/pkg/cookie"
	"github.com/dmitrymomot/listingkit/pkg/fingerprint"
	"github.com/dmitrymomot/listingkit/pkg/httpapi"
	"github.com/dmitrymomot/listingkit/pkg/httpserver"
	"github.com/dmitrymomot/listingkit/pkg/logger"
	"github.com/dmitrymomot/listingkit/pkg/ratelimiter"
	"github.com/dmitrymomot/listingkit/pkg/requestid"
)

// envFilesVar lists extra .env files, comma separated, applied before any
// config is read.
const envFilesVar = "ENV_FILES"

func main() {
	if files := os.Getenv(envFilesVar); files != "" {
		config.MustLoadEnv(strings.Split(files, ",")...)
	}
	cfg := config.MustLoad[appConfig]()

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextExtractors(
			requestid.LogExtractor,
			clientid.LogExtractor,
			fingerprint.LogExtractor,
		),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("listingd stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	var w wiring

	srv, api, err := setup(ctx, cfg, log, &w)
	if err != nil {
		return errors.Join(err, w.close(context.WithoutCancel(ctx)))
	}

	log.InfoContext(ctx, "listingd configured",
		logger.Component("listingd"),
		slog.String("session_backend", cfg.SessionBackend),
		slog.String("profile_store", cfg.ProfileStore),
	)
	return srv.Run(ctx, api.Router())
}

// setup opens the backends and builds the API and server. On error the
// caller releases what w collected.
func setup(ctx context.Context, cfg appConfig, log *slog.Logger, w *wiring) (*httpserver.Server, *httpapi.API, error) {
	profiles, err := openProfileStore(ctx, cfg.ProfileStore, w)
	if err != nil {
		return nil, nil, err
	}
	repo, err := openRepository(ctx, cfg.SessionBackend, log, w)
	if err != nil {
		return nil, nil, err
	}

	cooldown, err := config.Load[ratelimiter.Config]()
	if err != nil {
		return nil, nil, err
	}
	cookieCfg, err := config.Load[cookie.Config]()
	if err != nil {
		return nil, nil, err
	}

	opts := append(w.api,
		httpapi.WithLogger(log),
		httpapi.WithCooldown(cooldown),
		httpapi.WithCookies(cookie.NewFromConfig(cookieCfg)),
	)
	if cfg.ContentListsFile != "" {
		lists, err := contentfilter.LoadListsFile(cfg.ContentListsFile)
		if err != nil {
			return nil, nil, err
		}
		filter, err := contentfilter.New(lists, contentfilter.WithLogger(log))
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, httpapi.WithFilter(filter))
	}
	api := httpapi.New(profiles, repo, opts...)

	srvCfg, err := config.Load[httpserver.Config]()
	if err != nil {
		return nil, nil, err
	}
	// Drain session work before backends close.
	srvOpts := append([]httpserver.Option{
		httpserver.WithLogger(log),
		httpserver.WithShutdownHook(api.Drain),
	}, w.shutdownHooks()...)

	return httpserver.NewFromConfig(srvCfg, srvOpts...), api, nil
}
