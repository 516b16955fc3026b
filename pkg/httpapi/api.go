package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/listingkit/handler"
	"github.com/dmitrymomot/listingkit/pkg/clientid"
	"github.com/dmitrymomot/listingkit/pkg/contentfilter"
	"github.com/dmitrymomot/listingkit/pkg/cookie"
	"github.com/dmitrymomot/listingkit/pkg/fingerprint"
	"github.com/dmitrymomot/listingkit/pkg/listing"
	"github.com/dmitrymomot/listingkit/pkg/logger"
	"github.com/dmitrymomot/listingkit/pkg/ratelimiter"
	"github.com/dmitrymomot/listingkit/pkg/requestid"
	"github.com/dmitrymomot/listingkit/pkg/sellersession"
	"github.com/dmitrymomot/listingkit/pkg/storage"
)

const maxBodyBytes = 64 << 10

// Publisher forwards an accepted listing upstream.
type Publisher interface {
	Publish(ctx context.Context, draft listing.Draft) error
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, draft listing.Draft) error

func (f PublisherFunc) Publish(ctx context.Context, draft listing.Draft) error {
	return f(ctx, draft)
}

type healthcheck struct {
	name  string
	check func(context.Context) error
}

// API serves the listing and seller session endpoints.
type API struct {
	base      storage.Storage
	repo      sellersession.Repository
	sessions  *sellersession.Service
	guard     *listing.Guard
	publisher Publisher

	filter    *contentfilter.Filter
	cooldown  ratelimiter.Config
	log       *slog.Logger
	now       func() time.Time
	checks    []healthcheck
	cookies   *cookie.Manager
	clients   clientid.Transport
	errors    handler.ErrorHandler[handler.Context]
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the request logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithFilter replaces the default content filter.
func WithFilter(f *contentfilter.Filter) Option {
	return func(a *API) { a.filter = f }
}

// WithCooldown sets the submission cooldown.
func WithCooldown(cfg ratelimiter.Config) Option {
	return func(a *API) { a.cooldown = cfg }
}

// WithPublisher sets where accepted submissions are sent.
func WithPublisher(p Publisher) Option {
	return func(a *API) {
		if p != nil {
			a.publisher = p
		}
	}
}

// WithClock overrides the time source for device ids, cooldowns and sessions.
func WithClock(now func() time.Time) Option {
	return func(a *API) {
		if now != nil {
			a.now = now
		}
	}
}

// WithHealthcheck adds a named readiness check to /healthz.
func WithHealthcheck(name string, check func(context.Context) error) Option {
	return func(a *API) {
		if check != nil {
			a.checks = append(a.checks, healthcheck{name: name, check: check})
		}
	}
}

// WithCookies sets the manager used to write the client id cookie.
func WithCookies(m *cookie.Manager) Option {
	return func(a *API) {
		if m != nil {
			a.cookies = m
		}
	}
}

// New creates an API. base stores every browser profile's state; repo is
// the remote seller session store.
func New(base storage.Storage, repo sellersession.Repository, opts ...Option) *API {
	a := &API{
		base:     base,
		repo:     repo,
		cooldown: ratelimiter.DefaultConfig(),
		log:      logger.Discard(),
		now:      time.Now,
		cookies:  cookie.New(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.errors = handler.NewErrorHandler(a.log)
	a.clients = clientid.NewCompositeTransport(
		clientid.NewHeaderTransport(clientid.DefaultHeader),
		clientid.NewCookieTransport(a.cookies, clientid.DefaultCookie),
	)

	profiles := storage.Contextual(nil)
	if a.publisher == nil {
		a.publisher = logPublisher(a.log)
	}

	guardOpts := []listing.Option{listing.WithLogger(a.log)}
	if a.filter != nil {
		guardOpts = append(guardOpts, listing.WithFilter(a.filter))
	}
	a.guard = listing.NewGuard(
		ratelimiter.NewCooldown(profiles,
			ratelimiter.WithConfig(a.cooldown),
			ratelimiter.WithClock(a.now),
			ratelimiter.WithLogger(a.log),
		),
		guardOpts...,
	)
	a.sessions = sellersession.New(repo, profiles, fingerprint.ContextResolver{},
		sellersession.WithLogger(a.log),
		sellersession.WithClock(a.now),
	)
	return a
}

// Router returns the HTTP handler.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Get("/healthz", route(a, a.health))

	r.Group(func(r chi.Router) {
		r.Use(clientid.Middleware(a.clients, clientid.WithLogger(a.log)))
		r.Use(a.profileMiddleware)
		r.Use(fingerprint.Middleware(profileStorage,
			fingerprint.WithClock(a.now),
			fingerprint.WithLogger(a.log),
		))

		r.Route("/listings", func(r chi.Router) {
			r.Post("/validate", bodyRoute[listing.Draft](a, a.validateListing))
			r.Post("/submissions", bodyRoute[listing.Draft](a, a.submitListing))
		})

		r.Route("/seller", func(r chi.Router) {
			r.Get("/session", route(a, a.loadSession))
			r.Put("/session", bodyRoute[SaveSessionRequest](a, a.saveSession))
			r.Delete("/session", route(a, a.clearSession))
			r.Get("/profile", route(a, a.profile))
		})
	})

	return r
}

// Drain stops background session work and waits for it to finish. Requests
// still in flight keep working. It fits httpserver.WithShutdownHook.
func (a *API) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.sessions.Drain()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func logPublisher(log *slog.Logger) Publisher {
	return PublisherFunc(func(ctx context.Context, d listing.Draft) error {
		log.InfoContext(ctx, "listing accepted",
			logger.Component("httpapi"),
			slog.String("title", d.Title),
			slog.String("price", string(d.Price)),
		)
		return nil
	})
}
