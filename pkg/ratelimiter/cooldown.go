package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/listingkit/pkg/logger"
	"github.com/dmitrymomot/listingkit/pkg/storage"
)

// Cooldown enforces a minimum interval between accepted submissions.
type Cooldown struct {
	store  storage.Storage
	config Config
	now    func() time.Time
	log    *slog.Logger
}

// Option configures a Cooldown.
type Option func(*Cooldown)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(c *Cooldown) {
		c.config = cfg
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cooldown) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger for storage failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cooldown) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCooldown creates a cooldown limiter over store.
// It panics on a non-positive cooldown or an empty key.
func NewCooldown(store storage.Storage, opts ...Option) *Cooldown {
	c := &Cooldown{
		store:  store,
		config: DefaultConfig(),
		now:    time.Now,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.config.validate(); err != nil {
		panic(err)
	}
	return c
}

// Check reports whether a submission is allowed now.
func (c *Cooldown) Check(ctx context.Context) Result {
	last, ok, err := c.lastSubmission(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "failed to read last submission",
			logger.Component("ratelimiter"),
			logger.Error(err),
		)
	}
	if !ok {
		return Result{Allowed: true}
	}

	elapsed := c.now().Sub(last)
	if elapsed >= c.config.Cooldown {
		return Result{Allowed: true}
	}

	remaining := c.config.Cooldown - elapsed
	minutes := ceilMinutes(remaining)
	return Result{
		Allowed:          false,
		MinutesRemaining: minutes,
		Remaining:        remaining,
		Message:          waitMessage(minutes),
	}
}

// Record stores the current instant as the last accepted submission.
func (c *Cooldown) Record(ctx context.Context) {
	ts := strconv.FormatInt(c.now().UnixMilli(), 10)
	if err := c.store.Set(ctx, c.config.Key, ts); err != nil {
		c.log.WarnContext(ctx, "failed to record submission",
			logger.Component("ratelimiter"),
			logger.Error(err),
		)
	}
}

func (c *Cooldown) lastSubmission(ctx context.Context) (time.Time, bool, error) {
	raw, ok, err := c.store.Get(ctx, c.config.Key)
	if err != nil || !ok || raw == "" {
		return time.Time{}, false, err
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, errors.Join(ErrInvalidTimestamp, err)
	}
	return time.UnixMilli(ms), true, nil
}

func ceilMinutes(d time.Duration) int {
	return int((d + time.Minute - 1) / time.Minute)
}

func waitMessage(minutes int) string {
	unit := "minutes"
	if minutes == 1 {
		unit = "minute"
	}
	return fmt.Sprintf("Please wait %d %s before submitting another listing", minutes, unit)
}

func (c Config) validate() error {
	if c.Cooldown <= 0 {
		return fmt.Errorf("%w: cooldown must be positive, got %v", ErrInvalidConfig, c.Cooldown)
	}
	if c.Key == "" {
		return fmt.Errorf("%w: storage key must not be empty", ErrInvalidConfig)
	}
	return nil
}
