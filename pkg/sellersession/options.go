package sellersession

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Service.
type Option func(*Service)

// WithLogger sets the logger for degraded-mode diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source used for last-active timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTouchTimeout bounds the background last-active refresh.
func WithTouchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.touchTimeout = d
		}
	}
}
