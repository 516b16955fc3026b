package ratelimiter

import "time"

const (
	// DefaultCooldown is the minimum time between two accepted submissions.
	DefaultCooldown = 5 * time.Minute

	// DefaultKey is the storage key holding the last submission timestamp.
	DefaultKey = "listing_last_submission"
)

// Config defines the cooldown configuration.
type Config struct {
	Cooldown time.Duration `env:"LISTING_COOLDOWN" envDefault:"5m"`
	Key      string        `env:"LISTING_COOLDOWN_KEY" envDefault:"listing_last_submission"`
}

// DefaultConfig returns the marketplace defaults.
func DefaultConfig() Config {
	return Config{Cooldown: DefaultCooldown, Key: DefaultKey}
}

// Result contains the outcome of a cooldown check.
type Result struct {
	Allowed bool `json:"allowed"`
	// MinutesRemaining is the wait in whole minutes, rounded up. Zero when allowed.
	MinutesRemaining int `json:"minutes_remaining,omitempty"`
	// Remaining is the exact wait. Zero when allowed.
	Remaining time.Duration `json:"-"`
	Message   string        `json:"message,omitempty"`
}

// RetryAfter returns how long to wait before the next submission.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return r.Remaining
}
