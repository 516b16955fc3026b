package redis

import "time"

// Config holds the Redis connection settings for the profile storage.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`

	// KeyPrefix namespaces every key written by Storage.
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"listingkit"`
	// TTL expires idle profile keys; zero keeps them forever.
	TTL time.Duration `env:"REDIS_KEY_TTL" envDefault:"0s"`
}
