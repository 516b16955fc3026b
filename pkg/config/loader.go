package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.Mutex
	cache   = map[reflect.Type]any{}

	dotenvOnce sync.Once
)

// Load parses the environment into a T and caches the result per type.
// The .env file in the working directory is read once, if present; real
// environment variables take precedence over it.
//
//	cfg, err := config.Load[pg.Config]()
func Load[T any]() (T, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if v, ok := cache[key]; ok {
		return v.(T), nil
	}

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	cache[key] = cfg
	return cfg, nil
}

// MustLoad is like Load but panics on error. Use it for settings the
// process cannot start without.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

// LoadEnv reads the given .env files into the process environment, later
// files overriding earlier ones, and drops cached configs so the next Load
// sees the new values.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	Reset()
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// Reset clears the cache. Intended for tests.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}
