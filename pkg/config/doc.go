// Package config loads typed settings from the environment.
//
// Every adapter in the kit (pg, mongo, redis, ratelimiter, logger) declares
// a Config struct with `env` / `envDefault` tags understood by
// github.com/caarlos0/env/v11. Load parses the process environment into such
// a struct and caches it per type; a local .env file is picked up through
// github.com/joho/godotenv the first time Load runs.
//
//	pgCfg := config.MustLoad[pg.Config]()
//	cooldown, err := config.Load[ratelimiter.Config]()
//
// LoadEnv reads explicit .env files, with later files taking precedence,
// and invalidates the cache. Reset clears the cache in tests.
package config
