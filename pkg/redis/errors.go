package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("redis: failed to parse connection string")
	ErrRedisNotReady                = errors.New("redis: server did not become ready in time")
	ErrEmptyConnectionURL           = errors.New("redis: empty connection url")
	ErrHealthcheckFailed            = errors.New("redis: healthcheck failed")
)
