package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("mongo: failed to connect")
	ErrEmptyConnectionURL     = errors.New("mongo: empty connection url, set MONGODB_URL")
	ErrHealthcheckFailed      = errors.New("mongo: healthcheck failed")
)
