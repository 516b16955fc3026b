package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment cannot be parsed into the target struct.
	ErrParsingConfig = errors.New("config: failed to parse environment")

	// ErrLoadingEnvFile is returned when a .env file cannot be read.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)
