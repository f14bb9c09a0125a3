package config

import "errors"

var (
	// ErrInvalidServerConfigs indicates a missing or malformed listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN, an unknown driver or
	// a negative cache TTL.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates a missing or malformed API base URL.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAssistConfigs indicates an assist key without a usable endpoint.
	ErrInvalidAssistConfigs = errors.New("invalid assist configuration")

	ErrLoadingDotEnv = errors.New("error loading .env file")
)
