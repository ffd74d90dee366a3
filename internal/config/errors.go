package config

import "errors"

// Validation errors returned when a configuration view is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing RPC URL or non-positive
	// timeouts.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates malformed program ids or an unknown
	// commitment level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a negative refresh interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates that the gateway has no listen
	// address or that token settings are incomplete.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
