package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrNoTokenSignKey indicates the JWT signing secret is absent. No
	// service can authenticate requests without it, so startup aborts.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")
	// ErrNoServerAddress indicates the inbound HTTP listen address is
	// missing after all configuration sources were merged.
	ErrNoServerAddress = errors.New("server address is not configured")
	// ErrInvalidTokenDuration indicates a zero or negative token validity
	// window.
	ErrInvalidTokenDuration = errors.New("invalid token duration")
)
