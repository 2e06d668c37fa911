package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a missing server address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty cache database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates a missing or invalid vault root path.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidAppConfigs indicates invalid session settings (for example,
	// a missing user id or role).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
