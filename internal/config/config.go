// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-vault-sync client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session-level settings: the acting user, their role, and
	// the display name reported for this machine.
	App App `envPrefix:"APP_"`

	// Vault holds the local vault location and the paths of the persisted
	// client state (cache database, machine-identity file).
	Vault Vault `envPrefix:"VAULT_"`

	// Adapter holds the vault-server endpoint and timeout settings for the
	// outbound transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs and batch fan-out.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds session-level configuration values.
type App struct {
	// UserID identifies the acting user on the vault server.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// Role is the actor role the permission policy gates on:
	// "viewer", "editor", or "admin".
	// Env: APP_ROLE
	Role string `env:"ROLE"`

	// MachineName is the human-readable name reported for this machine in
	// checkout-conflict dialogs on other devices (e.g. "Alice's Laptop").
	// Env: APP_MACHINE_NAME
	MachineName string `env:"MACHINE_NAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Vault holds the local file-system locations used by the client.
type Vault struct {
	// RootPath is the absolute path of the local vault folder mirrored with
	// the server.
	// Env: VAULT_ROOT_PATH
	RootPath string `env:"ROOT_PATH"`

	// DBPath is the path of the per-vault SQLite cache database holding
	// ignore rules, cached sync records, and pending metadata edits.
	// Env: VAULT_DB_PATH
	DBPath string `env:"DB_PATH"`

	// IdentityPath is the path of the machine-identity file. It must live
	// outside the vault so that the identity survives vault re-creation and
	// is never synchronized.
	// Env: VAULT_IDENTITY_PATH
	IdentityPath string `env:"IDENTITY_PATH"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the base URL of the vault server
	// (e.g. "https://pdm.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs and batch execution.
type Workers struct {
	// RefreshInterval defines how often the background refresh job re-pulls
	// remote records into the local cache.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// FanOutLimit caps how many per-file remote calls a batch operation may
	// have in flight at once.
	// Env: WORKERS_FAN_OUT_LIMIT
	FanOutLimit int `env:"FAN_OUT_LIMIT"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
