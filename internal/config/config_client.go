package config

import (
	"fmt"
	"time"
)

// ClientApp holds session-level settings derived from the shared structured
// config.
type ClientApp struct {
	// UserID identifies the acting user on the vault server.
	UserID string
	// Role is the actor role the permission policy gates on.
	Role string
	// MachineName is the display name reported for this machine.
	MachineName string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the vault server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientVault holds local vault locations.
type ClientVault struct {
	// RootPath is the local vault root folder.
	RootPath string
	// DBPath is the per-vault SQLite cache database path.
	DBPath string
	// IdentityPath is the machine-identity file path, outside the vault.
	IdentityPath string
}

// ClientWorkers contains client background worker and batch settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh job re-pulls remote
	// records.
	RefreshInterval time.Duration
	// FanOutLimit caps concurrent per-file remote calls in a batch.
	FanOutLimit int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains session-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Vault contains local vault locations.
	Vault ClientVault
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			UserID:      cfg.App.UserID,
			Role:        cfg.App.Role,
			MachineName: cfg.App.MachineName,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Vault: ClientVault{
			RootPath:     cfg.Vault.RootPath,
			DBPath:       cfg.Vault.DBPath,
			IdentityPath: cfg.Vault.IdentityPath,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
			FanOutLimit:     cfg.Workers.FanOutLimit,
		},
	}

	return clientCfg, clientCfg.validate()
}
