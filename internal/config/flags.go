package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL
//	-vault vault root path
//	-d per-vault cache database path
//	-identity machine-identity file path
//	-user acting user id
//	-role actor role (viewer/editor/admin)
//	-machine-name display name for this machine
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval background refresh interval (e.g., "5m")
//	-fan-out batch remote-call fan-out limit
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var vaultRoot string
	var dbPath string
	var identityPath string
	var userID string
	var role string
	var machineName string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var fanOutLimit int

	flag.StringVar(&serverAddress, "a", "", "Vault server base URL")
	flag.StringVar(&vaultRoot, "vault", "", "Vault root path")
	flag.StringVar(&dbPath, "d", "", "Per-vault cache database path")
	flag.StringVar(&identityPath, "identity", "", "Machine-identity file path")
	flag.StringVar(&userID, "user", "", "Acting user id")
	flag.StringVar(&role, "role", "", "Actor role (viewer/editor/admin)")
	flag.StringVar(&machineName, "machine-name", "", "Display name for this machine")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 5m)")
	flag.IntVar(&fanOutLimit, "fan-out", 0, "Batch remote-call fan-out limit")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			UserID:      userID,
			Role:        role,
			MachineName: machineName,
		},
		Vault: Vault{
			RootPath:     vaultRoot,
			DBPath:       dbPath,
			IdentityPath: identityPath,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
			FanOutLimit:     fanOutLimit,
		},
		JSONFilePath: jsonConfigPath,
	}
}
