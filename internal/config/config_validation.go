// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied by validate for optional settings.
const (
	DefaultRequestTimeout  = 15 * time.Second
	DefaultRefreshInterval = 5 * time.Minute
	DefaultFanOutLimit     = 8
)

func (cfg *ClientConfig) validate() error {
	if cfg.Vault.RootPath == "" {
		return ErrInvalidVaultConfigs
	}

	if cfg.Vault.DBPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.App.UserID == "" || cfg.App.Role == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.Workers.FanOutLimit <= 0 {
		cfg.Workers.FanOutLimit = DefaultFanOutLimit
	}

	return nil
}
