package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"user_id": "alice", "role": "admin", "machine_name": "Workstation"},
		"vault": {"root_path": "/vault", "db_path": "/state/cache.db", "identity_path": "/state/machine.json"},
		"adapter": {"address": "https://pdm.local", "request_timeout": "45s"},
		"workers": {"refresh_interval": "10m", "fan_out_limit": 16}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.App.UserID)
	assert.Equal(t, "admin", cfg.App.Role)
	assert.Equal(t, "Workstation", cfg.App.MachineName)
	assert.Equal(t, "/vault", cfg.Vault.RootPath)
	assert.Equal(t, "/state/cache.db", cfg.Vault.DBPath)
	assert.Equal(t, "/state/machine.json", cfg.Vault.IdentityPath)
	assert.Equal(t, "https://pdm.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, 16, cfg.Workers.FanOutLimit)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"adapter": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"app": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestClientConfigValidate_Defaults(t *testing.T) {
	cfg := &ClientConfig{
		App:     ClientApp{UserID: "alice", Role: "editor"},
		Adapter: ClientAdapter{HTTPAddress: "https://pdm.local"},
		Vault:   ClientVault{RootPath: "/vault", DBPath: "/state/cache.db"},
	}

	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
	assert.Equal(t, DefaultFanOutLimit, cfg.Workers.FanOutLimit)
}

func TestClientConfigValidate_MissingGroups(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name:    "missing vault root",
			cfg:     ClientConfig{Vault: ClientVault{DBPath: "x"}, Adapter: ClientAdapter{HTTPAddress: "y"}, App: ClientApp{UserID: "u", Role: "editor"}},
			wantErr: ErrInvalidVaultConfigs,
		},
		{
			name:    "missing db path",
			cfg:     ClientConfig{Vault: ClientVault{RootPath: "/v"}, Adapter: ClientAdapter{HTTPAddress: "y"}, App: ClientApp{UserID: "u", Role: "editor"}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing server address",
			cfg:     ClientConfig{Vault: ClientVault{RootPath: "/v", DBPath: "x"}, App: ClientApp{UserID: "u", Role: "editor"}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "missing user",
			cfg:     ClientConfig{Vault: ClientVault{RootPath: "/v", DBPath: "x"}, Adapter: ClientAdapter{HTTPAddress: "y"}, App: ClientApp{Role: "editor"}},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
