package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.AuthBaseURL)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.LedgerBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "127.0.0.1:8090", cfg.ListenAddr)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.False(t, cfg.Debug)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".finchat")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
debug = true

[backend]
auth_url = "https://auth.internal"
ledger_url = "https://ledger.internal"
timeout = "3s"

[gemini]
api_key = "test-key"
model = "gemini-2.0-pro"
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://auth.internal", cfg.AuthBaseURL)
	assert.Equal(t, "https://ledger.internal", cfg.LedgerBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-pro", cfg.GeminiModel)
	assert.True(t, cfg.Debug)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FINCHAT_BACKEND_AUTH_URL", "http://localhost:9999")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.AuthBaseURL)
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".finchat")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`= broken`), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestPathIsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".finchat", "config.toml"), path)
}
