package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[store]
base_url = "https://store.example.com"
anon_key = "anon"
service_role_key = "service"
timeout = 7

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "appointments-test"

[janitor]
schedule = "0 3 * * *"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "https://store.example.com", cfg.Store.BaseURL)
	assert.Equal(t, "anon", cfg.Store.AnonKey)
	assert.Equal(t, "service", cfg.Store.ServiceRoleKey)
	assert.Equal(t, 7, cfg.Store.Timeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "0 3 * * *", cfg.Janitor.Schedule)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[store]
base_url = "https://store.example.com"
anon_key = "anon"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10, cfg.Store.Timeout)
	assert.Equal(t, "logs/app.log", cfg.Logs.File)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Empty(t, cfg.Janitor.Schedule)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("STORE_URL", "https://env.example.com")
	t.Setenv("STORE_ANON_KEY", "env-anon")
	t.Setenv("STORE_SERVICE_ROLE_KEY", "env-service")

	path := writeConfig(t, `
[store]
base_url = "https://file.example.com"
anon_key = "file-anon"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.Store.BaseURL)
	assert.Equal(t, "env-anon", cfg.Store.AnonKey)
	assert.Equal(t, "env-service", cfg.Store.ServiceRoleKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_RequiresStoreURL(t *testing.T) {
	path := writeConfig(t, `
[store]
anon_key = "anon"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoad_RequiresAKey(t *testing.T) {
	path := writeConfig(t, `
[store]
base_url = "https://store.example.com"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrValidation)
}
