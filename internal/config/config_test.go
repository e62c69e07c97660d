package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	configContent := `
env: prod
http_server:
  address: ":8080"
  timeout: 10s
  idle_timeout: 30s
registry:
  serials:
    - AAA111
    - BBB222
  sweep_interval: 1m
`
	cfg, err := Load(writeConfig(t, configContent))
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPServer.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 30*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, []string{"AAA111", "BBB222"}, cfg.Registry.Serials)
	assert.Equal(t, time.Minute, cfg.Registry.SweepInterval)
}

func TestLoad_DefaultValues(t *testing.T) {
	// минимальный конфиг, остальное из env-default
	cfg, err := Load(writeConfig(t, "env: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, ":80", cfg.HTTPServer.Address)
	assert.Equal(t, 4*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, []string{"ABC123", "XYZ999", "TESTSERIAL"}, cfg.Registry.Serials)
	assert.Equal(t, time.Duration(0), cfg.Registry.SweepInterval)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("VALID_SERIALS", "ONE,TWO")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTPServer.Address)
	assert.Equal(t, []string{"ONE", "TWO"}, cfg.Registry.Serials)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":7070")

	cfg, err := Load(writeConfig(t, "http_server:\n  address: \":8080\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTPServer.Address)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestRegistry_SerialList(t *testing.T) {
	r := Registry{Serials: []string{" ABC123 ", "", "XYZ999", "   "}}
	assert.Equal(t, []string{"ABC123", "XYZ999"}, r.SerialList())
}

func TestConfig_String(t *testing.T) {
	cfg := &Config{
		Env:        "local",
		HTTPServer: HTTPServer{Address: ":80", Timeout: 4 * time.Second},
		Registry:   Registry{Serials: []string{"ABC123"}},
	}

	s := cfg.String()
	assert.Contains(t, s, "Address: :80")
	assert.Contains(t, s, "Serials: 1 configured")
	assert.NotContains(t, s, "ABC123")
}
