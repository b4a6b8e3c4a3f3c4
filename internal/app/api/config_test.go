package api

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const baseYAML = `app:
  name: storefront-api
  http_addr: ":8080"
http:
  read_timeout: 10s
postgres:
  dsn: ""
idempotency:
  ttl: 24h
seed:
  sample_orders: true
`

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoadConfig_Base(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"base.yaml": baseYAML})

	cfg, err := LoadConfig(dir, "")
	require.NoError(t, err)
	require.Equal(t, "storefront-api", cfg.App.Name)
	require.Equal(t, ":8080", cfg.App.HTTPAddr)
	require.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, 24*time.Hour, cfg.Idempotency.TTL)
	require.True(t, cfg.Seed.SampleOrders)
}

func TestLoadConfig_EnvironmentOverlay(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml": baseYAML,
		"prod.yaml": "app:\n  http_addr: \":9090\"\nseed:\n  sample_orders: false\n",
	})

	cfg, err := LoadConfig(dir, "prod")
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.App.HTTPAddr)
	require.False(t, cfg.Seed.SampleOrders)
	require.Equal(t, "storefront-api", cfg.App.Name)
}

func TestLoadConfig_MissingOverlayIsOptional(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"base.yaml": baseYAML})

	_, err := LoadConfig(dir, "staging")
	require.NoError(t, err)
}

func TestLoadConfig_EnvVarsWin(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"base.yaml": baseYAML})
	t.Setenv("STOREFRONT_POSTGRES__DSN", "postgres://env-wins")
	t.Setenv("STOREFRONT_APP__HTTP_ADDR", ":7070")

	cfg, err := LoadConfig(dir, "")
	require.NoError(t, err)
	require.Equal(t, "postgres://env-wins", cfg.Postgres.DSN)
	require.Equal(t, ":7070", cfg.App.HTTPAddr)
}

func TestLoadConfig_MissingBaseFails(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), "")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	var cfg Config
	require.Error(t, cfg.Validate())

	cfg.App.HTTPAddr = ":8080"
	require.NoError(t, cfg.Validate())

	cfg.Idempotency.TTL = -time.Second
	require.Error(t, cfg.Validate())
}
