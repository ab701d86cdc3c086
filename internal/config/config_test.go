package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	// Point $HOME and the working directory away from any real config file.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8090", cfg.Addr())
	assert.False(t, cfg.Debug)
	assert.Equal(t, 15*time.Second, cfg.ScorerTimeout)
	assert.Equal(t, 30*24*time.Hour, cfg.ShareTTL)
	assert.True(t, cfg.MetricsEnabled)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("LIFEPATH_PORT", "9999")
	t.Setenv("LIFEPATH_DEBUG", "true")
	t.Setenv("LIFEPATH_SCORER_URL", "http://scorer.internal/score")
	t.Setenv("LIFEPATH_DATABASE_URL", "postgres://app@db/lifepath")
	t.Setenv("LIFEPATH_CATALOG_PATH", "/etc/lifepath/catalog.yaml")
	t.Setenv("LIFEPATH_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "http://scorer.internal/score", cfg.ScorerURL)
	assert.Equal(t, "postgres://app@db/lifepath", cfg.DatabaseURL)
	assert.Equal(t, "/etc/lifepath/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)

	writeFile(t, dir+"/lifepath-config.yaml", `
host: 127.0.0.1
port: 8181
allowed_origins:
  - https://app.example.com
share_ttl: 24h
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8181", cfg.Addr())
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.ShareTTL)
}

func TestValidate(t *testing.T) {
	cfg := Config{Port: 8090}
	assert.NoError(t, cfg.Validate())

	cfg.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Port = 8090
	cfg.ScorerTimeout = -time.Second
	assert.Error(t, cfg.Validate())
}
