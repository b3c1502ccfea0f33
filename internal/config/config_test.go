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
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 5, cfg.Share.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Share.LookupDelay)
	assert.Zero(t, cfg.Share.TTL)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  base_url: https://paste.example.com/
store:
  driver: sqlite
  database:
    path: /tmp/shares.db
share:
  lookup_delay: 250ms
  ttl: 24h
log:
  level: debug
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "/tmp/shares.db", cfg.Store.Database.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Share.LookupDelay)
	assert.Equal(t, 24*time.Hour, cfg.Share.TTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://paste.example.com/shared/AB12CD", cfg.ShareURL("AB12CD"))
}

func TestLoadFile_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
store:
  driver: sqlite
`)
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("SHARE_LOOKUP_DELAY", "1s")
	t.Setenv("RATE_LIMIT_DISABLED", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "cache:6380", cfg.Store.Redis.Address)
	assert.Equal(t, time.Second, cfg.Share.LookupDelay)
	assert.True(t, cfg.RateLimit.Disabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile_UnknownDriver(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "store:\n  driver: mongodb\n"))
	assert.ErrorContains(t, err, "mongodb")
}

func TestValidate_MaxAttempts(t *testing.T) {
	cfg := Default()
	cfg.Share.MaxAttempts = -1
	assert.ErrorContains(t, cfg.Validate(), "max_attempts")

	cfg.Share.MaxAttempts = 1
	assert.NoError(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg := Default()
	cfg.Store.Database.User = "codetext"
	cfg.Store.Database.Password = "secret"
	cfg.Store.Database.DBName = "shares"

	assert.Equal(t, "host=localhost port=5432 user=codetext password=secret dbname=shares sslmode=disable", cfg.GetDSN())

	cfg.Store.Database.URL = "postgres://u:p@db/shares"
	assert.Equal(t, "postgres://u:p@db/shares", cfg.GetDSN())
}
