package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.False(t, cfg.Embedding.Enabled)
	assert.Equal(t, 0.7, cfg.Engine.Weights.ContextualShare)
	assert.Equal(t, 0.3, cfg.Engine.Weights.SemanticShare)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
cache:
  driver: redis
store:
  driver: postgres
  postgres: postgres://localhost/legal
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, "postgres", cfg.StoreDriver())
	assert.Equal(t, "postgres://localhost/legal", cfg.StoreDSN())

	// Values absent from the file keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_URL", "sqlite:/tmp/test.db")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite3", cfg.StoreDriver())
	assert.Equal(t, "/tmp/test.db", cfg.StoreDSN())
	assert.True(t, cfg.Embedding.Enabled)
	assert.Equal(t, "sk-test", cfg.Embedding.APIKey)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestLoad_RedisURLOverride(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://cache.internal:6379")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, "cache.internal:6379", cfg.Cache.Redis.Addr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "bad cache driver",
			mutate:  func(c *Config) { c.Cache.Driver = "memcached" },
			wantErr: "invalid cache driver",
		},
		{
			name:    "bad store driver",
			mutate:  func(c *Config) { c.Store.Driver = "mysql" },
			wantErr: "invalid store driver",
		},
		{
			name: "negative share",
			mutate: func(c *Config) {
				c.Engine.Weights.ContextualShare = -0.1
			},
			wantErr: "non-negative",
		},
		{
			name: "zero shares",
			mutate: func(c *Config) {
				c.Engine.Weights.ContextualShare = 0
				c.Engine.Weights.SemanticShare = 0
			},
			wantErr: "must not both be zero",
		},
		{
			name: "embedding without key",
			mutate: func(c *Config) {
				c.Embedding.Enabled = true
				c.Embedding.APIKey = ""
			},
			wantErr: "api_key is empty",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}
