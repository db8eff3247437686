// Package config provides unified configuration loading for the legal engine.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nyaya-ai/legal-engine/internal/match"
)

// Config holds all configuration for the legal engine.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Engine        EngineConfig        `yaml:"engine"`
	Embedding     EmbeddingConfig     `yaml:"embedding"`
	Cache         CacheConfig         `yaml:"cache"`
	Store         StoreConfig         `yaml:"store"`
	Scraper       ScraperConfig       `yaml:"scraper"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
}

// EngineConfig holds matching engine settings.
type EngineConfig struct {
	Weights match.Weights `yaml:"weights"`
}

// EmbeddingConfig holds the semantic-similarity channel settings.
type EmbeddingConfig struct {
	Enabled   bool          `yaml:"enabled"`
	APIKey    string        `yaml:"api_key"`
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	Dimension int           `yaml:"dimension"`
	Timeout   time.Duration `yaml:"timeout"`
}

// CacheConfig holds answer cache settings.
type CacheConfig struct {
	Driver     string        `yaml:"driver"` // memory or redis
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
	Redis      RedisConfig   `yaml:"redis"`
}

// RedisConfig holds Redis-specific settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// StoreConfig holds the scraped-document store settings.
type StoreConfig struct {
	Driver   string `yaml:"driver"` // sqlite or postgres
	SQLite   string `yaml:"sqlite"` // file path
	Postgres string `yaml:"postgres"`
}

// ScraperConfig holds web scraper settings.
type ScraperConfig struct {
	UserAgent      string        `yaml:"user_agent"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RatePerSecond  float64       `yaml:"rate_per_second"`
	MaxConcurrent  int           `yaml:"max_concurrent"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8000,
			ReadTimeout:      30 * time.Second,
			WriteTimeout:     30 * time.Second,
			IdleTimeout:      120 * time.Second,
			GracefulShutdown: 10 * time.Second,
		},
		Engine: EngineConfig{
			Weights: match.DefaultWeights(),
		},
		Embedding: EmbeddingConfig{
			Enabled:   false,
			BaseURL:   "https://openrouter.ai/api/v1",
			Model:     "google/gemini-embedding-001",
			Dimension: 768,
			Timeout:   5 * time.Second,
		},
		Cache: CacheConfig{
			Driver:     "memory",
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				DB:       0,
				PoolSize: 10,
			},
		},
		Store: StoreConfig{
			Driver: "sqlite",
			SQLite: "/tmp/legal-engine.db",
		},
		Scraper: ScraperConfig{
			UserAgent:      "Mozilla/5.0 (compatible; legal-engine/1.0)",
			RequestTimeout: 10 * time.Second,
			RatePerSecond:  0.5,
			MaxConcurrent:  4,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "json",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Cache.Driver != "memory" && c.Cache.Driver != "redis" {
		return fmt.Errorf("invalid cache driver: %s", c.Cache.Driver)
	}

	if c.Store.Driver != "sqlite" && c.Store.Driver != "postgres" {
		return fmt.Errorf("invalid store driver: %s", c.Store.Driver)
	}

	w := c.Engine.Weights
	if w.ContextualShare < 0 || w.SemanticShare < 0 {
		return fmt.Errorf("hybrid shares must be non-negative")
	}
	if w.ContextualShare+w.SemanticShare == 0 {
		return fmt.Errorf("hybrid shares must not both be zero")
	}
	if w.MinScore < 0 {
		return fmt.Errorf("min_score must be non-negative")
	}

	if c.Embedding.Enabled && c.Embedding.APIKey == "" {
		return fmt.Errorf("embedding enabled but api_key is empty")
	}

	return nil
}

// StoreDriver returns the database/sql driver name for the active store.
func (c *Config) StoreDriver() string {
	if c.Store.Driver == "sqlite" {
		return "sqlite3"
	}
	return "postgres"
}

// StoreDSN returns the document store connection string for the active driver.
func (c *Config) StoreDSN() string {
	if c.Store.Driver == "sqlite" {
		return c.Store.SQLite
	}
	return c.Store.Postgres
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		if strings.HasPrefix(v, "sqlite:") {
			cfg.Store.Driver = "sqlite"
			cfg.Store.SQLite = strings.TrimPrefix(v, "sqlite:")
		} else if strings.HasPrefix(v, "postgres") {
			cfg.Store.Driver = "postgres"
			cfg.Store.Postgres = v
		}
	}

	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Cache.Driver = "redis"
		cfg.Cache.Redis.Addr = strings.TrimPrefix(v, "redis://")
	}

	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.Embedding.APIKey = v
		cfg.Embedding.Enabled = true
	}

	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		cfg.Embedding.Model = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}
