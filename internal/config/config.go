// Package config loads runtime configuration from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server and CLI need to run.
type Config struct {
	// Host and Port form the HTTP listen address.
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// Debug enables verbose logging and gin debug mode.
	Debug bool `mapstructure:"debug"`

	// AllowedOrigins is the CORS allow-list. Empty means allow all.
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// DataDir is where the file session store keeps guest sessions.
	DataDir string `mapstructure:"data_dir"`

	// DatabaseURL, when set, switches session and share persistence to
	// Postgres.
	DatabaseURL string `mapstructure:"database_url"`

	// ScorerURL is the remote pulse-check scoring endpoint. Empty means
	// local fallback scoring only.
	ScorerURL     string        `mapstructure:"scorer_url"`
	ScorerTimeout time.Duration `mapstructure:"scorer_timeout"`

	// CatalogPath overrides the built-in question catalog with a YAML file.
	CatalogPath string `mapstructure:"catalog_path"`

	// ShareTTL is how long shared result links stay resolvable.
	ShareTTL time.Duration `mapstructure:"share_ttl"`

	// MetricsEnabled exposes /metrics for Prometheus scraping.
	MetricsEnabled bool `mapstructure:"metrics_enabled"`
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from lifepath-config.yaml in the working
// directory or $HOME, overlaid with LIFEPATH_* environment variables. A
// missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("lifepath-config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("LIFEPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers a default for every Config key. AutomaticEnv only
// surfaces an environment variable through Unmarshal when the key is
// already known to viper, so even the keys that default to empty must be
// registered here.
func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8090)
	v.SetDefault("debug", false)
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("data_dir", "~/.lifepath/sessions")
	v.SetDefault("database_url", "")
	v.SetDefault("scorer_url", "")
	v.SetDefault("scorer_timeout", 15*time.Second)
	v.SetDefault("catalog_path", "")
	v.SetDefault("share_ttl", 30*24*time.Hour)
	v.SetDefault("metrics_enabled", true)
}

// Validate rejects configurations that cannot produce a working server.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.ScorerTimeout < 0 {
		return fmt.Errorf("scorer_timeout must not be negative")
	}
	if c.ShareTTL < 0 {
		return fmt.Errorf("share_ttl must not be negative")
	}
	return nil
}
