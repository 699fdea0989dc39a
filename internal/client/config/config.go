// Package config handles configuration for the CLI client, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the journal CLI.
//
// Fields:
//   - ServerURL: base URL of the backend HTTP API.
//   - CacheFile: path of the local SQLite cache.
//   - RequestTimeout: per-request timeout for remote calls.
type Config struct {
	ServerURL      string
	CacheFile      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.CacheFile = "ourstory.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
