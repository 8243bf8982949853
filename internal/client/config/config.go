package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerAddr: base URL of the server's HTTP API.
//   - DatabasePath: SQLite file that keeps the session token between runs.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerAddr     string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8080"
	c.DatabasePath = "useraccounts.db"
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
