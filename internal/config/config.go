// Package config assembles runtime settings for the notedesk client from
// defaults, an optional JSON file, and command-line flags, in that order of
// precedence.
package config

import "time"

// Config holds runtime settings for the notedesk client.
//
// RequestTimeout of zero means no client-side timeout; requests are bounded
// only by their context.
type Config struct {
	ServerBaseURL  string
	StateDBPath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.StateDBPath = "notedesk.db"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
