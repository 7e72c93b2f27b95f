package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the BidCars CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the auction API.
//   - RequestTimeout: per-request HTTP timeout.
//   - TokenFile: path of the stored session credential.
//   - CountdownRefreshInterval: how often open views re-render their
//     time-remaining columns.
type Config struct {
	APIBaseURL               string
	RequestTimeout           time.Duration
	TokenFile                string
	CountdownRefreshInterval time.Duration
}

// LoadDefaults populates c with sensible defaults. The credential file
// lands in the user's home directory when one can be resolved.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.CountdownRefreshInterval = time.Minute

	c.TokenFile = ".bidcars_token"
	if home, err := os.UserHomeDir(); err == nil {
		c.TokenFile = filepath.Join(home, ".bidcars_token")
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
