// Package config handles configuration for the taskkeeper CLI: defaults, an
// optional JSON file and command-line flags, applied in that order.
package config

import (
	"errors"
	"net/url"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/flagx"
)

// Config holds runtime settings for the taskkeeper CLI.
//
// Fields:
//   - ServerURL: base URL of the taskkeeper HTTP API.
//   - SessionFile: SQLite file that keeps the logged-in session between runs.
//   - RequestTimeout: upper bound for a single API call.
type Config struct {
	ServerURL      string
	SessionFile    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.SessionFile = "taskkeeper-session.db"
	c.RequestTimeout = 5 * time.Second
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("server url must be absolute, e.g. http://host:port")
	}
	if c.SessionFile == "" {
		return errors.New("session file is required")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags in args. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, flagx.ConfigFile(args)); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
