// Package config handles configuration for the server component: defaults,
// an optional JSON file, environment variables and command-line flags, applied
// in that order so later sources win.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/flagx"
)

// Supported values for Config.DatabaseDriver.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds runtime settings for the taskkeeper server. It is built once
// at startup and passed by pointer to every component that needs it.
//
// Fields:
//   - Host / Port: HTTP listen address.
//   - DatabaseDriver: storage backend, one of mongo, postgres or memory.
//   - DatabaseDSN: connection string for the selected backend.
//   - DatabaseName: MongoDB database name (ignored by other drivers).
//   - SecretKey: HMAC secret for signing JWTs (HS256). Rotating it invalidates
//     every outstanding token.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - BcryptCost: adaptive cost factor for password hashing.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	Host                  string        `env:"HOST"`
	Port                  int           `env:"PORT"`
	DatabaseDriver        string        `env:"DATABASE_DRIVER"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	DatabaseName          string        `env:"DATABASE_NAME"`
	SecretKey             string        `env:"JWT_SECRET"`
	TokenValidityDuration time.Duration `env:"TOKEN_VALIDITY"`
	BcryptCost            int           `env:"BCRYPT_COST"`
	LogLevel              string        `env:"LOG_LEVEL"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.Host = "127.0.0.1"
	c.Port = 8080
	c.DatabaseDriver = DriverMongo
	c.DatabaseDSN = "mongodb://localhost:27017"
	c.DatabaseName = "taskkeeper"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.BcryptCost = 10
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
}

// Addr returns the host:port pair the HTTP server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate reports settings that would make the server unusable.
func (c *Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown database driver %q", c.DatabaseDriver))
	}
	if c.DatabaseDriver != DriverMemory && c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database dsn is required"))
	}
	if c.SecretKey == "" {
		errs = append(errs, errors.New("jwt secret is required"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	if c.TokenValidityDuration <= 0 {
		errs = append(errs, errors.New("token validity must be positive"))
	}
	// bcrypt.MinCost .. bcrypt.MaxCost
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("bcrypt cost %d out of range", c.BcryptCost))
	}

	return errors.Join(errs...)
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config (or CONFIG), then the environment, then flags in args
// (usually os.Args[1:]). The result is validated before it is returned.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, flagx.ConfigFile(args)); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
