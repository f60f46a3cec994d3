package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1", c.Host)
	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, DriverMongo, c.DatabaseDriver)
	assert.Equal(t, "mongodb://localhost:27017", c.DatabaseDSN)
	assert.Equal(t, "taskkeeper", c.DatabaseName)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, 10, c.BcryptCost)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.NoError(t, c.Validate())
}

func TestAddr(t *testing.T) {
	c := Config{Host: "0.0.0.0", Port: 3000}
	assert.Equal(t, "0.0.0.0:3000", c.Addr())

	c = Config{Port: 3000}
	assert.Equal(t, ":3000", c.Addr())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "unknown driver", mutate: func(c *Config) { c.DatabaseDriver = "redis" }, wantErr: `unknown database driver "redis"`},
		{name: "missing dsn", mutate: func(c *Config) { c.DatabaseDSN = "" }, wantErr: "database dsn is required"},
		{name: "memory needs no dsn", mutate: func(c *Config) { c.DatabaseDriver = DriverMemory; c.DatabaseDSN = "" }},
		{name: "missing secret", mutate: func(c *Config) { c.SecretKey = "" }, wantErr: "jwt secret is required"},
		{name: "bad port", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "invalid port 70000"},
		{name: "zero validity", mutate: func(c *Config) { c.TokenValidityDuration = 0 }, wantErr: "token validity must be positive"},
		{name: "cost too low", mutate: func(c *Config) { c.BcryptCost = 2 }, wantErr: "bcrypt cost 2 out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"port":            9000,
		"database_driver": "postgres",
		"database_dsn":    "postgres://json",
		"secret_key":      "from-json",
	})

	t.Setenv("CONFIG", "")
	t.Setenv("PORT", "9100")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("TOKEN_VALIDITY", "2h")

	cfg, err := LoadConfig([]string{"-c", path, "-s", "from-flag", "-test.v"})
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver, "json overrides defaults")
	assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
	assert.Equal(t, 9100, cfg.Port, "env overrides json")
	assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, "from-flag", cfg.SecretKey, "flags override env")
}

func TestLoadConfig_InvalidResult(t *testing.T) {
	t.Setenv("CONFIG", "")
	t.Setenv("DATABASE_DRIVER", "cassandra")

	_, err := LoadConfig(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadConfig_BadEnvValue(t *testing.T) {
	t.Setenv("CONFIG", "")
	t.Setenv("PORT", "eighty")

	_, err := LoadConfig(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
