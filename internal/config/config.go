// Package config assembles runtime settings: defaults first, then an
// optional .env file, then STOCKPILE_* environment variables. Flag
// overrides are applied by the entrypoint on top of the loaded values.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvDataDir     = "STOCKPILE_DATA_DIR"
	EnvSessionPath = "STOCKPILE_SESSION_PATH"
	EnvIssuer      = "STOCKPILE_ISSUER"
	EnvLowStock    = "STOCKPILE_LOW_STOCK"
)

// Config holds runtime settings for the inventory client.
//
// Fields:
//   - DataDir: directory where per-user inventory databases are created.
//   - SessionPath: path to the local session database (tokens, subject).
//   - Issuer: identity provider base URL for the userinfo fallback; empty disables it.
//   - LowStockThreshold: quantity below which a product is flagged as low stock.
type Config struct {
	DataDir           string
	SessionPath       string
	Issuer            string
	LowStockThreshold int64
}

// LoadDefaults populates Config with defaults
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.SessionPath = "stockpile-session.db"
	c.Issuer = ""
	c.LowStockThreshold = 5
}

// Load builds a Config from defaults, an optional .env file and
// environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	// .env необязателен, его отсутствие не ошибка
	_ = godotenv.Load()

	if err := cfg.parseEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseEnv overlays values from environment variables
func (c *Config) parseEnv() error {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvSessionPath); v != "" {
		c.SessionPath = v
	}
	if v := os.Getenv(EnvIssuer); v != "" {
		c.Issuer = v
	}
	if v := os.Getenv(EnvLowStock); v != "" {
		threshold, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvLowStock, v, err)
		}
		if threshold < 0 {
			return fmt.Errorf("invalid %s value %q: must not be negative", EnvLowStock, v)
		}
		c.LowStockThreshold = threshold
	}
	return nil
}
