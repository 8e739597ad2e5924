// Package config loads server settings from an optional .env file, an
// optional YAML file named by CONFIG_FILE, and the environment, in that
// order of increasing precedence.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the server settings.
type Config struct {
	Port           int           `yaml:"PORT"`
	DBDriver       string        `yaml:"DB_DRIVER"`
	DBPath         string        `yaml:"DB_PATH"`
	DatabaseURL    string        `yaml:"DATABASE_URL"`
	TokenSecret    string        `yaml:"TOKEN_SECRET"`
	TokenTTL       time.Duration `yaml:"TOKEN_TTL"`
	LogLevel       string        `yaml:"LOG_LEVEL"`
	LogFormat      string        `yaml:"LOG_FORMAT"`
	MetricsEnabled bool          `yaml:"METRICS_ENABLED"`
	StaticPath     string        `yaml:"STATIC_PATH"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:           8080,
		DBDriver:       DriverSQLite,
		DBPath:         "./data/bills.db",
		TokenTTL:       720 * time.Hour,
		LogLevel:       "info",
		LogFormat:      "text",
		MetricsEnabled: true,
	}
}

// Load reads .env, then CONFIG_FILE, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if cfg.TokenSecret == "" {
		secret, err := devSecret()
		if err != nil {
			return Config{}, err
		}
		cfg.TokenSecret = secret
		slog.Warn("TOKEN_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.DBDriver = strings.ToLower(v)
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		c.TokenSecret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		c.TokenTTL = ttl
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid METRICS_ENABLED %q: %w", v, err)
		}
		c.MetricsEnabled = enabled
	}
	if v := os.Getenv("STATIC_PATH"); v != "" {
		c.StaticPath = v
	}
	return nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	return nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func devSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
