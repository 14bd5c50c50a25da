// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8000".
	Port string `env:"PORT" envDefault:"8000"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"] so Home Assistant dashboards on any host can poll.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	// CacheTTL is how long address lists and schedules are cached.
	// CACHE_TTL takes a Go duration; the legacy CACHE_TTL_SECONDS takes
	// whole seconds and wins when set.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	// DefaultUPRN is offered to the web UI via /api/config.
	DefaultUPRN string `env:"DEFAULT_UPRN" envDefault:"010070035296"`

	Upstream Upstream `envPrefix:"UPSTREAM_"`
}

// Upstream configures the council collections API client.
type Upstream struct {
	BaseURL       string        `env:"BASE_URL" envDefault:"https://apps.cloud9technologies.com/northherts/citizenmobile/mobileapi"`
	Timeout       time.Duration `env:"TIMEOUT" envDefault:"30s"`
	Authorization string        `env:"AUTHORIZATION" envDefault:"Basic Y2xvdWQ5OmlkQmNWNGJvcjU="`
	APIVersion    string        `env:"API_VERSION" envDefault:"2"`
	AppVersion    string        `env:"APP_VERSION" envDefault:"3.0.56"`
	Platform      string        `env:"PLATFORM" envDefault:"android"`
	UserAgent     string        `env:"USER_AGENT" envDefault:"okhttp/4.9.2"`
}

// Load reads an optional .env file from the working directory, then
// configuration from environment variables, and returns a Config.
// Variables already set in the environment take precedence over .env.
// Returns an error listing any variables whose values are unusable.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	var invalid []string

	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			invalid = append(invalid, "CACHE_TTL_SECONDS")
		} else {
			cfg.CacheTTL = time.Duration(secs) * time.Second
		}
	}
	if cfg.CacheTTL <= 0 {
		invalid = append(invalid, "CACHE_TTL")
	}
	if cfg.Upstream.Timeout <= 0 {
		invalid = append(invalid, "UPSTREAM_TIMEOUT")
	}
	if strings.TrimSpace(cfg.Upstream.BaseURL) == "" {
		invalid = append(invalid, "UPSTREAM_BASE_URL")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	cfg.Upstream.BaseURL = strings.TrimRight(cfg.Upstream.BaseURL, "/")
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	return cfg, nil
}

// trimAll trims each entry and drops the empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
