// Package config reads service and smoke-check settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultSmokeTimeout    = 10 * time.Second
)

// Config holds runtime settings. Zero values are never returned for fields with defaults.
type Config struct {
	Port            string
	ShutdownTimeout time.Duration
	SmokeBaseURL    string
	SmokeTimeout    time.Duration
}

// Load reads files (default ".env") into the environment without overriding variables that
// are already set, then builds a Config. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		Port:         envOr("PORT", defaultPort),
		SmokeBaseURL: os.Getenv("SMOKE_BASE_URL"),
	}
	var err error
	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return Config{}, err
	}
	if cfg.SmokeTimeout, err = durationEnv("SMOKE_TIMEOUT", defaultSmokeTimeout); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse %s: duration must be positive, got %s", key, raw)
	}
	return d, nil
}
