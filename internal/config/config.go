// Package config provides the service configuration for beamcalc serve.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvAddr        = "BEAMCALC_ADDR"
	EnvRate        = "BEAMCALC_RATE"
	EnvBurst       = "BEAMCALC_BURST"
	EnvLogLevel    = "BEAMCALC_LOG_LEVEL"
	EnvCORSOrigins = "BEAMCALC_CORS_ORIGINS"
)

// Config represents the service configuration.
type Config struct {
	Addr     string
	LogLevel string

	// Per client IP
	Rate  float64 // requests per second
	Burst int

	CORSOrigins []string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxStations     int
	MaxBodyBytes    int64
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Addr:            "127.0.0.1:8080",
		LogLevel:        "info",
		Rate:            5,
		Burst:           10,
		CORSOrigins:     []string{"http://localhost:*", "http://127.0.0.1:*"},
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxStations:     10000,
		MaxBodyBytes:    1 << 20,
	}
}

// Load reads the given .env files (".env" when none are given) and applies
// the BEAMCALC_* variables on top of the defaults. Missing .env files are
// not an error; variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a configuration from a variable lookup function
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvRate); ok && v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return nil, fmt.Errorf("%s: invalid rate %q", EnvRate, v)
		}
		cfg.Rate = r
	}
	if v, ok := lookup(EnvBurst); ok && v != "" {
		b, err := strconv.Atoi(v)
		if err != nil || b < 1 {
			return nil, fmt.Errorf("%s: invalid burst %q", EnvBurst, v)
		}
		cfg.Burst = b
	}
	if v, ok := lookup(EnvCORSOrigins); ok && v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSOrigins = origins
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%s: unknown log level %q", EnvLogLevel, c.LogLevel)
	}
	return nil
}
