// Package config reads the game's runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/berke-bakar/smart-byte-quiz/internal/trivia"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIURL      = "WAIT_TRIVIA_API_URL"
	EnvSettings    = "WAIT_TRIVIA_SETTINGS"
	EnvHTTPTimeout = "WAIT_TRIVIA_HTTP_TIMEOUT"
	EnvLogLevel    = "WAIT_TRIVIA_LOG_LEVEL"
	EnvLogFile     = "WAIT_TRIVIA_LOG_FILE"
)

// Config holds everything the game needs before the first screen.
type Config struct {
	// APIURL is the trivia service questions endpoint.
	APIURL string

	// SettingsPath overrides the settings file location. Empty means the
	// per-OS config directory.
	SettingsPath string

	// HTTPTimeout bounds one question fetch. Zero means no timeout.
	HTTPTimeout time.Duration

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFile receives diagnostics. Empty means stderr.
	LogFile string
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() Config {
	return Config{
		APIURL:   trivia.DefaultBaseURL,
		LogLevel: "warn",
	}
}

// Load reads an optional .env file from the working directory and then
// builds a Config from the environment. Variables already set in the
// environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ConfigFromEnv()
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if u := os.Getenv(EnvAPIURL); u != "" {
		cfg.APIURL = u
	}
	if p := os.Getenv(EnvSettings); p != "" {
		cfg.SettingsPath = p
	}
	if t := os.Getenv(EnvHTTPTimeout); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q is not a valid duration: %w", EnvHTTPTimeout, t, err)
		}
		cfg.HTTPTimeout = d
	}
	if l := os.Getenv(EnvLogLevel); l != "" {
		cfg.LogLevel = strings.ToLower(l)
	}
	if f := os.Getenv(EnvLogFile); f != "" {
		cfg.LogFile = f
	}

	return cfg, cfg.Validate()
}

// Validate checks the values ConfigFromEnv cannot check while parsing.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("%s: %w", EnvAPIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", EnvAPIURL, c.APIURL)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%s must not be negative", EnvHTTPTimeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%s: unknown log level %q", EnvLogLevel, c.LogLevel)
	}
	return level, nil
}
