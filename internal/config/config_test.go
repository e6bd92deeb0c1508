package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berke-bakar/smart-byte-quiz/internal/trivia"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIURL, EnvSettings, EnvHTTPTimeout, EnvLogLevel, EnvLogFile} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, trivia.DefaultBaseURL, cfg.APIURL)
	assert.Empty(t, cfg.SettingsPath)
	assert.Zero(t, cfg.HTTPTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIURL, "http://localhost:8080/v2/questions")
	t.Setenv(EnvSettings, "/tmp/wt.json")
	t.Setenv(EnvHTTPTimeout, "5s")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFile, "/tmp/wt.log")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		APIURL:       "http://localhost:8080/v2/questions",
		SettingsPath: "/tmp/wt.json",
		HTTPTimeout:  5 * time.Second,
		LogLevel:     "debug",
		LogFile:      "/tmp/wt.log",
	}, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestConfigFromEnvBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHTTPTimeout, "soon")

	_, err := ConfigFromEnv()
	assert.ErrorContains(t, err, EnvHTTPTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"relative url", func(c *Config) { c.APIURL = "/v2/questions" }, EnvAPIURL},
		{"ftp url", func(c *Config) { c.APIURL = "ftp://example.com" }, EnvAPIURL},
		{"negative timeout", func(c *Config) { c.HTTPTimeout = -time.Second }, EnvHTTPTimeout},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, EnvLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is present, even when empty.
	os.Unsetenv(EnvLogFile)
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte(EnvLogFile+"=trivia.log\n"+EnvLogLevel+"=error\n"), 0o600))

	// Variables already in the environment take precedence.
	t.Setenv(EnvLogLevel, "info")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "trivia.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	_, err := Load()
	assert.NoError(t, err)
}
