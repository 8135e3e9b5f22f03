package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/photo-tagger/internal/config"
)

// unsetEnv removes key for the duration of the test. t.Setenv registers the
// restore; the Unsetenv makes the variable truly absent rather than empty.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// TestLoad_defaults verifies that every variable falls back to its default
// when nothing is set.
func TestLoad_defaults(t *testing.T) {
	unsetEnv(t, "PORT", "LOG_LEVEL", "CORS_ORIGINS", "EXPORT_ROOT", "MAX_BODY_BYTES")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Empty(t, cfg.ExportRoot)
	require.EqualValues(t, 1<<20, cfg.MaxBodyBytes)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com,")
	t.Setenv("EXPORT_ROOT", "/srv/exports")
	t.Setenv("MAX_BODY_BYTES", "4096")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "/srv/exports", cfg.ExportRoot)
	require.EqualValues(t, 4096, cfg.MaxBodyBytes)
}

// TestLoad_malformedBodyLimit verifies that a non-numeric MAX_BODY_BYTES is
// rejected and that the error carries the offending value.
func TestLoad_malformedBodyLimit(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "one megabyte")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "config.Load")
	require.ErrorContains(t, err, `"one megabyte"`)
}

// TestLoad_nonPositiveBodyLimit verifies that a zero limit is refused.
func TestLoad_nonPositiveBodyLimit(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "0")

	_, err := config.Load()

	require.ErrorContains(t, err, "MAX_BODY_BYTES")
}
