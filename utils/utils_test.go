package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info", "json")
	logger.Debug().Msg("hidden")
	logger.Info().Str("path", "/api/v1/visualise").Msg("request")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request", line["message"])
	assert.Equal(t, "/api/v1/visualise", line["path"])
	assert.Equal(t, "info", line["level"])
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug", "console")
	logger.Debug().Msg("starting")
	assert.Contains(t, buf.String(), "starting")
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PRISMAVIZ_TEST_URL=postgres://localhost/test\n"), 0644))
	t.Setenv("PRISMAVIZ_TEST_URL", "")
	os.Unsetenv("PRISMAVIZ_TEST_URL")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "postgres://localhost/test", os.Getenv("PRISMAVIZ_TEST_URL"))

	assert.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
