package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/oxide/internal/config"
	"github.com/plus3/oxide/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	cfg := config.Default()
	cfg.LogJSON = true
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	logger, closer, err := logging.New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Msg("hidden")
	logger.Warn().Str("level_name", "one").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Contains(t, buf.String(), `"level_name":"one"`)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(config.Default(), &buf)
	require.NoError(t, err)

	logger.Info().Int("entities", 3).Msg("level loaded")
	assert.Contains(t, buf.String(), "level loaded")
	assert.Contains(t, buf.String(), "entities=")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNewFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "oxide.log")

	var buf bytes.Buffer
	logger, closer, err := logging.New(cfg, &buf)
	require.NoError(t, err)

	logger.Info().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, buf.String())
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"

	_, _, err := logging.New(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
