package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wizardquiz/internal/config"
)

func TestNew_FallbackWriterAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(&config.Config{LogLevel: "warn"}, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=v")
}

func TestNew_NilFallbackDiscards(t *testing.T) {
	logger, closeFn, err := New(&config.Config{}, nil)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closeFn())
}

func TestNew_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quiz.log")
	var buf bytes.Buffer

	logger, closeFn, err := New(&config.Config{LogLevel: "debug", LogFile: path}, &buf)
	require.NoError(t, err)
	logger.Debug("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to file\"")
	assert.Empty(t, buf.String(), "file output replaces the fallback")
}
