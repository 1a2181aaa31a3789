package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger(dir, "bus-ticketing", false)
	require.NoError(t, err)
	logger.Info("booking created")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "bus-ticketing.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"booking created"`)
}

func TestInitLoggerDebugWithoutFile(t *testing.T) {
	logger, err := InitLogger("", "bus-ticketing", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))
}
