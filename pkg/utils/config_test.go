package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfigFile(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "bus-ticketing", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, 10*time.Second, config.App.ShutdownTimeout)
	assert.Equal(t, "5432", config.Database.Port)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.Equal(t, 70.0, config.Booking.PairThreshold)
	assert.Equal(t, 2.00, config.Booking.ServiceFee)
	assert.Equal(t, 3.50, config.Booking.Tax)
	assert.Equal(t, 0.10, config.Booking.CommissionRate)
	assert.Zero(t, config.Booking.SessionTTL)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nDB_NAME=tickets\nBOOKING_PAIR_THRESHOLD=60\nBOOKING_SESSION_TTL_MINUTES=15\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("BOOKING_TAX", "4.25")
	t.Setenv("PORT", "7070")

	config, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", config.App.Port)
	assert.Equal(t, "tickets", config.Database.Name)
	assert.Equal(t, 60.0, config.Booking.PairThreshold)
	assert.Equal(t, 4.25, config.Booking.Tax)
	assert.Equal(t, 15*time.Minute, config.Booking.SessionTTL)
}
