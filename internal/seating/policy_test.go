package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiresPairedBooking(t *testing.T) {
	p := DefaultPolicy()

	t.Run("threshold boundary", func(t *testing.T) {
		assert.True(t, p.RequiresPairedAt(0))
		assert.True(t, p.RequiresPairedAt(69.999))
		assert.True(t, p.RequiresPairedAt(69.99999999))
		assert.False(t, p.RequiresPairedAt(70))
		assert.False(t, p.RequiresPairedAt(70.0001))
		assert.False(t, p.RequiresPairedAt(100))
	})

	t.Run("exactly seventy percent of a map", func(t *testing.T) {
		m, err := Generate(60)
		require.NoError(t, err)

		occupyUntil(t, m, 41)
		assert.True(t, p.RequiresPairedBooking(m))

		occupyUntil(t, m, 42)
		assert.Equal(t, 70.0, m.OccupancyPercentage())
		assert.False(t, p.RequiresPairedBooking(m))
	})

	t.Run("recomputed from live occupancy", func(t *testing.T) {
		m, err := Generate(36)
		require.NoError(t, err)
		assert.True(t, p.RequiresPairedBooking(m))

		occupyUntil(t, m, 27)
		assert.False(t, p.RequiresPairedBooking(m))

		m.release([]int{36, 35})
		assert.True(t, p.RequiresPairedBooking(m))
	})

	t.Run("configurable threshold", func(t *testing.T) {
		p := Policy{PairThreshold: 50}
		assert.True(t, p.RequiresPairedAt(49.9))
		assert.False(t, p.RequiresPairedAt(50))
	})
}

func TestFarePrice(t *testing.T) {
	f := DefaultFare()

	tests := []struct {
		name  string
		base  float64
		seats int
		want  float64
	}{
		{"two seats", 45, 2, 95.50},
		{"single seat", 30, 1, 35.50},
		{"no seats still pays fee and tax", 30, 0, 5.50},
		{"rounds to cents", 10.123, 1, 15.62},
		{"fractional base", 12.5, 3, 43.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Price(tt.base, tt.seats))
			// pure: same inputs, same amount
			assert.Equal(t, f.Price(tt.base, tt.seats), f.Price(tt.base, tt.seats))
		})
	}

	custom := Fare{ServiceFee: 1, Tax: 0}
	assert.Equal(t, 21.0, custom.Price(10, 2))
}
