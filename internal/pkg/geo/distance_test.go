package geo_test

import (
	"testing"

	"meddrone/internal/pkg/geo"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		d := geo.HaversineKm(12.9716, 77.5946, 12.9716, 77.5946)
		assert.InDelta(t, 0, d, 0.001)
	})

	t.Run("known city pair", func(t *testing.T) {
		// Bangalore to Chennai is roughly 290 km as the crow flies.
		d := geo.HaversineKm(12.9716, 77.5946, 13.0827, 80.2707)
		assert.InDelta(t, 290, d, 10)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := geo.HaversineKm(10, 20, 30, 40)
		d2 := geo.HaversineKm(30, 40, 10, 20)
		assert.InDelta(t, d1, d2, 1e-9)
	})
}
