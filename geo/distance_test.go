package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMilesSamePoint(t *testing.T) {
	points := [][2]float64{
		{39.9526, -75.1652},
		{0, 0},
		{-33.8688, 151.2093},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, DistanceMiles(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceMilesSymmetry(t *testing.T) {
	d1 := DistanceMiles(39.9526, -75.1652, 39.9496, -75.1503)
	d2 := DistanceMiles(39.9496, -75.1503, 39.9526, -75.1652)
	assert.Equal(t, d1, d2)
}

func TestDistanceMilesKnownFixture(t *testing.T) {
	// City Hall to Washington Square, roughly 0.83 miles.
	d := DistanceMiles(39.9526, -75.1652, 39.9496, -75.1503)
	assert.InDelta(t, 0.83, d, 0.05)
}

func TestDistanceMilesNaNPropagates(t *testing.T) {
	d := DistanceMiles(math.NaN(), -75.1652, 39.9496, -75.1503)
	assert.True(t, math.IsNaN(d))
}
