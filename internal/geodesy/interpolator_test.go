package geodesy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planarCloud samples v = 2x + 3y + 1 on a regular grid; linear interpolation
// over any triangulation reproduces a plane exactly.
func planarCloud() []PointValue {
	var points []PointValue
	for x := 0; x <= 4; x++ {
		for y := 0; y <= 4; y++ {
			points = append(points, PointValue{
				Lon:   float64(x),
				Lat:   float64(y),
				Value: 2*float64(x) + 3*float64(y) + 1,
			})
		}
	}
	return points
}

func TestInterpolatorLinear(t *testing.T) {
	ip, err := NewInterpolator(planarCloud())
	require.NoError(t, err)
	assert.Equal(t, 25, ip.Count())

	t.Run("reproduces plane inside hull", func(t *testing.T) {
		queries := [][2]float64{{1.5, 2.5}, {0.1, 0.1}, {3.9, 0.2}, {2.0, 2.0}}
		for _, q := range queries {
			want := 2*q[0] + 3*q[1] + 1
			got := ip.Linear(q[0], q[1])
			assert.InDelta(t, want, got, 1e-9, "query (%g, %g)", q[0], q[1])
		}
	})

	t.Run("NaN outside hull", func(t *testing.T) {
		assert.True(t, math.IsNaN(ip.Linear(10, 10)))
		assert.True(t, math.IsNaN(ip.Linear(-1, 2)))
	})

	t.Run("grid vertices are exact", func(t *testing.T) {
		assert.InDelta(t, 1.0, ip.At(0, 0), 1e-9)
		assert.InDelta(t, 2*4+3*4+1, ip.At(4, 4), 1e-9)
	})
}

func TestInterpolatorNearestFallback(t *testing.T) {
	ip, err := NewInterpolator(planarCloud())
	require.NoError(t, err)

	// (10, 10) is outside the hull; the nearest cloud point is (4, 4).
	want := 2*4.0 + 3*4.0 + 1
	assert.InDelta(t, want, ip.At(10, 10), 1e-9)
	assert.InDelta(t, want, ip.Nearest(10, 10), 1e-9)

	// (-3, 0) falls back to (0, 0).
	assert.InDelta(t, 1.0, ip.At(-3, 0), 1e-9)
}

func TestInterpolatorDegenerateClouds(t *testing.T) {
	t.Run("empty cloud is an error", func(t *testing.T) {
		_, err := NewInterpolator(nil)
		assert.Error(t, err)
	})

	t.Run("single point serves nearest everywhere", func(t *testing.T) {
		ip, err := NewInterpolator([]PointValue{{Lon: 1, Lat: 1, Value: 7}})
		require.NoError(t, err)
		assert.InDelta(t, 7.0, ip.At(100, -50), 1e-9)
		assert.True(t, math.IsNaN(ip.Linear(1, 1)))
	})

	t.Run("collinear points fall back to nearest", func(t *testing.T) {
		ip, err := NewInterpolator([]PointValue{
			{Lon: 0, Lat: 0, Value: 0},
			{Lon: 1, Lat: 0, Value: 1},
			{Lon: 2, Lat: 0, Value: 2},
		})
		require.NoError(t, err)
		assert.InDelta(t, 2.0, ip.At(2.1, 0.1), 1e-9)
	})
}
