package geodesy

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadXYZ(t *testing.T) {
	t.Run("parses valid records", func(t *testing.T) {
		input := "121.5 24.0 -12.345\n122.0 23.5 3.2\n"
		points, err := ReadXYZ(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, PointValue{Lon: 121.5, Lat: 24.0, Value: -12.345}, points[0])
		assert.Equal(t, PointValue{Lon: 122.0, Lat: 23.5, Value: 3.2}, points[1])
	})

	t.Run("skips malformed lines", func(t *testing.T) {
		input := strings.Join([]string{
			"# comment line",
			"121.5 24.0",
			"abc def ghi",
			"121.5 24.0 1.0 extra fields are fine",
			"",
			"122.0 23.0 2.0",
		}, "\n")
		points, err := ReadXYZ(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, 1.0, points[0].Value)
		assert.Equal(t, 2.0, points[1].Value)
	})

	t.Run("empty input yields no points", func(t *testing.T) {
		points, err := ReadXYZ(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, points)
	})
}

func TestWriteXYZ(t *testing.T) {
	t.Run("writes four fixed-width columns", func(t *testing.T) {
		points := []PointValue{{Lon: 121.5, Lat: 24.0, Value: -12.345}}
		var buf bytes.Buffer
		err := WriteXYZ(&buf, points, []float64{-13.145})
		require.NoError(t, err)
		assert.Equal(t, "121.5000000 24.0000000  -12.345  -13.145\n", buf.String())
	})

	t.Run("renders NaN for non-finite values", func(t *testing.T) {
		points := []PointValue{{Lon: 119.0, Lat: 22.0, Value: 5.0}}
		var buf bytes.Buffer
		err := WriteXYZ(&buf, points, []float64{math.NaN()})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "      NaN")
	})

	t.Run("rejects mismatched lengths", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteXYZ(&buf, []PointValue{{}}, nil)
		assert.Error(t, err)
	})
}

func TestRegionContains(t *testing.T) {
	assert.True(t, TaiwanRegion.Contains(121.5, 24.0))
	assert.True(t, TaiwanRegion.Contains(118, 21), "boundary is inside")
	assert.True(t, TaiwanRegion.Contains(125, 27), "boundary is inside")
	assert.False(t, TaiwanRegion.Contains(117.999, 24.0))
	assert.False(t, TaiwanRegion.Contains(121.5, 27.001))
}

func TestSplitRegion(t *testing.T) {
	points := []PointValue{
		{Lon: 121.5, Lat: 24.0, Value: 1},
		{Lon: 130.0, Lat: 24.0, Value: 2},
		{Lon: 122.0, Lat: 23.0, Value: 3},
		{Lon: 121.0, Lat: 40.0, Value: 4},
	}
	inside, outsideIdx := SplitRegion(points, TaiwanRegion)
	require.Len(t, inside, 2)
	assert.Equal(t, 1.0, inside[0].Value)
	assert.Equal(t, 3.0, inside[1].Value)
	assert.Equal(t, []int{1, 3}, outsideIdx)
}

func TestParseSurface(t *testing.T) {
	cases := map[string]Surface{
		"MSS":       SurfaceMSS,
		"hat":       SurfaceHAT,
		"Lat":       SurfaceLAT,
		"islw":      SurfaceISLW,
		"Geoid":     SurfaceGeoid,
		"EL":        SurfaceEllipsoid,
		"ellipsoid": SurfaceEllipsoid,
	}
	for code, want := range cases {
		got, err := ParseSurface(code)
		require.NoError(t, err, code)
		assert.Equal(t, want, got, code)
	}

	_, err := ParseSurface("WGS84")
	assert.Error(t, err)
}

func TestSurfaceMetadata(t *testing.T) {
	assert.Equal(t, "MSS.xyz", SurfaceMSS.FileName())
	assert.Equal(t, "geoid.xyz", SurfaceGeoid.FileName())
	assert.Empty(t, SurfaceEllipsoid.FileName())
	assert.True(t, SurfaceEllipsoid.IsEllipsoid())
	assert.Len(t, Surfaces(), 8)
}
