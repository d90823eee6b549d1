package geodesy

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// PointValue is one record of a surface point cloud or of a sounding file:
// a geographic position with an attached height or depth value.
type PointValue struct {
	Lon   float64
	Lat   float64
	Value float64
}

// Region is a lon/lat bounding box in decimal degrees.
type Region struct {
	MinLon float64
	MaxLon float64
	MinLat float64
	MaxLat float64
}

// TaiwanRegion is the coverage of the distributed surface models: the Taiwan
// coastal waters, 118-125 E and 21-27 N.
var TaiwanRegion = Region{MinLon: 118, MaxLon: 125, MinLat: 21, MaxLat: 27}

// Contains reports whether the point lies inside the region, boundaries
// included.
func (r Region) Contains(lon, lat float64) bool {
	return lon >= r.MinLon && lon <= r.MaxLon && lat >= r.MinLat && lat <= r.MaxLat
}

func (r Region) String() string {
	return fmt.Sprintf("%g~%gE, %g~%gN", r.MinLon, r.MaxLon, r.MinLat, r.MaxLat)
}

// ReadXYZ parses whitespace-separated "lon lat value" records. Lines with
// fewer than three fields or non-numeric leading fields are skipped, matching
// the tolerant reader the surface files were produced for.
func ReadXYZ(r io.Reader) ([]PointValue, error) {
	var points []PointValue
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 {
			continue
		}
		lon, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		val, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}
		points = append(points, PointValue{Lon: lon, Lat: lat, Value: val})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan xyz data: %w", err)
	}
	return points, nil
}

// ReadXYZFile reads a point cloud from disk.
func ReadXYZFile(path string) ([]PointValue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	points, err := ReadXYZ(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return points, nil
}

// WriteXYZ writes the four-column result format: longitude, latitude, the
// original value, and the transformed value. Non-finite values are rendered
// as NaN so downstream tools can spot points outside the model coverage.
func WriteXYZ(w io.Writer, points []PointValue, transformed []float64) error {
	if len(points) != len(transformed) {
		return fmt.Errorf("point count %d does not match value count %d", len(points), len(transformed))
	}
	bw := bufio.NewWriter(w)
	for i, p := range points {
		if _, err := fmt.Fprintf(bw, "%11.7f %10.7f %s %s\n",
			p.Lon, p.Lat, formatValue(p.Value), formatValue(transformed[i])); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func formatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "      NaN"
	}
	return fmt.Sprintf("%8.3f", v)
}

// SplitRegion partitions points into those inside the region and the indices
// of those outside, preserving order.
func SplitRegion(points []PointValue, region Region) (inside []PointValue, outsideIdx []int) {
	for i, p := range points {
		if region.Contains(p.Lon, p.Lat) {
			inside = append(inside, p)
		} else {
			outsideIdx = append(outsideIdx, i)
		}
	}
	return inside, outsideIdx
}
