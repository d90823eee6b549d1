package geodesy

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// ValueKind describes what the input value of a transform measures.
type ValueKind string

const (
	// ValueKindDepth is a sounding: the vertical distance from the input
	// surface down to the seabed, positive downwards.
	ValueKindDepth ValueKind = "depth"
	// ValueKindEllipsoidal is an ellipsoidal height of the seabed (or of a
	// land point), positive upwards.
	ValueKindEllipsoidal ValueKind = "ellipsoidal"
)

// ParseValueKind resolves a value kind from its string form.
func ParseValueKind(s string) (ValueKind, error) {
	switch ValueKind(s) {
	case ValueKindDepth, ValueKindEllipsoidal:
		return ValueKind(s), nil
	}
	return "", fmt.Errorf("unknown value kind %q", s)
}

var (
	// ErrOutOfRegion is returned for single-point transforms outside the
	// surface model coverage.
	ErrOutOfRegion = errors.New("point outside surface model coverage")
	// ErrSameSurface is returned when input and output surfaces are equal.
	ErrSameSurface = errors.New("input and output surfaces must differ")
	// ErrEmptyInput is returned when a file holds no parseable points.
	ErrEmptyInput = errors.New("input file is empty or invalid")
)

// Result is a single-point transform outcome. HIn and HOut are the
// interpolated ellipsoidal heights of the input and output surfaces at the
// point.
type Result struct {
	Value float64
	HIn   float64
	HOut  float64
}

// BatchStats summarises a batch transform.
type BatchStats struct {
	Total      int
	Converted  int
	OutOfRange int
}

// Transformer converts values between vertical reference surfaces.
type Transformer struct {
	store *SurfaceStore
}

// NewTransformer creates a transformer over the given surface store.
func NewTransformer(store *SurfaceStore) *Transformer {
	return &Transformer{store: store}
}

// Store returns the underlying surface store.
func (t *Transformer) Store() *SurfaceStore {
	return t.store
}

// Point transforms a single value at (lon, lat) from the input surface to the
// output surface.
//
// For depth values the surfaces shift the sounding:
//
//	d_out = d_in + (H_out - H_in)
//
// For ellipsoidal bed heights the output is the distance from the output
// surface down to the bed:
//
//	d_out = H_out - h_bed
func (t *Transformer) Point(in, out Surface, kind ValueKind, lon, lat, value float64) (Result, error) {
	if in == out {
		return Result{}, ErrSameSurface
	}
	if !t.store.Region().Contains(lon, lat) {
		return Result{}, ErrOutOfRegion
	}

	hIn, err := t.store.HeightAt(in, lon, lat)
	if err != nil {
		return Result{}, err
	}
	hOut, err := t.store.HeightAt(out, lon, lat)
	if err != nil {
		return Result{}, err
	}

	var converted float64
	switch kind {
	case ValueKindDepth:
		converted = value + (hOut - hIn)
	case ValueKindEllipsoidal:
		converted = hOut - value
	default:
		return Result{}, fmt.Errorf("unknown value kind %q", kind)
	}

	return Result{Value: converted, HIn: hIn, HOut: hOut}, nil
}

// Batch transforms a slice of points. Points outside the region coverage
// yield NaN and are counted in the returned stats rather than failing the
// batch, so file rows keep their positions.
func (t *Transformer) Batch(in, out Surface, kind ValueKind, points []PointValue) ([]float64, BatchStats, error) {
	if in == out {
		return nil, BatchStats{}, ErrSameSurface
	}

	stats := BatchStats{Total: len(points)}
	values := make([]float64, len(points))
	for i, p := range points {
		if !t.store.Region().Contains(p.Lon, p.Lat) {
			values[i] = math.NaN()
			stats.OutOfRange++
			continue
		}
		res, err := t.Point(in, out, kind, p.Lon, p.Lat, p.Value)
		if err != nil {
			return nil, stats, err
		}
		values[i] = res.Value
		stats.Converted++
	}
	return values, stats, nil
}

// File reads an .xyz sounding file from r, transforms it, and writes the
// four-column result to w.
func (t *Transformer) File(in, out Surface, kind ValueKind, r io.Reader, w io.Writer) (BatchStats, error) {
	points, err := ReadXYZ(r)
	if err != nil {
		return BatchStats{}, err
	}
	if len(points) == 0 {
		return BatchStats{}, ErrEmptyInput
	}

	values, stats, err := t.Batch(in, out, kind, points)
	if err != nil {
		return stats, err
	}
	if err := WriteXYZ(w, points, values); err != nil {
		return stats, err
	}
	return stats, nil
}
