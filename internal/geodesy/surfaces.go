// Package geodesy implements the vertical datum transformation core: reference
// surface point clouds, scattered-data interpolation, and the height conversion
// between tidal datums, the geoid, and the ellipsoid for the Taiwan region.
package geodesy

import (
	"fmt"
	"strings"
)

// Surface identifies a vertical reference surface. All surfaces except the
// ellipsoid are distributed as point clouds of ellipsoidal heights.
type Surface int

const (
	SurfaceMSS Surface = iota
	SurfaceHAT
	SurfaceMHW
	SurfaceMLW
	SurfaceLAT
	SurfaceISLW
	SurfaceGeoid
	SurfaceEllipsoid
)

type surfaceInfo struct {
	code     string
	name     string
	fileName string
	datum    string
}

var surfaceInfos = [...]surfaceInfo{
	SurfaceMSS:       {"MSS", "Mean Sea Surface (MSS)", "MSS.xyz", "Mean sea surface epoch 2005.0, re-estimated to 2012.0"},
	SurfaceHAT:       {"HAT", "Highest Astronomical Tide (HAT)", "HAT.xyz", "TWCD2021"},
	SurfaceMHW:       {"MHW", "Mean High Water (MHW)", "MHW.xyz", "TWCD2021"},
	SurfaceMLW:       {"MLW", "Mean Low Water (MLW)", "MLW.xyz", "TWCD2021"},
	SurfaceLAT:       {"LAT", "Lowest Astronomical Tide (LAT)", "LAT.xyz", "TWCD2021 chart datum"},
	SurfaceISLW:      {"ISLW", "Indian Spring Low Water (ISLW)", "ISLW.xyz", "Legacy chart datum"},
	SurfaceGeoid:     {"Geoid", "Geoid", "geoid.xyz", "TWVD2001 reference geoid"},
	SurfaceEllipsoid: {"EL", "Ellipsoid", "", "GRS80 / TWD97 ellipsoid"},
}

// Surfaces returns all known surfaces in their canonical order.
func Surfaces() []Surface {
	out := make([]Surface, len(surfaceInfos))
	for i := range surfaceInfos {
		out[i] = Surface(i)
	}
	return out
}

// Code returns the short identifier used in the API and in file naming.
func (s Surface) Code() string {
	if !s.Valid() {
		return fmt.Sprintf("Surface(%d)", int(s))
	}
	return surfaceInfos[s].code
}

// Name returns the human-readable surface name.
func (s Surface) Name() string {
	if !s.Valid() {
		return s.Code()
	}
	return surfaceInfos[s].name
}

// FileName returns the point cloud file name for the surface. The ellipsoid
// has no file; it is the zero surface by definition.
func (s Surface) FileName() string {
	if !s.Valid() {
		return ""
	}
	return surfaceInfos[s].fileName
}

// Datum describes the datum context the surface belongs to.
func (s Surface) Datum() string {
	if !s.Valid() {
		return ""
	}
	return surfaceInfos[s].datum
}

// Valid reports whether s is one of the defined surfaces.
func (s Surface) Valid() bool {
	return s >= SurfaceMSS && s <= SurfaceEllipsoid
}

// IsEllipsoid reports whether s is the zero surface.
func (s Surface) IsEllipsoid() bool {
	return s == SurfaceEllipsoid
}

func (s Surface) String() string {
	return s.Code()
}

// ParseSurface resolves a surface from its short code, case-insensitively.
// Both "EL" and "Ellipsoid" are accepted for the ellipsoid.
func ParseSurface(code string) (Surface, error) {
	c := strings.TrimSpace(code)
	for i, info := range surfaceInfos {
		if strings.EqualFold(c, info.code) {
			return Surface(i), nil
		}
	}
	if strings.EqualFold(c, "Ellipsoid") {
		return SurfaceEllipsoid, nil
	}
	return 0, fmt.Errorf("unknown surface %q", code)
}
