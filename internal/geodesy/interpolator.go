package geodesy

import (
	"errors"
	"math"

	"github.com/fogleman/delaunay"
	"github.com/kyroy/kdtree"
)

// Interpolator evaluates a scattered surface point cloud at arbitrary
// positions. Queries inside the convex hull of the cloud are linearly
// interpolated over a Delaunay triangulation; queries outside the hull fall
// back to the nearest cloud point so coastal strips at the model edge still
// resolve, mirroring the behaviour hydrographic processing expects.
type Interpolator struct {
	tri     *delaunay.Triangulation
	values  []float64
	grid    *triGrid
	nearest *kdtree.KDTree
	count   int
}

// nnPoint adapts a cloud point to the kd-tree point interface.
type nnPoint struct {
	lon, lat, val float64
}

func (p *nnPoint) Dimensions() int { return 2 }

func (p *nnPoint) Dimension(i int) float64 {
	if i == 0 {
		return p.lon
	}
	return p.lat
}

// NewInterpolator builds the triangulation and nearest-neighbour index for a
// point cloud. Clouds with fewer than three points, or degenerate (collinear)
// clouds that cannot be triangulated, are served by nearest-neighbour alone.
func NewInterpolator(points []PointValue) (*Interpolator, error) {
	if len(points) == 0 {
		return nil, errors.New("empty point cloud")
	}

	kdPoints := make([]kdtree.Point, len(points))
	for i, p := range points {
		kdPoints[i] = &nnPoint{lon: p.Lon, lat: p.Lat, val: p.Value}
	}

	ip := &Interpolator{
		nearest: kdtree.New(kdPoints),
		count:   len(points),
	}

	if len(points) >= 3 {
		dpts := make([]delaunay.Point, len(points))
		values := make([]float64, len(points))
		for i, p := range points {
			dpts[i] = delaunay.Point{X: p.Lon, Y: p.Lat}
			values[i] = p.Value
		}
		tri, err := delaunay.Triangulate(dpts)
		if err == nil && len(tri.Triangles) > 0 {
			ip.tri = tri
			ip.values = values
			ip.grid = newTriGrid(tri)
		}
	}

	return ip, nil
}

// Count returns the number of points the interpolator was built from.
func (ip *Interpolator) Count() int {
	return ip.count
}

// At evaluates the surface at the given position: linear interpolation with
// nearest-neighbour fallback. The result is never NaN.
func (ip *Interpolator) At(lon, lat float64) float64 {
	if v := ip.Linear(lon, lat); !math.IsNaN(v) {
		return v
	}
	return ip.Nearest(lon, lat)
}

// Linear evaluates the triangulated surface. Returns NaN when the position is
// outside the convex hull of the cloud or no triangulation exists.
func (ip *Interpolator) Linear(lon, lat float64) float64 {
	if ip.tri == nil {
		return math.NaN()
	}
	for _, t := range ip.grid.candidates(lon, lat) {
		ia := ip.tri.Triangles[3*t]
		ib := ip.tri.Triangles[3*t+1]
		ic := ip.tri.Triangles[3*t+2]
		wa, wb, wc, ok := barycentric(ip.tri.Points[ia], ip.tri.Points[ib], ip.tri.Points[ic], lon, lat)
		if !ok {
			continue
		}
		return wa*ip.values[ia] + wb*ip.values[ib] + wc*ip.values[ic]
	}
	return math.NaN()
}

// Nearest returns the value of the closest cloud point.
func (ip *Interpolator) Nearest(lon, lat float64) float64 {
	res := ip.nearest.KNN(&nnPoint{lon: lon, lat: lat}, 1)
	if len(res) == 0 {
		return math.NaN()
	}
	return res[0].(*nnPoint).val
}

const baryEps = 1e-9

// barycentric computes barycentric weights of (x, y) in triangle abc and
// reports whether the point lies inside it (boundaries included).
func barycentric(a, b, c delaunay.Point, x, y float64) (wa, wb, wc float64, inside bool) {
	det := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if det == 0 {
		return 0, 0, 0, false
	}
	wa = ((b.Y-c.Y)*(x-c.X) + (c.X-b.X)*(y-c.Y)) / det
	wb = ((c.Y-a.Y)*(x-c.X) + (a.X-c.X)*(y-c.Y)) / det
	wc = 1 - wa - wb
	inside = wa >= -baryEps && wb >= -baryEps && wc >= -baryEps
	return wa, wb, wc, inside
}

// triGrid is a uniform spatial index over triangle bounding boxes so point
// location does not scan the full triangulation per query.
type triGrid struct {
	minX, minY float64
	cellW      float64
	cellH      float64
	nx, ny     int
	cells      [][]int32
}

func newTriGrid(tri *delaunay.Triangulation) *triGrid {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range tri.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	nTri := len(tri.Triangles) / 3
	n := int(math.Sqrt(float64(nTri)))
	if n < 1 {
		n = 1
	}
	if n > 256 {
		n = 256
	}

	g := &triGrid{
		minX: minX,
		minY: minY,
		nx:   n,
		ny:   n,
	}
	g.cellW = (maxX - minX) / float64(n)
	g.cellH = (maxY - minY) / float64(n)
	if g.cellW <= 0 {
		g.cellW = 1
	}
	if g.cellH <= 0 {
		g.cellH = 1
	}
	g.cells = make([][]int32, n*n)

	for t := 0; t < nTri; t++ {
		a := tri.Points[tri.Triangles[3*t]]
		b := tri.Points[tri.Triangles[3*t+1]]
		c := tri.Points[tri.Triangles[3*t+2]]
		x0, x1 := g.colRange(math.Min(a.X, math.Min(b.X, c.X)), math.Max(a.X, math.Max(b.X, c.X)))
		y0, y1 := g.rowRange(math.Min(a.Y, math.Min(b.Y, c.Y)), math.Max(a.Y, math.Max(b.Y, c.Y)))
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				idx := cy*g.nx + cx
				g.cells[idx] = append(g.cells[idx], int32(t))
			}
		}
	}

	return g
}

func (g *triGrid) colRange(lo, hi float64) (int, int) {
	return g.clampCol(int((lo - g.minX) / g.cellW)), g.clampCol(int((hi - g.minX) / g.cellW))
}

func (g *triGrid) rowRange(lo, hi float64) (int, int) {
	return g.clampRow(int((lo - g.minY) / g.cellH)), g.clampRow(int((hi - g.minY) / g.cellH))
}

func (g *triGrid) clampCol(c int) int {
	if c < 0 {
		return 0
	}
	if c >= g.nx {
		return g.nx - 1
	}
	return c
}

func (g *triGrid) clampRow(r int) int {
	if r < 0 {
		return 0
	}
	if r >= g.ny {
		return g.ny - 1
	}
	return r
}

// candidates returns the triangles whose bounding boxes cover the cell the
// query point falls in.
func (g *triGrid) candidates(x, y float64) []int32 {
	cx := g.clampCol(int((x - g.minX) / g.cellW))
	cy := g.clampRow(int((y - g.minY) / g.cellH))
	return g.cells[cy*g.nx+cx]
}
