package geodesy

import (
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// SurfaceStore loads surface point clouds from a data directory and caches
// one interpolator per surface. Loading is lazy and performed at most once per
// surface until Reload is called.
type SurfaceStore struct {
	dir    string
	region Region
	logger *zap.Logger

	mu      sync.Mutex
	entries map[Surface]*storeEntry
}

type storeEntry struct {
	once   sync.Once
	interp *Interpolator
	err    error
}

// NewSurfaceStore creates a store reading surface files from dir.
func NewSurfaceStore(dir string, region Region, logger *zap.Logger) *SurfaceStore {
	return &SurfaceStore{
		dir:     dir,
		region:  region,
		logger:  logger,
		entries: make(map[Surface]*storeEntry),
	}
}

// Region returns the valid coverage of the store's surface models.
func (s *SurfaceStore) Region() Region {
	return s.region
}

// Dir returns the data directory the store reads from.
func (s *SurfaceStore) Dir() string {
	return s.dir
}

// Interpolator returns the cached interpolator for a surface, loading the
// point cloud on first use. The ellipsoid has no interpolator: callers must
// treat it as the zero surface (HeightAt does).
func (s *SurfaceStore) Interpolator(surface Surface) (*Interpolator, error) {
	if !surface.Valid() {
		return nil, fmt.Errorf("invalid surface %d", int(surface))
	}
	if surface.IsEllipsoid() {
		return nil, fmt.Errorf("surface %s has no point cloud", surface.Code())
	}

	s.mu.Lock()
	entry, ok := s.entries[surface]
	if !ok {
		entry = &storeEntry{}
		s.entries[surface] = entry
	}
	s.mu.Unlock()

	entry.once.Do(func() {
		path := filepath.Join(s.dir, surface.FileName())
		points, err := ReadXYZFile(path)
		if err != nil {
			entry.err = err
			return
		}
		if len(points) == 0 {
			entry.err = fmt.Errorf("surface file %s contains no points", path)
			return
		}
		interp, err := NewInterpolator(points)
		if err != nil {
			entry.err = fmt.Errorf("failed to build interpolator for %s: %w", surface.Code(), err)
			return
		}
		entry.interp = interp
		s.logger.Info("surface loaded",
			zap.String("surface", surface.Code()),
			zap.String("file", path),
			zap.Int("points", interp.Count()),
		)
	})

	if entry.err != nil {
		return nil, entry.err
	}
	return entry.interp, nil
}

// HeightAt returns the ellipsoidal height of the surface at the position.
// The ellipsoid is identically zero.
func (s *SurfaceStore) HeightAt(surface Surface, lon, lat float64) (float64, error) {
	if surface.IsEllipsoid() {
		return 0, nil
	}
	interp, err := s.Interpolator(surface)
	if err != nil {
		return 0, err
	}
	return interp.At(lon, lat), nil
}

// PointCount returns the number of points loaded for a surface, or zero when
// the surface is not loaded (or is the ellipsoid).
func (s *SurfaceStore) PointCount(surface Surface) int {
	s.mu.Lock()
	entry, ok := s.entries[surface]
	s.mu.Unlock()
	if !ok || entry.interp == nil {
		return 0
	}
	return entry.interp.Count()
}

// Loaded reports whether the surface point cloud has been loaded successfully.
func (s *SurfaceStore) Loaded(surface Surface) bool {
	if surface.IsEllipsoid() {
		return true
	}
	s.mu.Lock()
	entry, ok := s.entries[surface]
	s.mu.Unlock()
	return ok && entry.interp != nil
}

// Preload eagerly loads the given surfaces, returning the first error.
func (s *SurfaceStore) Preload(surfaces ...Surface) error {
	for _, surface := range surfaces {
		if surface.IsEllipsoid() {
			continue
		}
		if _, err := s.Interpolator(surface); err != nil {
			return err
		}
	}
	return nil
}

// Reload drops all cached interpolators so the next query re-reads the files.
func (s *SurfaceStore) Reload() {
	s.mu.Lock()
	s.entries = make(map[Surface]*storeEntry)
	s.mu.Unlock()
	s.logger.Info("surface cache cleared", zap.String("dir", s.dir))
}
