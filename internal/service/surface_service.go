package service

import (
	"fmt"
	"strings"

	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/geodesy"
	"github.com/skyflying/vertical-datum/internal/mapper"
	"go.uber.org/zap"
)

// SurfaceService exposes the reference surface catalogue and its load state
type SurfaceService struct {
	store  *geodesy.SurfaceStore
	logger *zap.Logger
}

// NewSurfaceService creates a new SurfaceService instance
func NewSurfaceService(store *geodesy.SurfaceStore, logger *zap.Logger) *SurfaceService {
	return &SurfaceService{
		store:  store,
		logger: logger,
	}
}

// List returns all reference surfaces with their load state and the model
// coverage region
func (s *SurfaceService) List() ([]domain.SurfaceDTO, domain.RegionDTO) {
	surfaces := geodesy.Surfaces()
	dtos := make([]domain.SurfaceDTO, 0, len(surfaces))
	for _, surface := range surfaces {
		dtos = append(dtos, mapper.ToSurfaceDTO(surface, s.store.Loaded(surface), s.store.PointCount(surface)))
	}
	return dtos, mapper.ToRegionDTO(s.store.Region())
}

// Get returns one surface by code
func (s *SurfaceService) Get(code string) (*domain.SurfaceDTO, error) {
	surface, err := geodesy.ParseSurface(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSurface, strings.TrimSpace(code))
	}
	dto := mapper.ToSurfaceDTO(surface, s.store.Loaded(surface), s.store.PointCount(surface))
	return &dto, nil
}

// Reload drops all loaded surfaces so they are re-read from disk on next use
func (s *SurfaceService) Reload() {
	s.store.Reload()
	s.logger.Info("surface store reloaded", zap.String("data_dir", s.store.Dir()))
}
