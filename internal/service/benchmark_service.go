package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/mapper"
	"github.com/skyflying/vertical-datum/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const earthRadiusKm = 6371.0

// BenchmarkService handles business logic for levelling benchmarks
type BenchmarkService struct {
	benchmarkRepo *repository.BenchmarkRepository
	logger        *zap.Logger
}

// NewBenchmarkService creates a new BenchmarkService instance
func NewBenchmarkService(benchmarkRepo *repository.BenchmarkRepository, logger *zap.Logger) *BenchmarkService {
	return &BenchmarkService{
		benchmarkRepo: benchmarkRepo,
		logger:        logger,
	}
}

// Create creates a new benchmark
func (s *BenchmarkService) Create(ctx context.Context, req *domain.CreateBenchmarkRequest) (*domain.BenchmarkDTO, error) {
	if _, err := s.benchmarkRepo.GetByDesignation(ctx, req.Designation); err == nil {
		return nil, fmt.Errorf("%w: benchmark %s already exists", ErrConflict, req.Designation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check benchmark designation: %w", err)
	}

	benchmark := &domain.Benchmark{
		Designation:    req.Designation,
		Lon:            req.Lon,
		Lat:            req.Lat,
		HeightTWVD2001: req.HeightTWVD2001,
		HeightTWCD2021: req.HeightTWCD2021,
		Order:          req.Order,
		Agency:         req.Agency,
		Description:    req.Description,
	}

	if err := s.benchmarkRepo.Create(ctx, benchmark); err != nil {
		return nil, fmt.Errorf("failed to create benchmark: %w", err)
	}

	s.logger.Info("benchmark created",
		zap.String("benchmarkID", benchmark.ID.String()),
		zap.String("designation", benchmark.Designation),
	)

	dto := mapper.ToBenchmarkDTO(benchmark)
	return &dto, nil
}

// GetByID returns a benchmark by ID
func (s *BenchmarkService) GetByID(ctx context.Context, id uuid.UUID) (*domain.BenchmarkDTO, error) {
	benchmark, err := s.benchmarkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get benchmark: %w", err)
	}

	dto := mapper.ToBenchmarkDTO(benchmark)
	return &dto, nil
}

// List returns benchmarks with pagination and optional filters
func (s *BenchmarkService) List(ctx context.Context, page, pageSize int, agency, order string) (*domain.PaginatedResponse, error) {
	benchmarks, total, err := s.benchmarkRepo.List(ctx, page, pageSize, agency, order)
	if err != nil {
		return nil, fmt.Errorf("failed to list benchmarks: %w", err)
	}

	dtos := make([]domain.BenchmarkDTO, 0, len(benchmarks))
	for i := range benchmarks {
		dtos = append(dtos, mapper.ToBenchmarkDTO(&benchmarks[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Nearest returns up to limit benchmarks ranked by great-circle distance
// from the query point. A bounding box narrows the database scan; it is
// widened until enough candidates are found or the whole region is covered.
func (s *BenchmarkService) Nearest(ctx context.Context, lon, lat float64, limit int) ([]domain.NearestBenchmarkDTO, error) {
	if limit <= 0 {
		limit = 1
	}
	if limit > 50 {
		limit = 50
	}

	var candidates []domain.Benchmark
	for _, span := range []float64{0.25, 1.0, 4.0, 180.0} {
		found, err := s.benchmarkRepo.ListInBounds(ctx, lon-span, lon+span, lat-span, lat+span)
		if err != nil {
			return nil, fmt.Errorf("failed to query benchmarks: %w", err)
		}
		candidates = found
		if len(candidates) >= limit {
			break
		}
	}

	if len(candidates) == 0 {
		return []domain.NearestBenchmarkDTO{}, nil
	}

	type ranked struct {
		benchmark *domain.Benchmark
		distance  float64
	}
	rankedList := make([]ranked, 0, len(candidates))
	for i := range candidates {
		rankedList = append(rankedList, ranked{
			benchmark: &candidates[i],
			distance:  haversineKm(lon, lat, candidates[i].Lon, candidates[i].Lat),
		})
	}
	sort.Slice(rankedList, func(i, j int) bool {
		return rankedList[i].distance < rankedList[j].distance
	})

	if len(rankedList) > limit {
		rankedList = rankedList[:limit]
	}

	dtos := make([]domain.NearestBenchmarkDTO, 0, len(rankedList))
	for _, r := range rankedList {
		dtos = append(dtos, mapper.ToNearestBenchmarkDTO(r.benchmark, r.distance))
	}
	return dtos, nil
}

// Update updates mutable benchmark fields
func (s *BenchmarkService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateBenchmarkRequest) (*domain.BenchmarkDTO, error) {
	benchmark, err := s.benchmarkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get benchmark: %w", err)
	}

	if req.HeightTWVD2001 != nil {
		benchmark.HeightTWVD2001 = req.HeightTWVD2001
	}
	if req.HeightTWCD2021 != nil {
		benchmark.HeightTWCD2021 = req.HeightTWCD2021
	}
	if req.Order != nil {
		benchmark.Order = *req.Order
	}
	if req.Agency != nil {
		benchmark.Agency = *req.Agency
	}
	if req.Description != nil {
		benchmark.Description = *req.Description
	}

	if err := s.benchmarkRepo.Update(ctx, benchmark); err != nil {
		return nil, fmt.Errorf("failed to update benchmark: %w", err)
	}

	dto := mapper.ToBenchmarkDTO(benchmark)
	return &dto, nil
}

// Delete removes a benchmark
func (s *BenchmarkService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.benchmarkRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get benchmark: %w", err)
	}

	if err := s.benchmarkRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete benchmark: %w", err)
	}

	s.logger.Info("benchmark deleted", zap.String("benchmarkID", id.String()))
	return nil
}

// haversineKm returns the great-circle distance between two points in km
func haversineKm(lon1, lat1, lon2, lat2 float64) float64 {
	toRad := math.Pi / 180.0
	dLat := (lat2 - lat1) * toRad
	dLon := (lon2 - lon1) * toRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*toRad)*math.Cos(lat2*toRad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
