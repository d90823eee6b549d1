package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/skyflying/vertical-datum/internal/domain"
	"gorm.io/gorm"
)

type BenchmarkRepository struct {
	db *gorm.DB
}

func NewBenchmarkRepository(db *gorm.DB) *BenchmarkRepository {
	return &BenchmarkRepository{db: db}
}

func (r *BenchmarkRepository) Create(ctx context.Context, benchmark *domain.Benchmark) error {
	return r.db.WithContext(ctx).Create(benchmark).Error
}

func (r *BenchmarkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Benchmark, error) {
	var benchmark domain.Benchmark
	err := r.db.WithContext(ctx).First(&benchmark, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &benchmark, nil
}

func (r *BenchmarkRepository) GetByDesignation(ctx context.Context, designation string) (*domain.Benchmark, error) {
	var benchmark domain.Benchmark
	err := r.db.WithContext(ctx).First(&benchmark, "designation = ?", designation).Error
	if err != nil {
		return nil, err
	}
	return &benchmark, nil
}

func (r *BenchmarkRepository) List(ctx context.Context, page, pageSize int, agency, order string) ([]domain.Benchmark, int64, error) {
	var benchmarks []domain.Benchmark
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Benchmark{})

	if agency != "" {
		query = query.Where("agency = ?", agency)
	}

	if order != "" {
		query = query.Where("levelling_order = ?", order)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("designation ASC").Find(&benchmarks).Error

	return benchmarks, total, err
}

// ListInBounds returns benchmarks inside a bounding box. Used to narrow the
// candidate set before the exact great-circle distance ranking.
func (r *BenchmarkRepository) ListInBounds(ctx context.Context, minLon, maxLon, minLat, maxLat float64) ([]domain.Benchmark, error) {
	var benchmarks []domain.Benchmark
	err := r.db.WithContext(ctx).
		Where("lon >= ? AND lon <= ? AND lat >= ? AND lat <= ?", minLon, maxLon, minLat, maxLat).
		Find(&benchmarks).Error
	return benchmarks, err
}

func (r *BenchmarkRepository) Update(ctx context.Context, benchmark *domain.Benchmark) error {
	return r.db.WithContext(ctx).Save(benchmark).Error
}

func (r *BenchmarkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Benchmark{}, "id = ?", id).Error
}
