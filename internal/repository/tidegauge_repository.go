package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/skyflying/vertical-datum/internal/domain"
	"gorm.io/gorm"
)

type TideGaugeRepository struct {
	db *gorm.DB
}

func NewTideGaugeRepository(db *gorm.DB) *TideGaugeRepository {
	return &TideGaugeRepository{db: db}
}

func (r *TideGaugeRepository) Create(ctx context.Context, gauge *domain.TideGauge) error {
	return r.db.WithContext(ctx).Create(gauge).Error
}

func (r *TideGaugeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TideGauge, error) {
	var gauge domain.TideGauge
	err := r.db.WithContext(ctx).Preload("Levels").First(&gauge, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &gauge, nil
}

func (r *TideGaugeRepository) GetByStationCode(ctx context.Context, code string) (*domain.TideGauge, error) {
	var gauge domain.TideGauge
	err := r.db.WithContext(ctx).Preload("Levels").First(&gauge, "station_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &gauge, nil
}

func (r *TideGaugeRepository) List(ctx context.Context, page, pageSize int, activeOnly bool) ([]domain.TideGauge, int64, error) {
	var gauges []domain.TideGauge
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.TideGauge{})

	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("station_code ASC").Find(&gauges).Error

	return gauges, total, err
}

func (r *TideGaugeRepository) Update(ctx context.Context, gauge *domain.TideGauge) error {
	return r.db.WithContext(ctx).Save(gauge).Error
}

func (r *TideGaugeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.TideGaugeLevel{}, "tide_gauge_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.TideGauge{}, "id = ?", id).Error
	})
}

// Upsert creates the gauge or updates an existing record matched by station
// code. Used by the warehouse sync job.
func (r *TideGaugeRepository) Upsert(ctx context.Context, gauge *domain.TideGauge) error {
	var existing domain.TideGauge
	err := r.db.WithContext(ctx).First(&existing, "station_code = ?", gauge.StationCode).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(gauge).Error
	}
	if err != nil {
		return err
	}

	gauge.ID = existing.ID
	gauge.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(gauge).Error
}

// ReplaceLevels swaps out the stored reference levels for a gauge
func (r *TideGaugeRepository) ReplaceLevels(ctx context.Context, gaugeID uuid.UUID, levels []domain.TideGaugeLevel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.TideGaugeLevel{}, "tide_gauge_id = ?", gaugeID).Error; err != nil {
			return err
		}
		for i := range levels {
			levels[i].TideGaugeID = gaugeID
		}
		if len(levels) == 0 {
			return nil
		}
		return tx.Create(&levels).Error
	})
}

func (r *TideGaugeRepository) ListLevels(ctx context.Context, gaugeID uuid.UUID) ([]domain.TideGaugeLevel, error) {
	var levels []domain.TideGaugeLevel
	err := r.db.WithContext(ctx).
		Where("tide_gauge_id = ?", gaugeID).
		Order("surface ASC").
		Find(&levels).Error
	return levels, err
}
