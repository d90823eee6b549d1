package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/mapper"
	"github.com/skyflying/vertical-datum/internal/repository"
	"github.com/skyflying/vertical-datum/internal/tidewarehouse"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TideGaugeService handles business logic for tide stations and their
// derived reference levels
type TideGaugeService struct {
	gaugeRepo *repository.TideGaugeRepository
	whClient  *tidewarehouse.Client
	logger    *zap.Logger
}

// NewTideGaugeService creates a new TideGaugeService instance
func NewTideGaugeService(gaugeRepo *repository.TideGaugeRepository, logger *zap.Logger) *TideGaugeService {
	return &TideGaugeService{
		gaugeRepo: gaugeRepo,
		logger:    logger,
	}
}

// SetWarehouseClient attaches the optional tide warehouse client
func (s *TideGaugeService) SetWarehouseClient(client *tidewarehouse.Client) {
	s.whClient = client
}

// List returns tide gauges with pagination
func (s *TideGaugeService) List(ctx context.Context, page, pageSize int, activeOnly bool) (*domain.PaginatedResponse, error) {
	gauges, total, err := s.gaugeRepo.List(ctx, page, pageSize, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list tide gauges: %w", err)
	}

	dtos := make([]domain.TideGaugeDTO, 0, len(gauges))
	for i := range gauges {
		dtos = append(dtos, mapper.ToTideGaugeDTO(&gauges[i]))
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

// GetByID returns a tide gauge with its reference levels
func (s *TideGaugeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TideGaugeDTO, error) {
	gauge, err := s.gaugeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tide gauge: %w", err)
	}

	dto := mapper.ToTideGaugeDTO(gauge)
	return &dto, nil
}

// GetByStationCode returns a tide gauge by its station code
func (s *TideGaugeService) GetByStationCode(ctx context.Context, code string) (*domain.TideGaugeDTO, error) {
	gauge, err := s.gaugeRepo.GetByStationCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tide gauge: %w", err)
	}

	dto := mapper.ToTideGaugeDTO(gauge)
	return &dto, nil
}

// Levels returns the derived reference levels at a station
func (s *TideGaugeService) Levels(ctx context.Context, id uuid.UUID) ([]domain.TideGaugeLevelDTO, error) {
	if _, err := s.gaugeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tide gauge: %w", err)
	}

	levels, err := s.gaugeRepo.ListLevels(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list reference levels: %w", err)
	}

	dtos := make([]domain.TideGaugeLevelDTO, 0, len(levels))
	for i := range levels {
		dtos = append(dtos, mapper.ToTideGaugeLevelDTO(&levels[i]))
	}
	return dtos, nil
}

// SyncResult summarizes one warehouse sync run
type SyncResult struct {
	Stations int `json:"stations"`
	Levels   int `json:"levels"`
	Failed   int `json:"failed"`
}

// SyncFromWarehouse pulls tide stations and their reference levels from the
// warehouse into the local catalogue. Station records are upserted by
// station code; levels are replaced wholesale per station.
func (s *TideGaugeService) SyncFromWarehouse(ctx context.Context) (*SyncResult, error) {
	if !s.whClient.IsEnabled() {
		return nil, ErrWarehouseDisabled
	}

	stations, err := s.whClient.FetchStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stations from warehouse: %w", err)
	}

	result := &SyncResult{}
	for _, station := range stations {
		gauge := &domain.TideGauge{
			StationCode: station.Code,
			Name:        station.Name,
			Lon:         station.Lon,
			Lat:         station.Lat,
			Operator:    station.Operator,
			FirstYear:   station.FirstYear,
			LastYear:    station.LastYear,
			Active:      station.Active,
		}

		if err := s.gaugeRepo.Upsert(ctx, gauge); err != nil {
			s.logger.Error("failed to upsert tide gauge",
				zap.String("station_code", station.Code),
				zap.Error(err),
			)
			result.Failed++
			continue
		}
		result.Stations++

		levels, err := s.whClient.FetchReferenceLevels(ctx, station.Code)
		if err != nil {
			s.logger.Error("failed to fetch reference levels",
				zap.String("station_code", station.Code),
				zap.Error(err),
			)
			result.Failed++
			continue
		}

		gaugeLevels := make([]domain.TideGaugeLevel, 0, len(levels))
		for _, l := range levels {
			gaugeLevels = append(gaugeLevels, domain.TideGaugeLevel{
				Surface: l.Surface,
				Height:  l.Height,
				Epoch:   l.Epoch,
			})
		}

		if err := s.gaugeRepo.ReplaceLevels(ctx, gauge.ID, gaugeLevels); err != nil {
			s.logger.Error("failed to replace reference levels",
				zap.String("station_code", station.Code),
				zap.Error(err),
			)
			result.Failed++
			continue
		}
		result.Levels += len(gaugeLevels)
	}

	s.logger.Info("tide warehouse sync completed",
		zap.Int("stations", result.Stations),
		zap.Int("levels", result.Levels),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}
