package mapper

import (
	"time"

	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/geodesy"
)

const timeFormat = "2006-01-02T15:04:05Z"

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeFormat)
}

// ToSurfaceDTO converts a reference surface and its store state to a DTO
func ToSurfaceDTO(surface geodesy.Surface, loaded bool, pointCount int) domain.SurfaceDTO {
	return domain.SurfaceDTO{
		Code:       surface.Code(),
		Name:       surface.Name(),
		Datum:      surface.Datum(),
		FileName:   surface.FileName(),
		Loaded:     loaded,
		PointCount: pointCount,
	}
}

// ToRegionDTO converts the model coverage region to a DTO
func ToRegionDTO(region geodesy.Region) domain.RegionDTO {
	return domain.RegionDTO{
		MinLon: region.MinLon,
		MaxLon: region.MaxLon,
		MinLat: region.MinLat,
		MaxLat: region.MaxLat,
	}
}

// ToTransformJobDTO converts TransformJob to TransformJobDTO
func ToTransformJobDTO(job *domain.TransformJob) domain.TransformJobDTO {
	return domain.TransformJobDTO{
		ID:               job.ID,
		Status:           string(job.Status),
		InputSurface:     job.InputSurface,
		OutputSurface:    job.OutputSurface,
		ValueKind:        job.ValueKind,
		OriginalFilename: job.OriginalFilename,
		TotalPoints:      job.TotalPoints,
		ConvertedPoints:  job.ConvertedPoints,
		OutOfRangePoints: job.OutOfRangePoints,
		Error:            job.Error,
		SubmittedBy:      job.SubmittedBy,
		CreatedAt:        job.CreatedAt.Format(timeFormat),
		StartedAt:        formatTimePtr(job.StartedAt),
		FinishedAt:       formatTimePtr(job.FinishedAt),
	}
}

// ToBenchmarkDTO converts Benchmark to BenchmarkDTO
func ToBenchmarkDTO(benchmark *domain.Benchmark) domain.BenchmarkDTO {
	return domain.BenchmarkDTO{
		ID:             benchmark.ID,
		Designation:    benchmark.Designation,
		Lon:            benchmark.Lon,
		Lat:            benchmark.Lat,
		HeightTWVD2001: benchmark.HeightTWVD2001,
		HeightTWCD2021: benchmark.HeightTWCD2021,
		Order:          benchmark.Order,
		Agency:         benchmark.Agency,
		Description:    benchmark.Description,
		CreatedAt:      benchmark.CreatedAt.Format(timeFormat),
		UpdatedAt:      benchmark.UpdatedAt.Format(timeFormat),
	}
}

// ToNearestBenchmarkDTO converts a benchmark with its great-circle distance
func ToNearestBenchmarkDTO(benchmark *domain.Benchmark, distanceKm float64) domain.NearestBenchmarkDTO {
	return domain.NearestBenchmarkDTO{
		BenchmarkDTO: ToBenchmarkDTO(benchmark),
		DistanceKm:   distanceKm,
	}
}

// ToTideGaugeDTO converts TideGauge to TideGaugeDTO, including levels when
// they are loaded
func ToTideGaugeDTO(gauge *domain.TideGauge) domain.TideGaugeDTO {
	dto := domain.TideGaugeDTO{
		ID:          gauge.ID,
		StationCode: gauge.StationCode,
		Name:        gauge.Name,
		Lon:         gauge.Lon,
		Lat:         gauge.Lat,
		Operator:    gauge.Operator,
		FirstYear:   gauge.FirstYear,
		LastYear:    gauge.LastYear,
		Active:      gauge.Active,
	}
	for i := range gauge.Levels {
		dto.Levels = append(dto.Levels, ToTideGaugeLevelDTO(&gauge.Levels[i]))
	}
	return dto
}

// ToTideGaugeLevelDTO converts TideGaugeLevel to TideGaugeLevelDTO
func ToTideGaugeLevelDTO(level *domain.TideGaugeLevel) domain.TideGaugeLevelDTO {
	return domain.TideGaugeLevelDTO{
		Surface: level.Surface,
		Height:  level.Height,
		Epoch:   level.Epoch,
	}
}
