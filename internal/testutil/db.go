// Package testutil provides shared helpers for package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with the full schema
// migrated. Each call gets its own database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database.
	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err, "Failed to open in-memory test database")

	err = db.AutoMigrate(
		&domain.TransformJob{},
		&domain.Benchmark{},
		&domain.TideGauge{},
		&domain.TideGaugeLevel{},
	)
	require.NoError(t, err)

	return db
}

// CreateTestBenchmark creates a benchmark at the given coordinate
func CreateTestBenchmark(t *testing.T, db *gorm.DB, designation string, lon, lat float64) *domain.Benchmark {
	t.Helper()
	h := 12.345
	benchmark := &domain.Benchmark{
		Designation:    designation,
		Lon:            lon,
		Lat:            lat,
		HeightTWVD2001: &h,
		Order:          "1st",
		Agency:         "NLSC",
	}
	require.NoError(t, db.Create(benchmark).Error)
	return benchmark
}

// CreateTestTideGauge creates a tide gauge with a unique station code
func CreateTestTideGauge(t *testing.T, db *gorm.DB, code, name string, lon, lat float64) *domain.TideGauge {
	t.Helper()
	gauge := &domain.TideGauge{
		StationCode: code,
		Name:        name,
		Lon:         lon,
		Lat:         lat,
		Operator:    "CWA",
		FirstYear:   1990,
		LastYear:    2023,
		Active:      true,
	}
	require.NoError(t, db.Create(gauge).Error)
	return gauge
}

// CreateTestJob creates a transform job in the given status
func CreateTestJob(t *testing.T, db *gorm.DB, status domain.JobStatus) *domain.TransformJob {
	t.Helper()
	job := &domain.TransformJob{
		InputSurface:     "MSS",
		OutputSurface:    "LAT",
		ValueKind:        "depth",
		Status:           status,
		OriginalFilename: fmt.Sprintf("survey_%d.xyz", time.Now().UnixNano()),
		InputPath:        "ab/cd/input.xyz",
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
