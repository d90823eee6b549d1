package repository_test

import (
	"context"
	"testing"

	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/repository"
	"github.com/skyflying/vertical-datum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTideGaugeRepository_GetByStationCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTideGaugeRepository(db)

	created := testutil.CreateTestTideGauge(t, db, "1102", "Keelung", 121.7405, 25.1553)

	found, err := repo.GetByStationCode(context.Background(), "1102")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Keelung", found.Name)

	_, err = repo.GetByStationCode(context.Background(), "9999")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTideGaugeRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTideGaugeRepository(db)

	testutil.CreateTestTideGauge(t, db, "1102", "Keelung", 121.7405, 25.1553)
	inactive := testutil.CreateTestTideGauge(t, db, "1401", "Kaohsiung", 120.2882, 22.6147)
	inactive.Active = false
	require.NoError(t, db.Save(inactive).Error)

	gauges, total, err := repo.List(context.Background(), 1, 10, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, gauges, 2)
	assert.Equal(t, "1102", gauges[0].StationCode, "ordered by station code")

	gauges, total, err = repo.List(context.Background(), 1, 10, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, gauges, 1)
	assert.Equal(t, "1102", gauges[0].StationCode)
}

func TestTideGaugeRepository_Upsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTideGaugeRepository(db)

	gauge := &domain.TideGauge{
		StationCode: "1116",
		Name:        "Hualien",
		Lon:         121.6225,
		Lat:         23.9817,
		FirstYear:   1960,
		LastYear:    2020,
		Active:      true,
	}
	require.NoError(t, repo.Upsert(context.Background(), gauge))
	firstID := gauge.ID

	// Second sync with updated fields must match the existing record
	updated := &domain.TideGauge{
		StationCode: "1116",
		Name:        "Hualien Harbor",
		Lon:         121.6225,
		Lat:         23.9817,
		FirstYear:   1960,
		LastYear:    2023,
		Active:      true,
	}
	require.NoError(t, repo.Upsert(context.Background(), updated))
	assert.Equal(t, firstID, updated.ID)

	var count int64
	require.NoError(t, db.Model(&domain.TideGauge{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	found, err := repo.GetByStationCode(context.Background(), "1116")
	require.NoError(t, err)
	assert.Equal(t, "Hualien Harbor", found.Name)
	assert.Equal(t, 2023, found.LastYear)
}

func TestTideGaugeRepository_ReplaceLevels(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTideGaugeRepository(db)

	gauge := testutil.CreateTestTideGauge(t, db, "1102", "Keelung", 121.7405, 25.1553)

	first := []domain.TideGaugeLevel{
		{Surface: "MSS", Height: 0.102, Epoch: "2005.0"},
		{Surface: "LAT", Height: -0.781, Epoch: "2005.0"},
	}
	require.NoError(t, repo.ReplaceLevels(context.Background(), gauge.ID, first))

	second := []domain.TideGaugeLevel{
		{Surface: "MSS", Height: 0.115, Epoch: "2012.0"},
		{Surface: "HAT", Height: 0.842, Epoch: "2012.0"},
		{Surface: "LAT", Height: -0.793, Epoch: "2012.0"},
	}
	require.NoError(t, repo.ReplaceLevels(context.Background(), gauge.ID, second))

	levels, err := repo.ListLevels(context.Background(), gauge.ID)
	require.NoError(t, err)
	require.Len(t, levels, 3, "old levels are replaced, not appended")
	assert.Equal(t, "HAT", levels[0].Surface, "ordered by surface")
	for _, level := range levels {
		assert.Equal(t, "2012.0", level.Epoch)
	}
}

func TestTideGaugeRepository_Delete_CascadesLevels(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTideGaugeRepository(db)

	gauge := testutil.CreateTestTideGauge(t, db, "1102", "Keelung", 121.7405, 25.1553)
	require.NoError(t, repo.ReplaceLevels(context.Background(), gauge.ID, []domain.TideGaugeLevel{
		{Surface: "MSS", Height: 0.1},
	}))

	require.NoError(t, repo.Delete(context.Background(), gauge.ID))

	_, err := repo.GetByID(context.Background(), gauge.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.TideGaugeLevel{}).Count(&count).Error)
	assert.Zero(t, count)
}
