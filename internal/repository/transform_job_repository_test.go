package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/repository"
	"github.com/skyflying/vertical-datum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTransformJobRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTransformJobRepository(db)

	job := &domain.TransformJob{
		InputSurface:     "EL",
		OutputSurface:    "LAT",
		ValueKind:        "ellipsoidal",
		Status:           domain.JobStatusPending,
		OriginalFilename: "multibeam.xyz",
		InputPath:        "ab/cd/in.xyz",
		SubmittedBy:      "surveyor@example.com",
	}
	require.NoError(t, repo.Create(context.Background(), job))

	found, err := repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, found.Status)
	assert.Equal(t, "multibeam.xyz", found.OriginalFilename)
	assert.Nil(t, found.StartedAt)
}

func TestTransformJobRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTransformJobRepository(db)

	testutil.CreateTestJob(t, db, domain.JobStatusPending)
	testutil.CreateTestJob(t, db, domain.JobStatusCompleted)
	testutil.CreateTestJob(t, db, domain.JobStatusCompleted)

	t.Run("all", func(t *testing.T) {
		jobs, total, err := repo.List(context.Background(), 1, 10, "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, jobs, 3)
	})

	t.Run("by status", func(t *testing.T) {
		jobs, total, err := repo.List(context.Background(), 1, 10, string(domain.JobStatusCompleted))
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, jobs, 2)
	})
}

func TestTransformJobRepository_MarkRunning(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTransformJobRepository(db)

	job := testutil.CreateTestJob(t, db, domain.JobStatusPending)
	require.NoError(t, repo.MarkRunning(context.Background(), job.ID))

	found, err := repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusRunning, found.Status)
	require.NotNil(t, found.StartedAt)

	// A second MarkRunning is a no-op: the guard only matches pending jobs
	firstStart := *found.StartedAt
	require.NoError(t, repo.MarkRunning(context.Background(), job.ID))
	found, err = repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, firstStart.Unix(), found.StartedAt.Unix())
}

func TestTransformJobRepository_ListExpired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTransformJobRepository(db)

	old := testutil.CreateTestJob(t, db, domain.JobStatusCompleted)
	require.NoError(t, db.Model(old).Update("created_at", time.Now().UTC().Add(-96*time.Hour)).Error)
	testutil.CreateTestJob(t, db, domain.JobStatusCompleted)
	stillPending := testutil.CreateTestJob(t, db, domain.JobStatusPending)
	require.NoError(t, db.Model(stillPending).Update("created_at", time.Now().UTC().Add(-96*time.Hour)).Error)

	cutoff := time.Now().UTC().Add(-72 * time.Hour)
	expired, err := repo.ListExpired(context.Background(), cutoff)
	require.NoError(t, err)
	require.Len(t, expired, 1, "pending jobs never expire, recent jobs are kept")
	assert.Equal(t, old.ID, expired[0].ID)
}

func TestTransformJobRepository_ResetStale(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTransformJobRepository(db)

	running := testutil.CreateTestJob(t, db, domain.JobStatusRunning)
	testutil.CreateTestJob(t, db, domain.JobStatusCompleted)

	n, err := repo.ResetStale(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	found, err := repo.GetByID(context.Background(), running.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, found.Status)
	assert.Nil(t, found.StartedAt)
}

func TestTransformJobRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTransformJobRepository(db)

	job := testutil.CreateTestJob(t, db, domain.JobStatusCompleted)
	require.NoError(t, repo.Delete(context.Background(), job.ID))

	_, err := repo.GetByID(context.Background(), job.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
