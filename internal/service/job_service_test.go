package service_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/repository"
	"github.com/skyflying/vertical-datum/internal/service"
	"github.com/skyflying/vertical-datum/internal/storage"
	"github.com/skyflying/vertical-datum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newJobService(t *testing.T) (*service.JobService, *repository.TransformJobRepository) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	jobRepo := repository.NewTransformJobRepository(db)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return service.NewJobService(jobRepo, store, newTestTransformer(t), 1, zap.NewNop()), jobRepo
}

func submitTestJob(t *testing.T, svc *service.JobService, content string) *domain.TransformJobDTO {
	t.Helper()
	dto, err := svc.Submit(context.Background(), service.SubmitParams{
		InputSurface:  "MSS",
		OutputSurface: "LAT",
		ValueKind:     "depth",
		Filename:      "soundings.xyz",
		SubmittedBy:   "surveyor@example.com",
	}, strings.NewReader(content))
	require.NoError(t, err)
	return dto
}

func waitForStatus(t *testing.T, svc *service.JobService, id uuid.UUID, status string) *domain.TransformJobDTO {
	t.Helper()
	var dto *domain.TransformJobDTO
	require.Eventually(t, func() bool {
		var err error
		dto, err = svc.GetByID(context.Background(), id)
		return err == nil && dto.Status == status
	}, 5*time.Second, 20*time.Millisecond, "job never reached status %s", status)
	return dto
}

func TestJobService_SubmitAndProcess(t *testing.T) {
	svc, _ := newJobService(t)
	svc.Start(context.Background())
	defer svc.Stop()

	dto := submitTestJob(t, svc, "121.5 24.0 10.0\n135.0 24.0 10.0\n119.0 22.0 5.0\n")
	assert.Equal(t, string(domain.JobStatusPending), dto.Status)

	done := waitForStatus(t, svc, dto.ID, string(domain.JobStatusCompleted))
	assert.Equal(t, 3, done.TotalPoints)
	assert.Equal(t, 2, done.ConvertedPoints)
	assert.Equal(t, 1, done.OutOfRangePoints)
	assert.NotEmpty(t, done.StartedAt)
	assert.NotEmpty(t, done.FinishedAt)
}

func TestJobService_Submit_Invalid(t *testing.T) {
	svc, _ := newJobService(t)

	t.Run("unknown surface", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), service.SubmitParams{
			InputSurface:  "NAVD88",
			OutputSurface: "LAT",
			ValueKind:     "depth",
			Filename:      "a.xyz",
		}, strings.NewReader("x"))
		assert.ErrorIs(t, err, service.ErrUnknownSurface)
	})

	t.Run("same surface", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), service.SubmitParams{
			InputSurface:  "MSS",
			OutputSurface: "MSS",
			ValueKind:     "depth",
			Filename:      "a.xyz",
		}, strings.NewReader("x"))
		assert.ErrorIs(t, err, service.ErrSameSurface)
	})
}

func TestJobService_EmptyInputFails(t *testing.T) {
	svc, _ := newJobService(t)
	svc.Start(context.Background())
	defer svc.Stop()

	dto := submitTestJob(t, svc, "not a point file\n")
	failed := waitForStatus(t, svc, dto.ID, string(domain.JobStatusFailed))
	assert.NotEmpty(t, failed.Error)
}

func TestJobService_Result(t *testing.T) {
	svc, _ := newJobService(t)
	svc.Start(context.Background())
	defer svc.Stop()

	dto := submitTestJob(t, svc, "121.5 24.0 10.0\n")

	waitForStatus(t, svc, dto.ID, string(domain.JobStatusCompleted))

	rc, resultDTO, err := svc.Result(context.Background(), dto.ID)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "8.200")
	assert.Equal(t, "soundings.xyz", resultDTO.OriginalFilename)
}

func TestJobService_Result_NotFinished(t *testing.T) {
	// No workers started: the job stays pending
	svc, _ := newJobService(t)

	dto := submitTestJob(t, svc, "121.5 24.0 10.0\n")

	_, _, err := svc.Result(context.Background(), dto.ID)
	assert.ErrorIs(t, err, service.ErrJobNotFinished)
}

func TestJobService_Delete(t *testing.T) {
	svc, _ := newJobService(t)
	svc.Start(context.Background())
	defer svc.Stop()

	dto := submitTestJob(t, svc, "121.5 24.0 10.0\n")
	waitForStatus(t, svc, dto.ID, string(domain.JobStatusCompleted))

	require.NoError(t, svc.Delete(context.Background(), dto.ID))

	_, err := svc.GetByID(context.Background(), dto.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestJobService_CleanupExpired(t *testing.T) {
	svc, jobRepo := newJobService(t)
	svc.Start(context.Background())
	defer svc.Stop()

	dto := submitTestJob(t, svc, "121.5 24.0 10.0\n")
	waitForStatus(t, svc, dto.ID, string(domain.JobStatusCompleted))

	// Not yet expired
	n, err := svc.CleanupExpired(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Age the job past the retention window
	job, err := jobRepo.GetByID(context.Background(), dto.ID)
	require.NoError(t, err)
	job.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
	require.NoError(t, jobRepo.Update(context.Background(), job))

	n, err = svc.CleanupExpired(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.GetByID(context.Background(), dto.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestJobService_ResumesPendingOnStart(t *testing.T) {
	svc, _ := newJobService(t)

	// Submitted before any worker is running
	dto := submitTestJob(t, svc, "121.5 24.0 10.0\n")

	svc.Start(context.Background())
	defer svc.Stop()

	waitForStatus(t, svc, dto.ID, string(domain.JobStatusCompleted))
}
