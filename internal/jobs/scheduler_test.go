package jobs_test

import (
	"testing"

	"github.com/skyflying/vertical-datum/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduler_AddJob(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	err := s.AddJob("cleanup", "0 30 * * * *", func() {})
	require.NoError(t, err)

	assert.Contains(t, s.GetJobNames(), "cleanup")
}

func TestScheduler_AddJob_Duplicate(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	err := s.AddJob("cleanup", "0 30 * * * *", func() {})
	require.NoError(t, err)

	err = s.AddJob("cleanup", "0 45 * * * *", func() {})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestScheduler_AddJob_InvalidCronExpr(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	err := s.AddJob("broken", "not a cron expression", func() {})
	assert.Error(t, err)
	assert.Empty(t, s.GetJobNames())
}

func TestScheduler_RemoveJob(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("tide_sync", "0 0 3 * * *", func() {}))
	require.NoError(t, s.RemoveJob("tide_sync"))

	assert.NotContains(t, s.GetJobNames(), "tide_sync")
}

func TestScheduler_RemoveJob_NotFound(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	err := s.RemoveJob("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestScheduler_GetJobNames(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("job_cleanup", "0 30 * * * *", func() {}))
	require.NoError(t, s.AddJob("tide_sync", "0 0 3 * * *", func() {}))

	names := s.GetJobNames()
	assert.Len(t, names, 2)
	assert.Contains(t, names, "job_cleanup")
	assert.Contains(t, names, "tide_sync")
}

func TestScheduler_StartStop(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())
	require.NoError(t, s.AddJob("noop", "@every 1h", func() {}))

	s.Start()
	ctx := s.Stop()

	// Stop returns a context that closes when running jobs finish
	<-ctx.Done()
}
