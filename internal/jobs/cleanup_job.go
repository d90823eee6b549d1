package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CleanupJobName is the name of the expired job cleanup job
const CleanupJobName = "job_cleanup"

// JobCleaner removes finished transform jobs older than the retention window.
// The interface lets the job call the service without importing the service
// package directly.
type JobCleaner interface {
	CleanupExpired(ctx context.Context, retention time.Duration) (int, error)
}

// CleanupJob deletes expired transform jobs and their stored files.
type CleanupJob struct {
	cleaner   JobCleaner
	retention time.Duration
	timeout   time.Duration
	logger    *zap.Logger
}

// NewCleanupJob creates a new cleanup job. The timeout bounds one run.
func NewCleanupJob(cleaner JobCleaner, retention, timeout time.Duration, logger *zap.Logger) *CleanupJob {
	return &CleanupJob{
		cleaner:   cleaner,
		retention: retention,
		timeout:   timeout,
		logger:    logger,
	}
}

// Run executes the cleanup job.
func (j *CleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	removed, err := j.cleaner.CleanupExpired(ctx, j.retention)
	if err != nil {
		j.logger.Error("job cleanup failed", zap.Error(err))
		return
	}

	if removed > 0 {
		j.logger.Info("expired transform jobs removed",
			zap.Int("removed", removed),
			zap.Duration("retention", j.retention),
		)
	}
}
