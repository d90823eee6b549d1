package jobs

import (
	"context"
	"time"

	"github.com/skyflying/vertical-datum/internal/service"
	"go.uber.org/zap"
)

// TideSyncJobName is the name of the tide warehouse sync job
const TideSyncJobName = "tide_sync"

// StationSyncer pulls tide stations and reference levels from the warehouse.
type StationSyncer interface {
	SyncFromWarehouse(ctx context.Context) (*service.SyncResult, error)
}

// TideSyncJob refreshes the local tide gauge catalogue from the warehouse.
type TideSyncJob struct {
	syncer  StationSyncer
	timeout time.Duration
	logger  *zap.Logger
}

// NewTideSyncJob creates a new tide warehouse sync job.
func NewTideSyncJob(syncer StationSyncer, timeout time.Duration, logger *zap.Logger) *TideSyncJob {
	return &TideSyncJob{
		syncer:  syncer,
		timeout: timeout,
		logger:  logger,
	}
}

// Run executes the sync job.
func (j *TideSyncJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	result, err := j.syncer.SyncFromWarehouse(ctx)
	if err != nil {
		j.logger.Error("tide warehouse sync failed", zap.Error(err))
		return
	}

	j.logger.Info("tide warehouse sync finished",
		zap.Int("stations", result.Stations),
		zap.Int("levels", result.Levels),
		zap.Int("failed", result.Failed),
	)
}
