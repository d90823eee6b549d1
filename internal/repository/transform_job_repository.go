package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/skyflying/vertical-datum/internal/domain"
	"gorm.io/gorm"
)

type TransformJobRepository struct {
	db *gorm.DB
}

func NewTransformJobRepository(db *gorm.DB) *TransformJobRepository {
	return &TransformJobRepository{db: db}
}

func (r *TransformJobRepository) Create(ctx context.Context, job *domain.TransformJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *TransformJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TransformJob, error) {
	var job domain.TransformJob
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *TransformJobRepository) List(ctx context.Context, page, pageSize int, status string) ([]domain.TransformJob, int64, error) {
	var jobs []domain.TransformJob
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.TransformJob{})

	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&jobs).Error

	return jobs, total, err
}

func (r *TransformJobRepository) Update(ctx context.Context, job *domain.TransformJob) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// MarkRunning transitions a pending job to running and stamps the start time
func (r *TransformJobRepository) MarkRunning(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&domain.TransformJob{}).
		Where("id = ? AND status = ?", id, domain.JobStatusPending).
		Updates(map[string]interface{}{
			"status":     domain.JobStatusRunning,
			"started_at": now,
		}).Error
}

func (r *TransformJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.TransformJob{}, "id = ?", id).Error
}

// ListExpired returns finished jobs older than the cutoff, for cleanup
func (r *TransformJobRepository) ListExpired(ctx context.Context, cutoff time.Time) ([]domain.TransformJob, error) {
	var jobs []domain.TransformJob
	err := r.db.WithContext(ctx).
		Where("status IN ? AND created_at < ?",
			[]string{string(domain.JobStatusCompleted), string(domain.JobStatusFailed)}, cutoff).
		Find(&jobs).Error
	return jobs, err
}

// ResetStale returns jobs stuck in running back to pending. Called at
// startup after an unclean shutdown.
func (r *TransformJobRepository) ResetStale(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.TransformJob{}).
		Where("status = ?", domain.JobStatusRunning).
		Updates(map[string]interface{}{
			"status":     domain.JobStatusPending,
			"started_at": nil,
		})
	return result.RowsAffected, result.Error
}
