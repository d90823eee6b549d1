package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/geodesy"
	"github.com/skyflying/vertical-datum/internal/mapper"
	"github.com/skyflying/vertical-datum/internal/repository"
	"github.com/skyflying/vertical-datum/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// JobService runs asynchronous file transforms. Uploaded .xyz files are
// stored, converted by a bounded worker pool, and the converted files kept
// until the retention window expires.
type JobService struct {
	jobRepo     *repository.TransformJobRepository
	store       storage.Storage
	transformer *geodesy.Transformer
	logger      *zap.Logger

	workers int
	queue   chan uuid.UUID
	wg      sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

// NewJobService creates a new JobService instance
func NewJobService(
	jobRepo *repository.TransformJobRepository,
	store storage.Storage,
	transformer *geodesy.Transformer,
	workers int,
	logger *zap.Logger,
) *JobService {
	if workers < 1 {
		workers = 1
	}
	return &JobService{
		jobRepo:     jobRepo,
		store:       store,
		transformer: transformer,
		logger:      logger,
		workers:     workers,
		queue:       make(chan uuid.UUID, 256),
		done:        make(chan struct{}),
	}
}

// Start launches the worker pool and requeues jobs left over from a
// previous run
func (s *JobService) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		if n, err := s.jobRepo.ResetStale(ctx); err != nil {
			s.logger.Error("failed to reset stale jobs", zap.Error(err))
		} else if n > 0 {
			s.logger.Info("reset stale running jobs", zap.Int64("count", n))
		}

		pending, _, err := s.jobRepo.List(ctx, 1, 256, string(domain.JobStatusPending))
		if err != nil {
			s.logger.Error("failed to list pending jobs", zap.Error(err))
		} else {
			for i := range pending {
				s.enqueue(pending[i].ID)
			}
		}

		for i := 0; i < s.workers; i++ {
			s.wg.Add(1)
			go s.worker()
		}

		s.logger.Info("transform job workers started", zap.Int("workers", s.workers))
	})
}

// Stop drains the worker pool. Queued jobs stay pending and are requeued on
// the next start.
func (s *JobService) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
		s.logger.Info("transform job workers stopped")
	})
}

func (s *JobService) enqueue(id uuid.UUID) {
	select {
	case s.queue <- id:
	default:
		// Queue full; the job stays pending and is picked up after restart
		s.logger.Warn("job queue full, job left pending", zap.String("jobID", id.String()))
	}
}

func (s *JobService) worker() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case id := <-s.queue:
			s.process(context.Background(), id)
		}
	}
}

// SubmitParams describes a file transform job submission
type SubmitParams struct {
	InputSurface  string
	OutputSurface string
	ValueKind     string
	Filename      string
	SubmittedBy   string
}

// Submit stores the uploaded file, records the job and queues it for
// conversion
func (s *JobService) Submit(ctx context.Context, params SubmitParams, data io.Reader) (*domain.TransformJobDTO, error) {
	in, out, kind, err := resolveSelection(params.InputSurface, params.OutputSurface, params.ValueKind)
	if err != nil {
		return nil, err
	}
	if in == out {
		return nil, ErrSameSurface
	}

	inputPath, size, err := s.store.Upload(ctx, params.Filename, "text/plain", data)
	if err != nil {
		return nil, fmt.Errorf("failed to store input file: %w", err)
	}

	job := &domain.TransformJob{
		InputSurface:     in.Code(),
		OutputSurface:    out.Code(),
		ValueKind:        string(kind),
		Status:           domain.JobStatusPending,
		OriginalFilename: params.Filename,
		InputPath:        inputPath,
		SubmittedBy:      params.SubmittedBy,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		_ = s.store.Delete(ctx, inputPath)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.logger.Info("transform job submitted",
		zap.String("jobID", job.ID.String()),
		zap.String("input_surface", job.InputSurface),
		zap.String("output_surface", job.OutputSurface),
		zap.String("filename", params.Filename),
		zap.Int64("size_bytes", size),
	)

	s.enqueue(job.ID)

	dto := mapper.ToTransformJobDTO(job)
	return &dto, nil
}

// process runs one queued job end to end
func (s *JobService) process(ctx context.Context, id uuid.UUID) {
	if err := s.jobRepo.MarkRunning(ctx, id); err != nil {
		s.logger.Error("failed to mark job running", zap.String("jobID", id.String()), zap.Error(err))
		return
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load job", zap.String("jobID", id.String()), zap.Error(err))
		return
	}
	if job.Status != domain.JobStatusRunning {
		// Another worker or a delete got here first
		return
	}

	log := s.logger.With(
		zap.String("jobID", job.ID.String()),
		zap.String("input_surface", job.InputSurface),
		zap.String("output_surface", job.OutputSurface),
	)

	stats, outputPath, err := s.run(ctx, job)

	now := time.Now().UTC()
	job.FinishedAt = &now
	if err != nil {
		job.Status = domain.JobStatusFailed
		job.Error = err.Error()
		log.Error("transform job failed", zap.Error(err))
	} else {
		job.Status = domain.JobStatusCompleted
		job.OutputPath = outputPath
		job.TotalPoints = stats.Total
		job.ConvertedPoints = stats.Converted
		job.OutOfRangePoints = stats.OutOfRange
		log.Info("transform job completed",
			zap.Int("total", stats.Total),
			zap.Int("converted", stats.Converted),
			zap.Int("out_of_range", stats.OutOfRange),
			zap.Duration("duration", now.Sub(*job.StartedAt)),
		)
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		log.Error("failed to persist job result", zap.Error(err))
	}
}

func (s *JobService) run(ctx context.Context, job *domain.TransformJob) (geodesy.BatchStats, string, error) {
	in, out, kind, err := resolveSelection(job.InputSurface, job.OutputSurface, job.ValueKind)
	if err != nil {
		return geodesy.BatchStats{}, "", err
	}

	input, err := s.store.Download(ctx, job.InputPath)
	if err != nil {
		return geodesy.BatchStats{}, "", fmt.Errorf("failed to read input file: %w", err)
	}
	defer input.Close()

	var buf bytes.Buffer
	stats, err := s.transformer.File(in, out, kind, input, &buf)
	if err != nil {
		if errors.Is(err, geodesy.ErrEmptyInput) {
			return geodesy.BatchStats{}, "", ErrEmptyInput
		}
		return geodesy.BatchStats{}, "", err
	}

	outputPath, _, err := s.store.Upload(ctx, "converted_"+job.OriginalFilename, "text/plain", &buf)
	if err != nil {
		return geodesy.BatchStats{}, "", fmt.Errorf("failed to store output file: %w", err)
	}

	return stats, outputPath, nil
}

// GetByID returns a job by ID
func (s *JobService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TransformJobDTO, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	dto := mapper.ToTransformJobDTO(job)
	return &dto, nil
}

// List returns jobs with pagination and optional status filter
func (s *JobService) List(ctx context.Context, page, pageSize int, status string) (*domain.PaginatedResponse, error) {
	jobs, total, err := s.jobRepo.List(ctx, page, pageSize, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	dtos := make([]domain.TransformJobDTO, 0, len(jobs))
	for i := range jobs {
		dtos = append(dtos, mapper.ToTransformJobDTO(&jobs[i]))
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

// Result streams the converted file of a completed job
func (s *JobService) Result(ctx context.Context, id uuid.UUID) (io.ReadCloser, *domain.TransformJobDTO, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get job: %w", err)
	}

	if job.Status != domain.JobStatusCompleted {
		return nil, nil, fmt.Errorf("%w: status is %s", ErrJobNotFinished, job.Status)
	}

	reader, err := s.store.Download(ctx, job.OutputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read result file: %w", err)
	}

	dto := mapper.ToTransformJobDTO(job)
	return reader, &dto, nil
}

// Delete removes a job and its stored files
func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get job: %w", err)
	}

	s.deleteFiles(ctx, job)

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	s.logger.Info("transform job deleted", zap.String("jobID", id.String()))
	return nil
}

// CleanupExpired deletes finished jobs older than the retention window,
// including their stored files. Returns the number of jobs removed.
func (s *JobService) CleanupExpired(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-retention)

	jobs, err := s.jobRepo.ListExpired(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired jobs: %w", err)
	}

	removed := 0
	for i := range jobs {
		s.deleteFiles(ctx, &jobs[i])
		if err := s.jobRepo.Delete(ctx, jobs[i].ID); err != nil {
			s.logger.Error("failed to delete expired job",
				zap.String("jobID", jobs[i].ID.String()),
				zap.Error(err),
			)
			continue
		}
		removed++
	}

	return removed, nil
}

func (s *JobService) deleteFiles(ctx context.Context, job *domain.TransformJob) {
	if job.InputPath != "" {
		if err := s.store.Delete(ctx, job.InputPath); err != nil {
			s.logger.Warn("failed to delete input file",
				zap.String("jobID", job.ID.String()),
				zap.Error(err),
			)
		}
	}
	if job.OutputPath != "" {
		if err := s.store.Delete(ctx, job.OutputPath); err != nil {
			s.logger.Warn("failed to delete output file",
				zap.String("jobID", job.ID.String()),
				zap.Error(err),
			)
		}
	}
}
