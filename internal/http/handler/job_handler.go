package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skyflying/vertical-datum/internal/auth"
	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/service"
	"go.uber.org/zap"
)

// validJobStatuses contains all valid job status filter values
var validJobStatuses = map[string]bool{
	string(domain.JobStatusPending):   true,
	string(domain.JobStatusRunning):   true,
	string(domain.JobStatusCompleted): true,
	string(domain.JobStatusFailed):    true,
}

// JobHandler handles HTTP requests for asynchronous file transform jobs
type JobHandler struct {
	jobService    *service.JobService
	maxUploadSize int64
	logger        *zap.Logger
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(jobService *service.JobService, maxUploadSizeMB int64, logger *zap.Logger) *JobHandler {
	if maxUploadSizeMB < 1 {
		maxUploadSizeMB = 50
	}
	return &JobHandler{
		jobService:    jobService,
		maxUploadSize: maxUploadSizeMB << 20,
		logger:        logger,
	}
}

// Submit godoc
// @Summary Submit a file transform job
// @Description Upload an .xyz sounding file for asynchronous conversion between two vertical reference surfaces
// @Tags Jobs
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Whitespace-delimited lon lat value file"
// @Param inputSurface formData string true "Input surface code"
// @Param outputSurface formData string true "Output surface code"
// @Param valueKind formData string true "Value kind" Enums(depth, ellipsoidal)
// @Success 202 {object} domain.TransformJobDTO
// @Failure 400 {object} domain.APIError
// @Failure 413 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /jobs [post]
func (h *JobHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Upload exceeds the %d MB limit", h.maxUploadSize>>20))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	if filename == "" || filename == "." {
		filename = "input.xyz"
	}

	params := service.SubmitParams{
		InputSurface:  r.FormValue("inputSurface"),
		OutputSurface: r.FormValue("outputSurface"),
		ValueKind:     r.FormValue("valueKind"),
		Filename:      filename,
	}
	if params.InputSurface == "" || params.OutputSurface == "" || params.ValueKind == "" {
		respondWithError(w, http.StatusBadRequest, "inputSurface, outputSurface and valueKind are required")
		return
	}
	if userCtx, ok := auth.FromContext(r.Context()); ok {
		params.SubmittedBy = userCtx.Subject
	}

	job, err := h.jobService.Submit(r.Context(), params, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownSurface),
			errors.Is(err, service.ErrSameSurface),
			errors.Is(err, service.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to submit job", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to submit job")
		}
		return
	}

	respondJSON(w, http.StatusAccepted, job)
}

// List godoc
// @Summary List transform jobs
// @Description Get paginated list of file transform jobs
// @Tags Jobs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param status query string false "Filter by status" Enums(pending, running, completed, failed)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.TransformJobDTO}
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /jobs [get]
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}

	status := r.URL.Query().Get("status")
	if status != "" && !validJobStatuses[status] {
		respondWithError(w, http.StatusBadRequest,
			"Invalid status: must be one of pending, running, completed, failed")
		return
	}

	result, err := h.jobService.List(r.Context(), page, pageSize, status)
	if err != nil {
		h.logger.Error("failed to list jobs", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get transform job
// @Description Get a file transform job by its ID
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID" format(uuid)
// @Success 200 {object} domain.TransformJobDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /jobs/{id} [get]
func (h *JobHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	job, err := h.jobService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("failed to get job", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get job")
		return
	}

	respondJSON(w, http.StatusOK, job)
}

// Result godoc
// @Summary Download job result
// @Description Download the converted .xyz file of a completed job
// @Tags Jobs
// @Produce text/plain
// @Param id path string true "Job ID" format(uuid)
// @Success 200 {file} file
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /jobs/{id}/result [get]
func (h *JobHandler) Result(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	reader, job, err := h.jobService.Result(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Job not found")
		case errors.Is(err, service.ErrJobNotFinished):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("failed to read job result", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to read job result")
		}
		return
	}
	defer reader.Close()

	name := job.OriginalFilename
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext) + "_converted" + ext
	} else {
		name += "_converted.xyz"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("failed to stream job result",
			zap.String("jobID", id.String()),
			zap.Error(err),
		)
	}
}

// Delete godoc
// @Summary Delete transform job
// @Description Delete a job and its stored files
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("failed to delete job", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete job")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
