package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/service"
	"go.uber.org/zap"
)

// BenchmarkHandler handles HTTP requests for the levelling benchmark catalogue
type BenchmarkHandler struct {
	benchmarkService *service.BenchmarkService
	logger           *zap.Logger
}

// NewBenchmarkHandler creates a new BenchmarkHandler instance
func NewBenchmarkHandler(benchmarkService *service.BenchmarkService, logger *zap.Logger) *BenchmarkHandler {
	return &BenchmarkHandler{
		benchmarkService: benchmarkService,
		logger:           logger,
	}
}

// List godoc
// @Summary List benchmarks
// @Description Get paginated list of levelling benchmarks
// @Tags Benchmarks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param agency query string false "Filter by maintaining agency"
// @Param order query string false "Filter by levelling order"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.BenchmarkDTO}
// @Router /benchmarks [get]
func (h *BenchmarkHandler) List(w http.ResponseWriter, r *http.Request) {
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

	agency := r.URL.Query().Get("agency")
	order := r.URL.Query().Get("order")

	result, err := h.benchmarkService.List(r.Context(), page, pageSize, agency, order)
	if err != nil {
		h.logger.Error("failed to list benchmarks", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list benchmarks")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Nearest godoc
// @Summary Find nearest benchmarks
// @Description Get benchmarks ranked by great-circle distance from a query point
// @Tags Benchmarks
// @Produce json
// @Param lon query number true "Longitude (decimal degrees)"
// @Param lat query number true "Latitude (decimal degrees)"
// @Param limit query int false "Maximum results (max 50)" default(5)
// @Success 200 {array} domain.NearestBenchmarkDTO
// @Failure 400 {object} domain.APIError
// @Router /benchmarks/nearest [get]
func (h *BenchmarkHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "lon must be a number")
		return
	}
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "lat must be a number")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 5
	}

	result, err := h.benchmarkService.Nearest(r.Context(), lon, lat, limit)
	if err != nil {
		h.logger.Error("failed to find nearest benchmarks", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to find nearest benchmarks")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get benchmark
// @Description Get a benchmark by its ID
// @Tags Benchmarks
// @Produce json
// @Param id path string true "Benchmark ID" format(uuid)
// @Success 200 {object} domain.BenchmarkDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /benchmarks/{id} [get]
func (h *BenchmarkHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid benchmark ID format")
		return
	}

	benchmark, err := h.benchmarkService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Benchmark not found")
			return
		}
		h.logger.Error("failed to get benchmark", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get benchmark")
		return
	}

	respondJSON(w, http.StatusOK, benchmark)
}

// Create godoc
// @Summary Create benchmark
// @Description Register a new levelling benchmark
// @Tags Benchmarks
// @Accept json
// @Produce json
// @Param request body domain.CreateBenchmarkRequest true "Benchmark"
// @Success 201 {object} domain.BenchmarkDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /benchmarks [post]
func (h *BenchmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBenchmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	benchmark, err := h.benchmarkService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			respondWithError(w, http.StatusConflict, err.Error())
			return
		}
		h.logger.Error("failed to create benchmark", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create benchmark")
		return
	}

	respondJSON(w, http.StatusCreated, benchmark)
}

// Update godoc
// @Summary Update benchmark
// @Description Update mutable fields of a benchmark
// @Tags Benchmarks
// @Accept json
// @Produce json
// @Param id path string true "Benchmark ID" format(uuid)
// @Param request body domain.UpdateBenchmarkRequest true "Fields to update"
// @Success 200 {object} domain.BenchmarkDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /benchmarks/{id} [put]
func (h *BenchmarkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid benchmark ID format")
		return
	}

	var req domain.UpdateBenchmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	benchmark, err := h.benchmarkService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Benchmark not found")
			return
		}
		h.logger.Error("failed to update benchmark", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update benchmark")
		return
	}

	respondJSON(w, http.StatusOK, benchmark)
}

// Delete godoc
// @Summary Delete benchmark
// @Description Remove a benchmark from the catalogue
// @Tags Benchmarks
// @Produce json
// @Param id path string true "Benchmark ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /benchmarks/{id} [delete]
func (h *BenchmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid benchmark ID format")
		return
	}

	if err := h.benchmarkService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Benchmark not found")
			return
		}
		h.logger.Error("failed to delete benchmark", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete benchmark")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
