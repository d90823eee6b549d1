package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skyflying/vertical-datum/internal/service"
	"go.uber.org/zap"
)

// TideGaugeHandler handles HTTP requests for the tide station catalogue
type TideGaugeHandler struct {
	gaugeService *service.TideGaugeService
	logger       *zap.Logger
}

// NewTideGaugeHandler creates a new TideGaugeHandler instance
func NewTideGaugeHandler(gaugeService *service.TideGaugeService, logger *zap.Logger) *TideGaugeHandler {
	return &TideGaugeHandler{
		gaugeService: gaugeService,
		logger:       logger,
	}
}

// List godoc
// @Summary List tide gauges
// @Description Get paginated list of tide stations
// @Tags TideGauges
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param activeOnly query bool false "Only active stations" default(false)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.TideGaugeDTO}
// @Router /tidegauges [get]
func (h *TideGaugeHandler) List(w http.ResponseWriter, r *http.Request) {
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

	activeOnly := r.URL.Query().Get("activeOnly") == "true"

	result, err := h.gaugeService.List(r.Context(), page, pageSize, activeOnly)
	if err != nil {
		h.logger.Error("failed to list tide gauges", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list tide gauges")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get tide gauge
// @Description Get a tide station with its derived reference levels. Accepts a UUID or a station code.
// @Tags TideGauges
// @Produce json
// @Param id path string true "Tide gauge ID or station code"
// @Success 200 {object} domain.TideGaugeDTO
// @Failure 404 {object} domain.APIError
// @Router /tidegauges/{id} [get]
func (h *TideGaugeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "id")

	var gauge interface{}
	var err error
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		gauge, err = h.gaugeService.GetByID(r.Context(), id)
	} else {
		gauge, err = h.gaugeService.GetByStationCode(r.Context(), param)
	}
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Tide gauge not found")
			return
		}
		h.logger.Error("failed to get tide gauge", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get tide gauge")
		return
	}

	respondJSON(w, http.StatusOK, gauge)
}

// Levels godoc
// @Summary Get tide gauge reference levels
// @Description Get the derived reference levels (MSS, HAT, MHW, MLW, LAT, ISLW) at a station
// @Tags TideGauges
// @Produce json
// @Param id path string true "Tide gauge ID" format(uuid)
// @Success 200 {array} domain.TideGaugeLevelDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /tidegauges/{id}/levels [get]
func (h *TideGaugeHandler) Levels(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid tide gauge ID format")
		return
	}

	levels, err := h.gaugeService.Levels(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Tide gauge not found")
			return
		}
		h.logger.Error("failed to get reference levels", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get reference levels")
		return
	}

	respondJSON(w, http.StatusOK, levels)
}

// Sync godoc
// @Summary Sync tide gauges from the warehouse
// @Description Pull tide stations and reference levels from the hydrographic warehouse into the local catalogue
// @Tags TideGauges
// @Produce json
// @Success 200 {object} service.SyncResult
// @Failure 503 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /tidegauges/sync [post]
func (h *TideGaugeHandler) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.gaugeService.SyncFromWarehouse(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrWarehouseDisabled) {
			respondWithError(w, http.StatusServiceUnavailable, "Tide warehouse is not enabled")
			return
		}
		h.logger.Error("tide warehouse sync failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Tide warehouse sync failed")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
