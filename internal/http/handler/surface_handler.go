package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skyflying/vertical-datum/internal/service"
	"go.uber.org/zap"
)

// SurfaceHandler handles HTTP requests for the reference surface catalogue
type SurfaceHandler struct {
	surfaceService *service.SurfaceService
	logger         *zap.Logger
}

// NewSurfaceHandler creates a new SurfaceHandler instance
func NewSurfaceHandler(surfaceService *service.SurfaceService, logger *zap.Logger) *SurfaceHandler {
	return &SurfaceHandler{
		surfaceService: surfaceService,
		logger:         logger,
	}
}

type surfaceListResponse struct {
	Surfaces interface{} `json:"surfaces"`
	Region   interface{} `json:"region"`
}

// List godoc
// @Summary List reference surfaces
// @Description Get all vertical reference surfaces with their load state and the model coverage region
// @Tags Surfaces
// @Produce json
// @Success 200 {object} surfaceListResponse
// @Router /surfaces [get]
func (h *SurfaceHandler) List(w http.ResponseWriter, r *http.Request) {
	surfaces, region := h.surfaceService.List()
	respondJSON(w, http.StatusOK, surfaceListResponse{
		Surfaces: surfaces,
		Region:   region,
	})
}

// Get godoc
// @Summary Get reference surface
// @Description Get one vertical reference surface by its code (MSS, HAT, MHW, MLW, LAT, ISLW, Geoid, EL)
// @Tags Surfaces
// @Produce json
// @Param code path string true "Surface code"
// @Success 200 {object} domain.SurfaceDTO
// @Failure 404 {object} domain.APIError
// @Router /surfaces/{code} [get]
func (h *SurfaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	surface, err := h.surfaceService.Get(code)
	if err != nil {
		if errors.Is(err, service.ErrUnknownSurface) {
			respondWithError(w, http.StatusNotFound, "Unknown surface code: "+code)
			return
		}
		h.logger.Error("failed to get surface", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get surface")
		return
	}

	respondJSON(w, http.StatusOK, surface)
}
