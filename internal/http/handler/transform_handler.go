package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/service"
	"go.uber.org/zap"
)

// TransformHandler handles synchronous transform requests
type TransformHandler struct {
	transformService *service.TransformService
	logger           *zap.Logger
}

// NewTransformHandler creates a new TransformHandler instance
func NewTransformHandler(transformService *service.TransformService, logger *zap.Logger) *TransformHandler {
	return &TransformHandler{
		transformService: transformService,
		logger:           logger,
	}
}

// Point godoc
// @Summary Transform a single point
// @Description Convert one depth or ellipsoidal height between two vertical reference surfaces
// @Tags Transform
// @Accept json
// @Produce json
// @Param request body domain.TransformRequest true "Transform request"
// @Success 200 {object} domain.TransformResponse
// @Failure 400 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Router /transform [post]
func (h *TransformHandler) Point(w http.ResponseWriter, r *http.Request) {
	var req domain.TransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.transformService.Point(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownSurface),
			errors.Is(err, service.ErrSameSurface),
			errors.Is(err, service.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrOutOfRegion):
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.Error("transform failed", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Transform failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Batch godoc
// @Summary Transform a batch of points
// @Description Convert up to 10000 inline points between two vertical reference surfaces. Points outside the model coverage get a null output.
// @Tags Transform
// @Accept json
// @Produce json
// @Param request body domain.BatchTransformRequest true "Batch transform request"
// @Success 200 {object} domain.BatchTransformResponse
// @Failure 400 {object} domain.APIError
// @Router /transform/batch [post]
func (h *TransformHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req domain.BatchTransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.transformService.Batch(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownSurface),
			errors.Is(err, service.ErrSameSurface),
			errors.Is(err, service.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("batch transform failed", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Batch transform failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
