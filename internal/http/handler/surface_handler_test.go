package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/http/handler"
	"github.com/skyflying/vertical-datum/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSurfaceRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := service.NewSurfaceService(newTestSurfaceStore(t), zap.NewNop())
	h := handler.NewSurfaceHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/surfaces", h.List)
	r.Get("/surfaces/{code}", h.Get)
	return r
}

func TestSurfaceHandler_List(t *testing.T) {
	router := newSurfaceRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/surfaces", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Surfaces []domain.SurfaceDTO `json:"surfaces"`
		Region   domain.RegionDTO    `json:"region"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Surfaces, 8)
	assert.InDelta(t, 118.0, resp.Region.MinLon, 1e-9)
	assert.InDelta(t, 27.0, resp.Region.MaxLat, 1e-9)

	codes := make([]string, 0, len(resp.Surfaces))
	for _, s := range resp.Surfaces {
		codes = append(codes, s.Code)
	}
	assert.Contains(t, codes, "MSS")
	assert.Contains(t, codes, "EL")
}

func TestSurfaceHandler_Get(t *testing.T) {
	router := newSurfaceRouter(t)

	t.Run("known code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/surfaces/LAT", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var dto domain.SurfaceDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.Equal(t, "LAT", dto.Code)
		assert.Equal(t, "LAT.xyz", dto.FileName)
	})

	t.Run("unknown code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/surfaces/NAVD88", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
