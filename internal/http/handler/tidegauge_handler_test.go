package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/http/handler"
	"github.com/skyflying/vertical-datum/internal/repository"
	"github.com/skyflying/vertical-datum/internal/service"
	"github.com/skyflying/vertical-datum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTideGaugeRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := service.NewTideGaugeService(repository.NewTideGaugeRepository(db), zap.NewNop())
	h := handler.NewTideGaugeHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/tidegauges", h.List)
	r.Post("/tidegauges/sync", h.Sync)
	r.Get("/tidegauges/{id}", h.GetByID)
	r.Get("/tidegauges/{id}/levels", h.Levels)
	return r, db
}

func TestTideGaugeHandler_List(t *testing.T) {
	router, db := newTideGaugeRouter(t)

	testutil.CreateTestTideGauge(t, db, "1102", "Keelung", 121.7405, 25.1553)

	req := httptest.NewRequest(http.MethodGet, "/tidegauges", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Total)
}

func TestTideGaugeHandler_GetByID(t *testing.T) {
	router, db := newTideGaugeRouter(t)

	created := testutil.CreateTestTideGauge(t, db, "1102", "Keelung", 121.7405, 25.1553)

	t.Run("by uuid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tidegauges/"+created.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var dto domain.TideGaugeDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.Equal(t, "Keelung", dto.Name)
	})

	t.Run("by station code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tidegauges/1102", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var dto domain.TideGaugeDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.Equal(t, created.ID, dto.ID)
	})

	t.Run("unknown station", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tidegauges/9999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTideGaugeHandler_Levels(t *testing.T) {
	router, db := newTideGaugeRouter(t)
	repo := repository.NewTideGaugeRepository(db)

	created := testutil.CreateTestTideGauge(t, db, "1102", "Keelung", 121.7405, 25.1553)
	require.NoError(t, repo.ReplaceLevels(context.Background(), created.ID, []domain.TideGaugeLevel{
		{Surface: "MSS", Height: 0.102, Epoch: "2012.0"},
	}))

	req := httptest.NewRequest(http.MethodGet, "/tidegauges/"+created.ID.String()+"/levels", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var levels []domain.TideGaugeLevelDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &levels))
	require.Len(t, levels, 1)
	assert.Equal(t, "MSS", levels[0].Surface)
}

func TestTideGaugeHandler_Sync_WarehouseDisabled(t *testing.T) {
	router, _ := newTideGaugeRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/tidegauges/sync", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
