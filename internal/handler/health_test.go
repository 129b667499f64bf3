package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ColonyPlanner_Go/internal/catalog"
	"github.com/osse101/ColonyPlanner_Go/mocks"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler := HandleHealthz()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Catalog Loaded - Success", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService(t)
		mockService.On("Ready").Return(true)
		mockService.On("Snapshot").Return(catalog.Snapshot{Checksum: "c0ffee", Recipes: 24})

		w := httptest.NewRecorder()
		HandleReadyz(mockService).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, StatusOK, body.Status)
		assert.Equal(t, "c0ffee", body.CatalogChecksum)
		assert.Equal(t, 24, body.CatalogRecipes)
	})

	t.Run("Catalog Missing", func(t *testing.T) {
		mockService := mocks.NewMockPlannerService(t)
		mockService.On("Ready").Return(false)

		w := httptest.NewRecorder()
		HandleReadyz(mockService).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), StatusUnavailable)
		assert.Contains(t, w.Body.String(), MsgCatalogMissing)
		assert.NotContains(t, w.Body.String(), "catalog_checksum")
	})
}

func TestHandleVersion(t *testing.T) {
	mockService := mocks.NewMockPlannerService(t)
	mockService.On("Snapshot").Return(catalog.Snapshot{Checksum: "deadbeef"})

	w := httptest.NewRecorder()
	HandleVersion(mockService).ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "deadbeef", info.CatalogChecksum)
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Version)
}
