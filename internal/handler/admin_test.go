package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ColonyPlanner_Go/internal/catalog"
	"github.com/osse101/ColonyPlanner_Go/mocks"
)

func TestHandleReloadCatalog(t *testing.T) {
	tests := []struct {
		name           string
		result         *catalog.ReloadResult
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"Changed", &catalog.ReloadResult{Changed: true, Checksum: "abc", Recipes: 12}, nil, http.StatusOK, MsgCatalogReloaded},
		{"Unchanged", &catalog.ReloadResult{Checksum: "abc", Recipes: 12}, nil, http.StatusOK, MsgCatalogUnchanged},
		{"Invalid catalog", nil, fmt.Errorf("%w: no recipes defined", catalog.ErrInvalidConfig), http.StatusUnprocessableEntity, CodeInvalidCatalog},
		{"Duplicate key", nil, fmt.Errorf("%w: planks#sawmill", catalog.ErrDuplicateRecipeKey), http.StatusUnprocessableEntity, "planks#sawmill"},
		{"Unreadable file", nil, errors.New("open catalog.yaml: permission denied"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockPlannerService(t)
			mockService.On("Reload", mock.Anything).Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			NewAdminCatalogHandler(mockService).HandleReloadCatalog(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/catalog/reload", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleCatalogStatus(t *testing.T) {
	loadedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockService := mocks.NewMockPlannerService(t)
	mockService.On("Snapshot").Return(catalog.Snapshot{
		Path: "configs/catalog.yaml", Checksum: "abc", LoadedAt: loadedAt, Recipes: 12, Items: 9,
	})

	rec := httptest.NewRecorder()
	NewAdminCatalogHandler(mockService).HandleCatalogStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/catalog", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var snap catalog.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "abc", snap.Checksum)
	assert.Equal(t, 12, snap.Recipes)
	assert.True(t, loadedAt.Equal(snap.LoadedAt))
}
