package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/ColonyPlanner_Go/internal/catalog"
	"github.com/osse101/ColonyPlanner_Go/internal/planner"
)

// AdminCatalogHandler handles catalog administration
type AdminCatalogHandler struct {
	planner planner.Service
}

// NewAdminCatalogHandler creates a new admin catalog handler
func NewAdminCatalogHandler(svc planner.Service) *AdminCatalogHandler {
	return &AdminCatalogHandler{planner: svc}
}

// ReloadResponse reports a catalog reload
type ReloadResponse struct {
	Message string                `json:"message"`
	Result  *catalog.ReloadResult `json:"result"`
}

// HandleReloadCatalog re-reads the catalog file
// POST /api/v1/admin/catalog/reload
// @Summary Reload catalog
// @Description Re-reads the recipe catalog; an invalid file leaves the current catalog in place
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/catalog/reload [post]
func (h *AdminCatalogHandler) HandleReloadCatalog(w http.ResponseWriter, r *http.Request) {
	result, err := h.planner.Reload(r.Context())
	if err != nil {
		if isCatalogRejection(err) {
			respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Error: ErrMsgCatalogRejected + ": " + err.Error(),
				Code:  CodeInvalidCatalog,
			})
			return
		}
		respondServiceError(w, r, ErrMsgReloadCatalogFailed, err)
		return
	}

	msg := MsgCatalogUnchanged
	if result.Changed {
		msg = MsgCatalogReloaded
	}
	respondJSON(w, http.StatusOK, ReloadResponse{Message: msg, Result: result})
}

// HandleCatalogStatus describes the catalog currently served
// GET /api/v1/admin/catalog
// @Summary Catalog status
// @Description Returns the path, checksum, load time and size of the active catalog
// @Tags admin
// @Produce json
// @Success 200 {object} catalog.Snapshot
// @Router /api/v1/admin/catalog [get]
func (h *AdminCatalogHandler) HandleCatalogStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.planner.Snapshot())
}

func isCatalogRejection(err error) bool {
	return errors.Is(err, catalog.ErrInvalidConfig) ||
		errors.Is(err, catalog.ErrInvalidItem) ||
		errors.Is(err, catalog.ErrDuplicateRecipeKey)
}
