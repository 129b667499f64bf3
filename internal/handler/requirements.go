package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ColonyPlanner_Go/internal/planner"
)

// RequirementsHandler serves requirement resolution and catalog browsing
type RequirementsHandler struct {
	planner planner.Service
}

// NewRequirementsHandler creates a new requirements handler
func NewRequirementsHandler(svc planner.Service) *RequirementsHandler {
	return &RequirementsHandler{planner: svc}
}

// ItemsResponse lists producible items
type ItemsResponse struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}

// CreatorsResponse lists the creators of one item
type CreatorsResponse struct {
	ItemID   string                `json:"item_id"`
	Creators []planner.CreatorInfo `json:"creators"`
}

// HandleResolve resolves the production needed to sustain a target
// @Summary Resolve requirements
// @Description Computes per-item production, workers and creators needed to sustain a worker count or output amount of one item
// @Tags requirements
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "Resolution request"
// @Success 200 {object} planner.Plan
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/requirements [post]
func (h *RequirementsHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := DecodeAndValidateRequest(r, w, &req, ErrMsgResolveFailed); err != nil {
		return
	}

	resolution, err := req.toResolution()
	if err != nil {
		respondServiceError(w, r, ErrMsgResolveFailed, err)
		return
	}

	plan, err := h.planner.Plan(r.Context(), resolution)
	if err != nil {
		respondServiceError(w, r, ErrMsgResolveFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// HandleListItems lists every item the catalog can produce
// @Summary List items
// @Description Returns producible item ids in catalog order
// @Tags requirements
// @Produce json
// @Success 200 {object} ItemsResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/items [get]
func (h *RequirementsHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.planner.Items(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListItemsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, ItemsResponse{Items: items, Count: len(items)})
}

// HandleListCreators lists the recipes for an item under given capabilities
// @Summary List creators
// @Description Returns an item's recipes with effective rate and usability, marking the optimal one
// @Tags requirements
// @Produce json
// @Param itemID path string true "Item id"
// @Param max_tool query string false "Best available tool tier" default(none)
// @Param machine_tools query bool false "Machine tools available"
// @Param eyeglasses query bool false "Eyeglasses available"
// @Success 200 {object} CreatorsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemID}/creators [get]
func (h *RequirementsHandler) HandleListCreators(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	caps, ok := capabilitiesFromQuery(r, w)
	if !ok {
		return
	}

	creators, err := h.planner.Creators(r.Context(), itemID, caps)
	if err != nil {
		respondServiceError(w, r, ErrMsgListCreatorsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, CreatorsResponse{ItemID: itemID, Creators: creators})
}
