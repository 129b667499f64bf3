package handler

import (
	"net/http"

	"github.com/osse101/ColonyPlanner_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints. Readiness
// also reports which catalog is being served.
type HealthResponse struct {
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
	CatalogChecksum string `json:"catalog_checksum,omitempty"`
	CatalogRecipes  int    `json:"catalog_recipes,omitempty"`
}

// ReadinessChecker reports whether the service can take traffic
type ReadinessChecker interface {
	CatalogDescriber
	Ready() bool
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz provides a readiness check that requires a loaded catalog
// @Summary Readiness check
// @Description Returns OK with the active catalog once one has been loaded
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !checker.Ready() {
			logger.FromContext(r.Context()).Warn(LogMsgReadinessFailed, "reason", MsgCatalogMissing)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: MsgCatalogMissing,
			})
			return
		}

		snap := checker.Snapshot()
		respondJSON(w, http.StatusOK, HealthResponse{
			Status:          StatusOK,
			CatalogChecksum: snap.Checksum,
			CatalogRecipes:  snap.Recipes,
		})
	}
}
