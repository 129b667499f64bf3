package handler

import (
	"net/http"
	"os"
	"runtime"

	"github.com/osse101/ColonyPlanner_Go/internal/catalog"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version         string `json:"version"`
	GoVersion       string `json:"go_version"`
	BuildTime       string `json:"build_time,omitempty"`
	GitCommit       string `json:"git_commit,omitempty"`
	CatalogChecksum string `json:"catalog_checksum,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// CatalogDescriber exposes the active catalog snapshot
type CatalogDescriber interface {
	Snapshot() catalog.Snapshot
}

// HandleVersion returns build information and the checksum of the catalog
// being served, so a deploy and a catalog edit can both be verified
// @Summary Version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(describer CatalogDescriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:         getVersionInfo(),
			GoVersion:       runtime.Version(),
			BuildTime:       BuildTime,
			GitCommit:       GitCommit,
			CatalogChecksum: describer.Snapshot().Checksum,
		})
	}
}

// getVersionInfo returns version from build-time variable or environment
func getVersionInfo() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
