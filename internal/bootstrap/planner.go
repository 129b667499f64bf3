package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/ColonyPlanner_Go/internal/catalog"
	"github.com/osse101/ColonyPlanner_Go/internal/config"
	"github.com/osse101/ColonyPlanner_Go/internal/logger"
	"github.com/osse101/ColonyPlanner_Go/internal/lp"
	"github.com/osse101/ColonyPlanner_Go/internal/planner"
	"github.com/osse101/ColonyPlanner_Go/internal/requirements"
)

// Components holds the wired planning stack
type Components struct {
	Store   *catalog.Store
	Planner planner.Service
}

// InitPlanner builds the catalog store, solver, resolver and planner service
// and performs the initial catalog load. A catalog that fails to load is
// fatal at startup; later reloads keep the last good catalog instead.
func InitPlanner(ctx context.Context, cfg *config.Config) (*Components, error) {
	store := catalog.NewStore(catalog.NewLoader(), cfg.CatalogPath, cfg.ClosureCacheSize, cfg.ClosureCacheTTL)
	resolver := requirements.NewResolver(lp.NewSimplex(cfg.SolverTolerance))
	svc := planner.NewService(store, resolver)

	result, err := svc.Reload(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgInitialLoadFailed, cfg.CatalogPath, err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"path", cfg.CatalogPath,
		"checksum", result.Checksum,
		"recipes", result.Recipes,
		"items", result.Items)

	return &Components{Store: store, Planner: svc}, nil
}
