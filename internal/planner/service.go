package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/ColonyPlanner_Go/internal/catalog"
	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/logger"
	"github.com/osse101/ColonyPlanner_Go/internal/metrics"
	"github.com/osse101/ColonyPlanner_Go/internal/requirements"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

// Repository is the recipe catalog the planner reads from
type Repository interface {
	Closure(ctx context.Context, root string) ([]domain.Recipe, error)
	Items(ctx context.Context) ([]string, error)
	Creators(ctx context.Context, itemID string) ([]*domain.Recipe, error)
	Suggest(itemID string, limit int) []string
	Reload(ctx context.Context) (*catalog.ReloadResult, error)
	Snapshot() catalog.Snapshot
	Ready() bool
}

// Plan is a resolved requirements tree with a summary
type Plan struct {
	ItemID       string                       `json:"item_id"`
	Target       string                       `json:"target"`
	Value        float64                      `json:"value"`
	Unit         domain.OutputUnit            `json:"unit"`
	TotalWorkers float64                      `json:"total_workers"`
	Requirements []domain.ResolvedRequirement `json:"requirements"`
}

// CreatorInfo describes one recipe for an item under given capabilities
type CreatorInfo struct {
	CreatorID          string                  `json:"creator_id"`
	Toolset            string                  `json:"toolset"`
	CycleTime          float64                 `json:"cycle_time"`
	EffectiveCycleTime float64                 `json:"effective_cycle_time"`
	Output             float64                 `json:"output"`
	OutputRate         float64                 `json:"output_rate"`
	Usable             bool                    `json:"usable"`
	BlockedBy          string                  `json:"blocked_by,omitempty"`
	Optimal            bool                    `json:"optimal"`
	Requirements       []domain.Requirement    `json:"requirements"`
	OptionalOutputs    []domain.OptionalOutput `json:"optional_outputs,omitempty"`
}

// Service defines the planning operations
type Service interface {
	Plan(ctx context.Context, req requirements.Request) (*Plan, error)
	Items(ctx context.Context) ([]string, error)
	Creators(ctx context.Context, itemID string, caps toolset.Capabilities) ([]CreatorInfo, error)
	Reload(ctx context.Context) (*catalog.ReloadResult, error)
	Snapshot() catalog.Snapshot
	Ready() bool
}

type service struct {
	repo     Repository
	resolver *requirements.Resolver
	suggest  int
}

// NewService creates a planner over repo using resolver
func NewService(repo Repository, resolver *requirements.Resolver) Service {
	return &service{
		repo:     repo,
		resolver: resolver,
		suggest:  DefaultSuggestionLimit,
	}
}

// Plan resolves req against the closure of its root item
func (s *service) Plan(ctx context.Context, req requirements.Request) (*Plan, error) {
	ctx = logger.WithAttrs(ctx, logger.AttrKeyItem, req.ItemID)
	log := logger.FromContext(ctx)
	started := time.Now()
	log.Info(LogMsgPlanStarted, "target", req.Target.Kind.String(), "value", req.Target.Value)

	closure, err := s.repo.Closure(ctx, req.ItemID)
	if err != nil {
		metrics.ObserveResolution(req.Target.Kind, 0, started, err)
		return nil, fmt.Errorf("%s: %w", ErrMsgClosureFailed, err)
	}

	result, err := s.resolver.Resolve(ctx, closure, req)
	metrics.ObserveResolution(req.Target.Kind, len(closure), started, err)
	if err != nil {
		var unknown *domain.UnknownItemError
		if errors.As(err, &unknown) {
			unknown.Suggestions = s.repo.Suggest(unknown.ItemID, s.suggest)
		}
		if errors.Is(err, domain.ErrInternal) {
			log.Error(LogMsgPlanFailed, "error", err)
		} else {
			log.Info(LogMsgPlanRejected, "error", err)
		}
		return nil, err
	}

	unit := req.Target.Unit
	if unit == "" {
		unit = domain.UnitSeconds
	}
	plan := &Plan{
		ItemID:       req.ItemID,
		Target:       req.Target.Kind.String(),
		Value:        req.Target.Value,
		Unit:         unit,
		Requirements: result,
	}
	for _, item := range result {
		for _, c := range item.Creators {
			plan.TotalWorkers += c.Workers
		}
	}

	log.Info(LogMsgPlanCompleted, "items", len(result), "workers", plan.TotalWorkers, "duration", time.Since(started))
	return plan, nil
}

// Items lists every item the catalog can produce
func (s *service) Items(ctx context.Context) ([]string, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgItemsFailed, err)
	}
	return items, nil
}

// Creators lists the recipes for itemID with their rate and usability under
// caps. The recipe the resolver would pick for a worker target is marked
// optimal.
func (s *service) Creators(ctx context.Context, itemID string, caps toolset.Capabilities) ([]CreatorInfo, error) {
	if !caps.MaxAvailableTool.Valid() {
		return nil, &domain.ValidationError{Field: domain.FieldTool, Reason: requirements.ReasonUnknownTier}
	}

	recipes, err := s.repo.Creators(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreatorsFailed, err)
	}
	if len(recipes) == 0 {
		return nil, &domain.UnknownItemError{ItemID: itemID, Suggestions: s.repo.Suggest(itemID, s.suggest)}
	}

	optimal, _ := requirements.SelectOptimal(itemID, recipes, caps)
	tier := caps.MaxAvailableTool

	infos := make([]CreatorInfo, 0, len(recipes))
	for _, r := range recipes {
		usability := toolset.Check(r.Toolset, caps)
		infos = append(infos, CreatorInfo{
			CreatorID:          r.CreatorID,
			Toolset:            toolset.Describe(r.Toolset),
			CycleTime:          r.CycleTime,
			EffectiveCycleTime: r.EffectiveCycleTime(tier),
			Output:             r.Output,
			OutputRate:         r.OutputRate(tier),
			Usable:             usability == toolset.Usable,
			BlockedBy:          blockedBy(usability),
			Optimal:            r == optimal,
			Requirements:       r.Requirements,
			OptionalOutputs:    r.OptionalOutputs,
		})
	}
	return infos, nil
}

// Reload re-reads the catalog and records the outcome
func (s *service) Reload(ctx context.Context) (*catalog.ReloadResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.repo.Reload(ctx)
	if err != nil {
		metrics.ObserveReload(false, 0, err)
		log.Error(LogMsgReloadFailed, "error", err)
		return nil, err
	}
	metrics.ObserveReload(result.Changed, result.Recipes, nil)
	log.Info(LogMsgCatalogReloaded, "changed", result.Changed, "recipes", result.Recipes, "items", result.Items)
	return result, nil
}

func (s *service) Snapshot() catalog.Snapshot {
	return s.repo.Snapshot()
}

func (s *service) Ready() bool {
	return s.repo.Ready()
}

func blockedBy(u toolset.Usability) string {
	switch u {
	case toolset.BlockedByTier:
		return BlockedByTier
	case toolset.BlockedByMachine:
		return BlockedByMachine
	case toolset.BlockedByEyeglasses:
		return BlockedByEyeglasses
	default:
		return ""
	}
}
