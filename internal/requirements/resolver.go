// Package requirements resolves the production a colony needs to sustain a
// target output of one item: it gates recipes by tool capabilities, applies
// creator overrides with cascading removal, solves the remaining recipe
// network as a linear program and aggregates the solution per item.
package requirements

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ColonyPlanner_Go/internal/catalog"
	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/logger"
	"github.com/osse101/ColonyPlanner_Go/internal/lp"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

// Request is one resolution
type Request struct {
	ItemID       string                   `validate:"required,nonblank"`
	Target       domain.Target            `validate:"-"`
	Capabilities toolset.Capabilities     `validate:"-"`
	Overrides    []domain.CreatorOverride `validate:"dive"`
}

// Resolver runs resolutions against a linear solver. It holds no per-request
// state and is safe for concurrent use if the solver is.
type Resolver struct {
	solver   lp.Solver
	validate *validator.Validate
}

// NewResolver creates a resolver. A nil solver selects the simplex solver
// with the default tolerance.
func NewResolver(solver lp.Solver) *Resolver {
	if solver == nil {
		solver = lp.NewSimplex(lp.DefaultTolerance)
	}
	v := validator.New()
	_ = v.RegisterValidation(tagNonBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Resolver{solver: solver, validate: v}
}

// Resolve computes the requirements for req over records, the recipe closure
// of req.ItemID. It returns the requirements ordered root first, or one of the
// typed errors in package domain. No partial result is ever returned.
func (r *Resolver) Resolve(ctx context.Context, records []domain.Recipe, req Request) ([]domain.ResolvedRequirement, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgResolveStarted, "item", req.ItemID, "target", req.Target.Kind.String(), "value", req.Target.Value, "recipes", len(records))

	if err := r.validateRequest(req); err != nil {
		return nil, err
	}
	root := req.ItemID

	ix, err := catalog.NewIndex(records)
	if err != nil {
		log.Error(LogMsgCatalogMismatch, "error", err)
		return nil, &domain.InternalError{Detail: "index closure", Err: err}
	}
	if !ix.HasItem(root) {
		return nil, &domain.UnknownItemError{ItemID: root}
	}
	if err := checkClosure(ix); err != nil {
		log.Error(LogMsgCatalogMismatch, "error", err)
		return nil, err
	}
	if err := checkOverrides(ix, req.Overrides); err != nil {
		return nil, err
	}

	g := newGraph(ix, root)
	gated := g.gate(req.Capabilities)
	if !g.itemAlive(root) {
		return nil, g.blockingError(req.Capabilities)
	}
	for _, o := range req.Overrides {
		if !ix.HasItem(o.ItemID) {
			continue
		}
		if rec, _ := ix.Lookup(domain.RecipeKey{ItemID: o.ItemID, CreatorID: o.CreatorID}); toolset.Check(rec.Toolset, req.Capabilities) != toolset.Usable {
			return nil, GatingError(o.ItemID, []*domain.Recipe{rec}, req.Capabilities)
		}
	}

	overridden := 0
	for _, o := range req.Overrides {
		overridden += g.override(o)
	}
	reachable := g.reachable()
	log.Debug(LogMsgPruned, "gated", gated, "overridden", overridden, "reachable", len(reachable))
	if len(reachable) == 0 || !g.itemAlive(root) {
		return nil, &domain.NotCreatableWithOverridesError{ItemID: root}
	}

	rootRecipe, err := chooseRootRecipe(g, root, req)
	if err != nil {
		return nil, err
	}

	return r.solve(ctx, root, reachable, rootRecipe, req)
}

// solve builds and solves the production model for recipes and aggregates
// the result. A plan must deliver some net output of the root: under a worker
// target, the minimum-worker allocations are searched again for the one
// delivering the most root, and none delivering any means the root is not
// creatable.
func (r *Resolver) solve(ctx context.Context, root string, recipes []*domain.Recipe, rootRecipe *domain.Recipe, req Request) ([]domain.ResolvedRequirement, error) {
	log := logger.FromContext(ctx)
	tier := req.Capabilities.MaxAvailableTool

	net := buildNetwork(recipes, root, rootRecipe, req.Target, tier)
	log.Debug(LogMsgModelBuilt, "variables", len(net.model.Variables), "constraints", len(net.model.Constraints))

	solution, err := r.solver.Solve(ctx, net.model)
	if err != nil {
		return nil, solveError(ctx, root, req.Target, err)
	}

	if req.Target.Kind == domain.TargetWorkers {
		solution, err = r.solver.Solve(ctx, net.deliveryModel(solution.Objective))
		if err != nil {
			return nil, solveError(ctx, root, req.Target, err)
		}
		if net.rootDelivery(solution.Values) <= Epsilon {
			log.Debug(LogMsgRootNotDelivered, "item", root)
			return nil, &domain.NotCreatableWithOverridesError{ItemID: root}
		}
	}

	result := aggregate(root, recipes, solution.Values, tier, req.Target.Unit)
	log.Debug(LogMsgResolveCompleted, "item", root, "items", len(result), "workers", totalWorkers(solution.Values))
	return result, nil
}

// solveError maps a solver failure. The balance rows are homogeneous, so an
// infeasible amount target means no allocation yields any net root output.
// Anything else is a data inconsistency.
func solveError(ctx context.Context, root string, target domain.Target, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return err
	}
	log := logger.FromContext(ctx)
	if target.Kind == domain.TargetAmount && errors.Is(err, lp.ErrInfeasible) {
		log.Debug(LogMsgRootNotDelivered, "item", root, "error", err)
		return &domain.NotCreatableWithOverridesError{ItemID: root}
	}
	log.Error(LogMsgSolverFailed, "item", root, "error", err)
	return &domain.InternalError{Detail: fmt.Sprintf(domain.ErrMsgSolverFailedFmt, err), Err: err}
}

func (r *Resolver) validateRequest(req Request) error {
	if err := r.validate.Struct(req); err != nil {
		return toValidationError(err)
	}
	if err := req.Target.Validate(); err != nil {
		return err
	}
	if !req.Capabilities.MaxAvailableTool.Valid() {
		return &domain.ValidationError{Field: domain.FieldTool, Reason: ReasonUnknownTier}
	}

	seen := make(map[string]bool, len(req.Overrides))
	for _, o := range req.Overrides {
		if seen[o.ItemID] {
			return &domain.MultipleOverrideError{ItemID: o.ItemID}
		}
		seen[o.ItemID] = true
	}
	return nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &domain.ValidationError{Field: domain.FieldItemID, Reason: ReasonInvalidValue}
	}
	first := verrs[0]
	switch first.StructField() {
	case "ItemID":
		if strings.HasPrefix(first.Namespace(), "Request.Overrides") {
			return &domain.ValidationError{Field: domain.FieldOverrides, Reason: ReasonInvalidOverride}
		}
		return &domain.ValidationError{Field: domain.FieldItemID, Reason: domain.ErrMsgEmptyItemID}
	case "CreatorID":
		return &domain.ValidationError{Field: domain.FieldOverrides, Reason: ReasonInvalidOverride}
	default:
		return &domain.ValidationError{Field: strings.ToLower(first.Field()), Reason: ReasonInvalidValue}
	}
}

// checkClosure verifies every referenced item has a producer in the closure
func checkClosure(ix *catalog.Index) error {
	for _, r := range ix.Recipes() {
		for _, req := range r.Requirements {
			if !ix.HasItem(req.ItemID) {
				return &domain.InternalError{Detail: fmt.Sprintf(domain.ErrMsgMissingProducerFmt, r.Key(), req.ItemID)}
			}
		}
		for _, opt := range r.OptionalOutputs {
			if !ix.HasItem(opt.ItemID) {
				return &domain.InternalError{Detail: fmt.Sprintf(domain.ErrMsgMissingProducerFmt, r.Key(), opt.ItemID)}
			}
		}
	}
	return nil
}

// checkOverrides rejects overrides naming a creator the item does not have.
// Overrides for items outside the closure are ignored.
func checkOverrides(ix *catalog.Index, overrides []domain.CreatorOverride) error {
	for _, o := range overrides {
		if !ix.HasItem(o.ItemID) {
			continue
		}
		if _, ok := ix.Lookup(domain.RecipeKey{ItemID: o.ItemID, CreatorID: o.CreatorID}); !ok {
			return &domain.ValidationError{
				Field:  domain.FieldOverrides,
				Reason: fmt.Sprintf(domain.ErrMsgUnknownCreatorFmt, o.ItemID, o.CreatorID),
			}
		}
	}
	return nil
}

// chooseRootRecipe returns the recipe a worker target pins: the root override
// if one was given, otherwise the optimal surviving root recipe
func chooseRootRecipe(g *graph, root string, req Request) (*domain.Recipe, error) {
	if req.Target.Kind != domain.TargetWorkers {
		return nil, nil
	}
	live := g.liveRecipes(root)
	for _, o := range req.Overrides {
		if o.ItemID != root {
			continue
		}
		for _, rec := range live {
			if rec.CreatorID == o.CreatorID {
				return rec, nil
			}
		}
	}
	return SelectOptimal(root, live, req.Capabilities)
}
