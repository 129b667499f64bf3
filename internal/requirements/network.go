package requirements

import (
	"slices"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/lp"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

// network is the production model for a pruned recipe set. Variable i is the
// worker count of recipes[i].
type network struct {
	recipes []*domain.Recipe
	tier    toolset.Tier
	model   *lp.Model
	items   []string
	rootNet []lp.Term // root production minus consumption, per worker
}

// itemFlow collects the per-worker rate terms touching one item
type itemFlow struct {
	production  []lp.Term
	consumption []lp.Term
}

// buildNetwork expresses the recipes as balance rows (production including
// byproduct credit minus consumption, at least zero) and minimises total
// workers. An amount target raises the root's row to the requested net
// output; a worker target pins rootRecipe's variable instead.
func buildNetwork(recipes []*domain.Recipe, root string, rootRecipe *domain.Recipe, target domain.Target, tier toolset.Tier) *network {
	net := &network{
		recipes: recipes,
		tier:    tier,
		model:   lp.NewModel(lp.Minimize),
	}

	flows := make(map[string]*itemFlow)
	flow := func(itemID string) *itemFlow {
		f, ok := flows[itemID]
		if !ok {
			f = &itemFlow{}
			flows[itemID] = f
			net.items = append(net.items, itemID)
		}
		return f
	}

	objective := make([]lp.Term, 0, len(recipes))
	rootVar := -1
	for _, r := range recipes {
		v := net.model.AddVariable(r.Key().String())
		objective = append(objective, lp.Term{Var: v, Coef: 1})
		if rootRecipe != nil && r.Key() == rootRecipe.Key() {
			rootVar = v
		}

		cycle := r.EffectiveCycleTime(tier)
		primary := flow(r.ItemID)
		primary.production = append(primary.production, lp.Term{Var: v, Coef: r.Output / cycle})
		for _, req := range r.Requirements {
			in := flow(req.ItemID)
			in.consumption = append(in.consumption, lp.Term{Var: v, Coef: req.Amount / cycle})
		}
		for _, opt := range r.OptionalOutputs {
			by := flow(opt.ItemID)
			by.production = append(by.production, lp.Term{Var: v, Coef: opt.Amount * opt.Likelihood / cycle})
		}
	}
	net.model.SetObjective(objective)

	for _, itemID := range net.items {
		f := flows[itemID]
		terms := make([]lp.Term, 0, len(f.production)+len(f.consumption))
		terms = append(terms, f.production...)
		for _, t := range f.consumption {
			terms = append(terms, lp.Term{Var: t.Var, Coef: -t.Coef})
		}

		rhs := 0.0
		if itemID == root {
			net.rootNet = terms
			if target.Kind == domain.TargetAmount {
				rhs = target.Value / target.Unit.Seconds()
			}
		}
		net.model.AddConstraint(constraintBalancePrefix+itemID, terms, lp.GreaterEqual, rhs)
	}

	if target.Kind == domain.TargetWorkers && rootVar >= 0 {
		net.model.AddConstraint(constraintPinPrefix+root, []lp.Term{{Var: rootVar, Coef: 1}}, lp.Equal, target.Value)
	}
	return net
}

// deliveryModel maximises the root's net output over the allocations that use
// no more than maxWorkers in total
func (n *network) deliveryModel(maxWorkers float64) *lp.Model {
	m := &lp.Model{
		Direction:   lp.Maximize,
		Variables:   n.model.Variables,
		Constraints: slices.Clone(n.model.Constraints),
	}
	budget := make([]lp.Term, len(n.recipes))
	for i := range n.recipes {
		budget[i] = lp.Term{Var: i, Coef: 1}
	}
	m.AddConstraint(constraintBudget, budget, lp.LessEqual, maxWorkers+budgetTolerance)
	m.SetObjective(n.rootNet)
	return m
}

// rootDelivery is the root's net output per second under values
func (n *network) rootDelivery(values []float64) float64 {
	total := 0.0
	for _, t := range n.rootNet {
		total += t.Coef * values[t.Var]
	}
	return total
}

// totalWorkers sums values
func totalWorkers(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
