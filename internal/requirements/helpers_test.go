package requirements

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/lp"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

const delta = 1e-6

var anyTier = toolset.DefaultToolset{MinimumTool: toolset.TierNone, MaximumTool: toolset.TierSteel}

func rec(itemID, creatorID string, cycle, output float64, ts toolset.Toolset, reqs ...domain.Requirement) domain.Recipe {
	return domain.Recipe{
		ItemID:       itemID,
		CreatorID:    creatorID,
		CycleTime:    cycle,
		Output:       output,
		Requirements: reqs,
		Toolset:      ts,
	}
}

func need(itemID string, amount float64) domain.Requirement {
	return domain.Requirement{ItemID: itemID, Amount: amount}
}

func tiered(minimum, maximum toolset.Tier) toolset.Toolset {
	return toolset.DefaultToolset{MinimumTool: minimum, MaximumTool: maximum}
}

func ptrs(recipes ...domain.Recipe) []*domain.Recipe {
	out := make([]*domain.Recipe, len(recipes))
	for i := range recipes {
		out[i] = &recipes[i]
	}
	return out
}

func find(t *testing.T, result []domain.ResolvedRequirement, itemID string) domain.ResolvedRequirement {
	t.Helper()
	for _, r := range result {
		if r.ItemID == itemID {
			return r
		}
	}
	require.Failf(t, "item missing from result", "item %q", itemID)
	return domain.ResolvedRequirement{}
}

func itemOrder(result []domain.ResolvedRequirement) []string {
	order := make([]string, len(result))
	for i, r := range result {
		order[i] = r.ItemID
	}
	return order
}

func resolve(t *testing.T, records []domain.Recipe, req Request) ([]domain.ResolvedRequirement, error) {
	t.Helper()
	return NewResolver(nil).Resolve(context.Background(), records, req)
}

// lumberCatalog has byproducts, alternative creators and a machine recipe
func lumberCatalog() []domain.Recipe {
	sawmill := rec("planks", "sawmill", 1, 2, anyTier, need("log", 1))
	sawmill.OptionalOutputs = []domain.OptionalOutput{{ItemID: "sawdust", Amount: 1, Likelihood: 0.5}}

	return []domain.Recipe{
		rec("kit", "workbench", 1, 1, anyTier, need("planks", 2), need("sawdust", 1)),
		sawmill,
		rec("planks", "sawmill_machine", 4, 4, toolset.MachineToolset{}, need("log", 2)),
		rec("sawdust", "grinder", 1, 1, anyTier, need("log", 1)),
		rec("log", "woodcutter", 1, 1, anyTier),
	}
}

type failingSolver struct {
	err error
}

func (f failingSolver) Solve(context.Context, *lp.Model) (*lp.Solution, error) {
	return nil, f.err
}
