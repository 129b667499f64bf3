package requirements

import (
	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

// aggregate turns solved worker counts into per-item requirements, one for
// every item an active creator produces, demands or yields as a byproduct.
// The root comes first, then items in breadth-first order through each active
// creator's requirements, then any remaining byproducts in catalog order.
// Creators keep catalog order.
func aggregate(root string, recipes []*domain.Recipe, workers []float64, tier toolset.Tier, unit domain.OutputUnit) []domain.ResolvedRequirement {
	scale := unit.Seconds()

	creatorsByItem := make(map[string][]domain.ResolvedCreator)
	credited := make(map[string]float64)
	active := make(map[string][]*domain.Recipe)
	touched := map[string]bool{root: true}
	discovered := []string{root}
	touch := func(itemID string) {
		if !touched[itemID] {
			touched[itemID] = true
			discovered = append(discovered, itemID)
		}
	}
	for i, r := range recipes {
		x := workers[i]
		if x <= Epsilon {
			continue
		}
		c := resolveCreator(r, x, tier, scale)
		touch(r.ItemID)
		for _, d := range c.Demands {
			touch(d.ItemID)
		}
		for _, b := range c.Byproducts {
			touch(b.ItemID)
			credited[b.ItemID] += b.Amount
		}
		creatorsByItem[r.ItemID] = append(creatorsByItem[r.ItemID], c)
		active[r.ItemID] = append(active[r.ItemID], r)
	}

	order := make([]string, 0, len(discovered))
	visited := map[string]bool{root: true}
	queue := []string{root}
	for len(queue) > 0 {
		itemID := queue[0]
		queue = queue[1:]
		order = append(order, itemID)
		for _, r := range active[itemID] {
			for _, req := range r.Requirements {
				if !visited[req.ItemID] {
					visited[req.ItemID] = true
					queue = append(queue, req.ItemID)
				}
			}
		}
	}
	for _, itemID := range discovered {
		if !visited[itemID] {
			order = append(order, itemID)
		}
	}

	result := make([]domain.ResolvedRequirement, 0, len(order))
	for _, itemID := range order {
		creators := creatorsByItem[itemID]
		if creators == nil {
			creators = []domain.ResolvedCreator{}
		}
		total := 0.0
		for _, c := range creators {
			total += c.Amount
		}
		result = append(result, domain.ResolvedRequirement{
			ItemID:    itemID,
			Amount:    total,
			Byproduct: credited[itemID],
			Creators:  creators,
		})
	}
	return result
}

func resolveCreator(r *domain.Recipe, workers float64, tier toolset.Tier, scale float64) domain.ResolvedCreator {
	cycle := r.EffectiveCycleTime(tier)
	perUnit := workers / cycle * scale

	c := domain.ResolvedCreator{
		ItemID:    r.ItemID,
		CreatorID: r.CreatorID,
		Amount:    r.Output * perUnit,
		Workers:   workers,
		Demands:   make([]domain.ItemDemand, 0, len(r.Requirements)),
		Toolset:   toolset.Describe(r.Toolset),
	}
	for _, req := range r.Requirements {
		c.Demands = append(c.Demands, domain.ItemDemand{ItemID: req.ItemID, Amount: req.Amount * perUnit})
	}
	for _, opt := range r.OptionalOutputs {
		c.Byproducts = append(c.Byproducts, domain.ItemDemand{ItemID: opt.ItemID, Amount: opt.Amount * opt.Likelihood * perUnit})
	}
	return c
}
