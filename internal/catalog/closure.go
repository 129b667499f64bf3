package catalog

import "github.com/osse101/ColonyPlanner_Go/internal/domain"

// Closure returns every recipe for the items transitively reachable from root
// through requirement and optional-output edges, in catalog order. It is nil
// when nothing produces root.
func (ix *Index) Closure(root string) []domain.Recipe {
	if !ix.HasItem(root) {
		return nil
	}

	visited := map[string]bool{root: true}
	queue := []string{root}
	visit := func(itemID string) {
		if !visited[itemID] {
			visited[itemID] = true
			queue = append(queue, itemID)
		}
	}

	for len(queue) > 0 {
		itemID := queue[0]
		queue = queue[1:]
		for _, r := range ix.byItem[itemID] {
			for _, req := range r.Requirements {
				visit(req.ItemID)
			}
			for _, opt := range r.OptionalOutputs {
				visit(opt.ItemID)
			}
		}
	}

	closure := make([]domain.Recipe, 0, len(ix.recipes))
	for _, r := range ix.recipes {
		if visited[r.ItemID] {
			closure = append(closure, *r)
		}
	}
	return closure
}
