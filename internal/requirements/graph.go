package requirements

import (
	"fmt"

	"github.com/osse101/ColonyPlanner_Go/internal/catalog"
	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

// graph is the undirected recipe graph used for pruning. Nodes live in an
// arena: node 0 is the synthetic root, node i+1 is the i-th recipe in catalog
// order. Removal only flips alive; adjacency is never rewritten.
type graph struct {
	root   string
	nodes  []*domain.Recipe
	adj    [][]int
	alive  []bool
	byItem map[string][]int
}

func newGraph(ix *catalog.Index, root string) *graph {
	recipes := ix.Recipes()
	n := len(recipes) + 1

	g := &graph{
		root:   root,
		nodes:  make([]*domain.Recipe, n),
		adj:    make([][]int, n),
		alive:  make([]bool, n),
		byItem: make(map[string][]int),
	}
	g.alive[rootNode] = true
	for i, r := range recipes {
		id := i + 1
		g.nodes[id] = r
		g.alive[id] = true
		g.byItem[r.ItemID] = append(g.byItem[r.ItemID], id)
	}

	linked := make([]map[int]bool, n)
	link := func(a, b int) {
		if linked[a] == nil {
			linked[a] = make(map[int]bool)
		}
		if linked[a][b] {
			return
		}
		linked[a][b] = true
		g.adj[a] = append(g.adj[a], b)
		if a == b {
			return
		}
		if linked[b] == nil {
			linked[b] = make(map[int]bool)
		}
		linked[b][a] = true
		g.adj[b] = append(g.adj[b], a)
	}

	for _, id := range g.byItem[root] {
		link(rootNode, id)
	}
	for id := 1; id < n; id++ {
		for _, req := range g.nodes[id].Requirements {
			for _, producer := range g.byItem[req.ItemID] {
				link(id, producer)
			}
		}
	}
	return g
}

// creatable reports whether every item node id requires still has a live
// adjacent producer
func (g *graph) creatable(id int) bool {
	for _, req := range g.nodes[id].Requirements {
		supplied := false
		for _, nb := range g.adj[id] {
			if nb != rootNode && g.alive[nb] && g.nodes[nb].ItemID == req.ItemID {
				supplied = true
				break
			}
		}
		if !supplied {
			return false
		}
	}
	return true
}

// remove kills the given nodes and cascades through their former neighbours
// with a FIFO worklist. It returns how many nodes died in total.
func (g *graph) remove(ids ...int) int {
	var queue []int
	removed := 0
	for _, id := range ids {
		if id == rootNode || !g.alive[id] {
			continue
		}
		g.alive[id] = false
		removed++
		queue = append(queue, g.adj[id]...)
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == rootNode || !g.alive[id] || g.creatable(id) {
			continue
		}
		g.alive[id] = false
		removed++
		queue = append(queue, g.adj[id]...)
	}
	return removed
}

// gate removes every recipe the capabilities cannot run
func (g *graph) gate(caps toolset.Capabilities) int {
	var blocked []int
	for id := 1; id < len(g.nodes); id++ {
		if toolset.Check(g.nodes[id].Toolset, caps) != toolset.Usable {
			blocked = append(blocked, id)
		}
	}
	return g.remove(blocked...)
}

// override keeps only the named creator among the item's recipes
func (g *graph) override(o domain.CreatorOverride) int {
	var others []int
	for _, id := range g.byItem[o.ItemID] {
		if g.nodes[id].CreatorID != o.CreatorID {
			others = append(others, id)
		}
	}
	return g.remove(others...)
}

func (g *graph) itemAlive(itemID string) bool {
	for _, id := range g.byItem[itemID] {
		if g.alive[id] {
			return true
		}
	}
	return false
}

func (g *graph) liveRecipes(itemID string) []*domain.Recipe {
	var live []*domain.Recipe
	for _, id := range g.byItem[itemID] {
		if g.alive[id] {
			live = append(live, g.nodes[id])
		}
	}
	return live
}

// reachable walks consumer to producer edges from the synthetic root over
// live nodes and returns the recipes visited, in catalog order
func (g *graph) reachable() []*domain.Recipe {
	visited := make([]bool, len(g.nodes))
	stack := []int{rootNode}
	visited[rootNode] = true

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, nb := range g.adj[id] {
			if visited[nb] || nb == rootNode || !g.alive[nb] {
				continue
			}
			if !g.feeds(id, nb) {
				continue
			}
			visited[nb] = true
			stack = append(stack, nb)
		}
	}

	var out []*domain.Recipe
	for id := 1; id < len(g.nodes); id++ {
		if visited[id] {
			out = append(out, g.nodes[id])
		}
	}
	return out
}

// feeds reports whether producer supplies an item consumer needs. The root
// consumes the requested item.
func (g *graph) feeds(consumer, producer int) bool {
	item := g.nodes[producer].ItemID
	if consumer == rootNode {
		return item == g.root
	}
	return g.nodes[consumer].Requires(item)
}

// blockingError finds why the root died during gating: it walks dead items
// breadth-first from the root to the first one with no usable recipe at all
// and reports that item's gating error
func (g *graph) blockingError(caps toolset.Capabilities) error {
	visited := map[string]bool{g.root: true}
	queue := []string{g.root}

	for len(queue) > 0 {
		itemID := queue[0]
		queue = queue[1:]

		candidates := make([]*domain.Recipe, 0, len(g.byItem[itemID]))
		for _, id := range g.byItem[itemID] {
			candidates = append(candidates, g.nodes[id])
		}
		usable := Usable(candidates, caps)
		if len(usable) == 0 {
			return GatingError(itemID, candidates, caps)
		}

		for _, r := range usable {
			for _, req := range r.Requirements {
				if !visited[req.ItemID] && !g.itemAlive(req.ItemID) {
					visited[req.ItemID] = true
					queue = append(queue, req.ItemID)
				}
			}
		}
	}
	return &domain.InternalError{Detail: fmt.Sprintf(domain.ErrMsgBlockingItemNotFoundFmt, g.root)}
}
