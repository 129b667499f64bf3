package catalog

import (
	"fmt"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
)

// Index groups recipes by the item they produce and by their (item, creator)
// key. Catalog order is preserved everywhere, so iteration is deterministic.
type Index struct {
	recipes []*domain.Recipe
	byItem  map[string][]*domain.Recipe
	byKey   map[domain.RecipeKey]*domain.Recipe
	items   []string
}

// NewIndex builds an index over recipes. Duplicate keys are rejected with
// ErrDuplicateRecipeKey.
func NewIndex(recipes []domain.Recipe) (*Index, error) {
	owned := make([]domain.Recipe, len(recipes))
	copy(owned, recipes)

	ix := &Index{
		recipes: make([]*domain.Recipe, 0, len(owned)),
		byItem:  make(map[string][]*domain.Recipe),
		byKey:   make(map[domain.RecipeKey]*domain.Recipe, len(owned)),
	}
	for i := range owned {
		r := &owned[i]
		key := r.Key()
		if _, dup := ix.byKey[key]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateRecipe, ErrDuplicateRecipeKey, key)
		}
		ix.byKey[key] = r
		if _, seen := ix.byItem[r.ItemID]; !seen {
			ix.items = append(ix.items, r.ItemID)
		}
		ix.byItem[r.ItemID] = append(ix.byItem[r.ItemID], r)
		ix.recipes = append(ix.recipes, r)
	}
	return ix, nil
}

// ByItem returns the recipes producing itemID in catalog order
func (ix *Index) ByItem(itemID string) []*domain.Recipe {
	return ix.byItem[itemID]
}

// Lookup returns the recipe with the given key
func (ix *Index) Lookup(key domain.RecipeKey) (*domain.Recipe, bool) {
	r, ok := ix.byKey[key]
	return r, ok
}

// HasItem reports whether any recipe produces itemID
func (ix *Index) HasItem(itemID string) bool {
	return len(ix.byItem[itemID]) > 0
}

// Items returns produced item ids in first-seen order
func (ix *Index) Items() []string {
	return ix.items
}

// Recipes returns every recipe in catalog order
func (ix *Index) Recipes() []*domain.Recipe {
	return ix.recipes
}

// Len is the number of recipes
func (ix *Index) Len() int {
	return len(ix.recipes)
}
