package domain

import (
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

// RecipeKey uniquely identifies a recipe by the item it makes and the creator
// that makes it
type RecipeKey struct {
	ItemID    string `json:"item_id"`
	CreatorID string `json:"creator_id"`
}

// String renders the key as itemID#creatorID
func (k RecipeKey) String() string {
	return k.ItemID + RecipeKeySeparator + k.CreatorID
}

// Requirement is an ingredient consumed every cycle
type Requirement struct {
	ItemID string  `json:"item_id"`
	Amount float64 `json:"amount"`
}

// OptionalOutput is a byproduct yielded every cycle with the given likelihood
type OptionalOutput struct {
	ItemID     string  `json:"item_id"`
	Amount     float64 `json:"amount"`
	Likelihood float64 `json:"likelihood"`
}

// Recipe is one way ("creator") of producing an item
type Recipe struct {
	ItemID          string
	CreatorID       string
	CycleTime       float64 // seconds per cycle before tool modifiers
	Output          float64 // primary output per cycle
	Requirements    []Requirement
	OptionalOutputs []OptionalOutput
	Toolset         toolset.Toolset
}

// Key returns the recipe's identity
func (r *Recipe) Key() RecipeKey {
	return RecipeKey{ItemID: r.ItemID, CreatorID: r.CreatorID}
}

// EffectiveCycleTime is the cycle time after applying the tool modifier
func (r *Recipe) EffectiveCycleTime(available toolset.Tier) float64 {
	return toolset.EffectiveCycleTime(r.CycleTime, r.Toolset, available)
}

// OutputRate is the primary output per worker per second
func (r *Recipe) OutputRate(available toolset.Tier) float64 {
	return r.Output / r.EffectiveCycleTime(available)
}

// Requires reports whether the recipe consumes itemID
func (r *Recipe) Requires(itemID string) bool {
	for _, req := range r.Requirements {
		if req.ItemID == itemID {
			return true
		}
	}
	return false
}

// CreatorOverride forces resolution of ItemID to use CreatorID
type CreatorOverride struct {
	ItemID    string `json:"item_id" validate:"required"`
	CreatorID string `json:"creator_id" validate:"required"`
}
