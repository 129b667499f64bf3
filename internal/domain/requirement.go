package domain

// ResolvedRequirement is the solved demand for one item. Amount is what its
// own creators make; Byproduct is what other creators yield on the side. An
// item covered entirely by byproducts has no creators and a zero Amount.
type ResolvedRequirement struct {
	ItemID    string            `json:"item_id"`
	Amount    float64           `json:"amount"`
	Byproduct float64           `json:"byproduct_amount,omitempty"`
	Creators  []ResolvedCreator `json:"creators"`
}

// ResolvedCreator is one recipe's share of an item's production
type ResolvedCreator struct {
	ItemID     string       `json:"item_id"`
	CreatorID  string       `json:"creator_id"`
	Amount     float64      `json:"amount"`
	Workers    float64      `json:"workers"`
	Demands    []ItemDemand `json:"demands"`
	Byproducts []ItemDemand `json:"byproducts,omitempty"`
	Toolset    string       `json:"toolset"`
}

// ItemDemand is an amount of an item per output unit
type ItemDemand struct {
	ItemID string  `json:"item_id"`
	Amount float64 `json:"amount"`
}
