package domain

// RecipeKeySeparator joins item and creator ids in a rendered RecipeKey
const RecipeKeySeparator = "#"

// Validation field names reported in ValidationError.Field
const (
	FieldItemID    = "item_id"
	FieldWorkers   = "workers"
	FieldAmount    = "amount"
	FieldUnit      = "unit"
	FieldOverrides = "overrides"
	FieldTool      = "max_available_tool"
)
