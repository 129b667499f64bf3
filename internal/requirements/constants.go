package requirements

// Epsilon is the threshold below which solved workers and rates count as zero
const Epsilon = 1e-9

// budgetTolerance absorbs rounding in the worker budget of the delivery
// model. It stays below Epsilon so the slack never surfaces as a creator.
const budgetTolerance = Epsilon / 10

// Synthetic root node index in the pruning graph
const rootNode = 0

// Constraint name prefixes in the production model
const (
	constraintBalancePrefix = "balance:"
	constraintPinPrefix     = "pin:"
	constraintBudget        = "budget"
)

// Validation tag registered on the request validator
const tagNonBlank = "nonblank"

// Validation reasons reported in domain.ValidationError
const (
	ReasonUnknownTier     = "unknown tool tier"
	ReasonInvalidOverride = "override needs item_id and creator_id"
	ReasonInvalidValue    = "invalid value"
)

// Log messages
const (
	LogMsgResolveStarted   = "Resolving requirements"
	LogMsgResolveCompleted = "Requirements resolved"
	LogMsgPruned           = "Recipe graph pruned"
	LogMsgModelBuilt       = "Production model built"
	LogMsgSolverFailed     = "Production model solve failed"
	LogMsgRootNotDelivered = "Plan delivers none of the root item"
	LogMsgCatalogMismatch  = "Recipe closure is inconsistent"
)
