package planner

// DefaultSuggestionLimit caps "did you mean" suggestions on unknown items
const DefaultSuggestionLimit = 3

// Reasons a creator cannot run, as reported by Creators
const (
	BlockedByTier       = "tool_level"
	BlockedByMachine    = "machine_tools"
	BlockedByEyeglasses = "eyeglasses"
)

// Log messages
const (
	LogMsgPlanStarted     = "Planning requirements"
	LogMsgPlanCompleted   = "Plan completed"
	LogMsgPlanRejected    = "Plan rejected"
	LogMsgPlanFailed      = "Plan failed"
	LogMsgCatalogReloaded = "Catalog reloaded"
	LogMsgReloadFailed    = "Catalog reload failed"
)

// Error messages
const (
	ErrMsgClosureFailed  = "failed to compute closure"
	ErrMsgItemsFailed    = "failed to list items"
	ErrMsgCreatorsFailed = "failed to list creators"
)
