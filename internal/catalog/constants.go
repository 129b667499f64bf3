package catalog

import "time"

// Catalog defaults
const (
	DefaultDebounce    = 500 * time.Millisecond
	DefaultSuggestions = 3
)

const closureKeySeparator = "|"

// Schema location inside the embedded schema filesystem
const (
	CatalogSchemaPath = "schema/catalog.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadCatalogFailed   = "failed to read catalog file: %w"
	ErrMsgDecodeCatalogFailed = "failed to decode catalog: %w"
	ErrMsgUnknownFormatFmt    = "unsupported catalog format %q"
	ErrMsgSchemaFailedFmt     = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil        = "config is nil"
	ErrMsgNoRecipesDefined = "no recipes defined"
	ErrMsgNotLoaded        = "catalog not loaded"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtRecipeAtIndexEmpty    = "%w: recipe at index %d has empty item or creator"
	ErrFmtDuplicateRecipe       = "%w: '%s'"
	ErrFmtNonPositiveCycleTime  = "%w: recipe '%s' has non-positive cycle_time"
	ErrFmtNonPositiveOutput     = "%w: recipe '%s' has non-positive output"
	ErrFmtBadToolset            = "%w: recipe '%s' toolset: %v"
	ErrFmtUnknownToolsetType    = "unknown toolset type %q"
	ErrFmtToolRangeInverted     = "minimum_tool %s exceeds maximum_tool %s"
	ErrFmtRequirementEmpty      = "%w: recipe '%s' requirement[%d] has empty item"
	ErrFmtRequirementAmount     = "%w: recipe '%s' requirement[%d] has non-positive amount"
	ErrFmtRequirementUnknown    = "%w: recipe '%s' requirement[%d] references item '%s' with no recipe"
	ErrFmtOptionalOutputEmpty   = "%w: recipe '%s' optional_output[%d] has empty item"
	ErrFmtOptionalOutputAmount  = "%w: recipe '%s' optional_output[%d] has non-positive amount"
	ErrFmtOptionalOutputLikely  = "%w: recipe '%s' optional_output[%d] has likelihood outside [0,1]"
	ErrFmtOptionalOutputUnknown = "%w: recipe '%s' optional_output[%d] references item '%s' with no recipe"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogUnchanged = "Catalog file unchanged, skipping reload"
	LogMsgCatalogLoaded    = "Catalog loaded"
	LogMsgCatalogReloadErr = "Catalog reload failed"
	LogMsgClosureCacheHit  = "Closure cache hit"
	LogMsgClosureComputed  = "Closure computed"
	LogMsgWatching         = "Watching catalog for changes"
	LogMsgFileChanged      = "Catalog file changed"
	LogMsgWatcherError     = "Catalog watcher error"
)
