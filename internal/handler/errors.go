package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParamFmt  = "Invalid %s query parameter"
	ErrMsgRequestTooLarge       = "Request body too large"
	ErrMsgTrailingData          = "Request body must contain a single JSON object"

	ErrMsgResolveFailed       = "Failed to resolve requirements"
	ErrMsgListItemsFailed     = "Failed to list items"
	ErrMsgListCreatorsFailed  = "Failed to list creators"
	ErrMsgReloadCatalogFailed = "Failed to reload catalog"
	ErrMsgCatalogRejected     = "Catalog rejected"
)

// Field-level validation messages
const (
	ValMsgRequired    = "This field is required"
	ValMsgEitherFmt   = "Either this field or %s is required"
	ValMsgExcludedFmt = "Cannot be combined with %s"
	ValMsgGreaterFmt  = "Must be greater than %s"
	ValMsgMaxFmt      = "Must be at most %s"
	ValMsgOneOf       = "Must be one of "
	ValMsgInvalid     = "Invalid value"
	ValMsgFormat      = "Invalid request format"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnavailableError   = "Catalog is not loaded yet. Please try again later."
	ErrMsgTimeoutError       = "Resolution timed out"
	ErrMsgCanceledError      = "Request was canceled"
)

// Machine-readable error codes returned next to the message
const (
	CodeInvalidInput          = "invalid_input"
	CodeUnknownItem           = "unknown_item"
	CodeToolLevel             = "tool_level"
	CodeMachineToolsRequired  = "machine_tools_required"
	CodeEyeglassesRequired    = "eyeglasses_required"
	CodeMultipleOverride      = "multiple_override"
	CodeNotCreatableOverrides = "not_creatable_with_overrides"
	CodeCatalogUnavailable    = "catalog_unavailable"
	CodeInvalidCatalog        = "invalid_catalog"
	CodeTimeout               = "timeout"
	CodeInternal              = "internal"
)

// Success messages
const (
	MsgCatalogReloaded  = "Catalog reloaded"
	MsgCatalogUnchanged = "Catalog unchanged"
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	MsgCatalogMissing = "catalog not loaded"
)

// Query parameters
const (
	QueryMaxTool    = "max_tool"
	QueryMachine    = "machine_tools"
	QueryEyeglasses = "eyeglasses"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgRequestDecoded  = "Request decoded"
	LogMsgServiceError    = "Service error"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
)
