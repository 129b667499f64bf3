package logger

// Context keys
const (
	ContextKeyRequestID = "request_id"
	ContextKeyAttrs     = "log_attrs"
)

// Log level names accepted in Config.Level
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "colony-planner"
	CLIServiceName     = "planner-cli"
	DefaultVersion     = "dev"
)

const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
	EnvironmentCLI        = "cli"
)

// Attribute keys attached to every record or carried through the context
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyItem        = "item"
	AttrKeyCatalog     = "catalog"
)
