package bootstrap

// Log files
const (
	DirPermission     = 0755
	LogFilePermission = 0644

	// LogFileNamePattern takes a LogFileTimestampFormat timestamp, so names
	// sort in start order
	LogFileNamePattern     = "planner_%s.log"
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileExtension       = ".log"

	// MaxLogFiles counts the file about to be opened
	MaxLogFiles = 10
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingPlanner     = "Starting colony planner"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "failed to delete old log file %s: %v\n"
)

const (
	LogMsgCatalogLoaded     = "Recipe catalog loaded"
	ErrMsgInitialLoadFailed = "failed to load recipe catalog"
)

const (
	LogMsgShuttingDown         = "Shutting down"
	LogMsgComponentStopped     = "Component stopped"
	LogMsgServerForcedShutdown = "Component forced to stop"
	LogMsgShutdownComplete     = "Shutdown complete"
)
