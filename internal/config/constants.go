package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion    = "ENV_SCHEMA_VERSION"
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogDir           = "LOG_DIR"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvCatalogPath      = "CATALOG_PATH"
	EnvCatalogWatch     = "CATALOG_WATCH"
	EnvClosureCacheSize = "CLOSURE_CACHE_SIZE"
	EnvClosureCacheTTL  = "CLOSURE_CACHE_TTL"
	EnvSolverTolerance  = "SOLVER_TOLERANCE"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	EnvRequestTimeout   = "REQUEST_TIMEOUT"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
)

// Defaults
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "colony-planner"
	DefaultVersion          = "dev"
	DefaultCatalogPath      = "configs/catalog.yaml"
	DefaultClosureCacheSize = 256
	DefaultClosureCacheTTL  = 10 * time.Minute
	DefaultSolverTolerance  = "1e-10"
	DefaultShutdownTimeout  = 30 * time.Second
	DefaultRequestTimeout   = 30 * time.Second
)

// EnvironmentDevelopment is the long spelling of the dev environment
const EnvironmentDevelopment = "development"

// EnvironmentProduction names the production environment
const EnvironmentProduction = "production"
