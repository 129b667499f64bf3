package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	CatalogPath      string
	CatalogWatch     bool
	ClosureCacheSize int
	ClosureCacheTTL  time.Duration
	SolverTolerance  float64
	ShutdownTimeout  time.Duration
	RequestTimeout   time.Duration
	TrustedProxies   []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:        getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:           getEnv(EnvLogDir, DefaultLogDir),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:      getEnv(EnvServiceName, DefaultServiceName),
		Version:          getEnv(EnvVersion, DefaultVersion),
		CatalogPath:      getEnv(EnvCatalogPath, DefaultCatalogPath),
		CatalogWatch:     getEnvAsBool(EnvCatalogWatch, false),
		ClosureCacheSize: getEnvAsInt(EnvClosureCacheSize, DefaultClosureCacheSize),
		ClosureCacheTTL:  getEnvAsDuration(EnvClosureCacheTTL, DefaultClosureCacheTTL),
		ShutdownTimeout:  getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
		RequestTimeout:   getEnvAsDuration(EnvRequestTimeout, DefaultRequestTimeout),
		TrustedProxies:   getEnvAsList(EnvTrustedProxies),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	tolerance, err := strconv.ParseFloat(getEnv(EnvSolverTolerance, DefaultSolverTolerance), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SOLVER_TOLERANCE value: %w", err)
	}
	if tolerance <= 0 {
		return nil, fmt.Errorf("SOLVER_TOLERANCE must be positive, got %g", tolerance)
	}
	cfg.SolverTolerance = tolerance

	if cfg.ClosureCacheSize <= 0 {
		return nil, fmt.Errorf("CLOSURE_CACHE_SIZE must be positive, got %d", cfg.ClosureCacheSize)
	}
	if strings.TrimSpace(cfg.CatalogPath) == "" {
		return nil, fmt.Errorf("CATALOG_PATH must not be empty")
	}

	return cfg, nil
}

// IsDevelopment reports whether the environment is a development one
func (c *Config) IsDevelopment() bool {
	switch strings.ToLower(c.Environment) {
	case DefaultEnvironment, EnvironmentDevelopment:
		return true
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the
// default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration environment variable, falling back to
// the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool parses a boolean environment variable, falling back to the
// default when unset or invalid
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated environment variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
