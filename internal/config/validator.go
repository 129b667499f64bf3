package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be present in the environment or .env file
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvCatalogPath,
}

// ErrInvalidEnv is wrapped by every ValidateEnv failure
var ErrInvalidEnv = errors.New("invalid environment")

// CatalogExtensions are the catalog formats the loader can decode
var CatalogExtensions = []string{".yaml", ".yml", ".json"}

// ValidateEnv checks the schema version and that required variables are set
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("%w: %s is not set, add it to your .env file (expected %s)", ErrInvalidEnv, EnvSchemaVersion, ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%w: %s mismatch: expected %s, got %s", ErrInvalidEnv, EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required variables: %s", ErrInvalidEnv, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings in cfg
// that work but are unusual for its environment
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}
	return cfg.Warnings(), nil
}

// Warnings lists settings that are legal but probably unintended
func (c *Config) Warnings() []string {
	var warnings []string
	production := c.IsProduction()

	if production && strings.EqualFold(c.LogLevel, "debug") {
		warnings = append(warnings, EnvLogLevel+" is debug in production, every resolution will be logged in detail")
	}
	if production && c.CatalogWatch {
		warnings = append(warnings, EnvCatalogWatch+" is enabled in production, catalog edits go live without a deploy")
	}
	if !hasCatalogExtension(c.CatalogPath) {
		warnings = append(warnings, fmt.Sprintf("%s %q has no %s extension and will be decoded as YAML",
			EnvCatalogPath, c.CatalogPath, strings.Join(CatalogExtensions, "/")))
	}
	if c.RequestTimeout > 0 && c.ShutdownTimeout > 0 && c.RequestTimeout > c.ShutdownTimeout {
		warnings = append(warnings, fmt.Sprintf("%s (%s) exceeds %s (%s), slow resolutions may be cut off at shutdown",
			EnvRequestTimeout, c.RequestTimeout, EnvShutdownTimeout, c.ShutdownTimeout))
	}

	return warnings
}

// IsProduction reports whether the environment is a production one
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case EnvironmentProduction, "prod":
		return true
	}
	return false
}

func hasCatalogExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range CatalogExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
