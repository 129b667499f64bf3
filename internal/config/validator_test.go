package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv(t *testing.T) {
	tests := []struct {
		name          string
		schemaVersion string
		catalogPath   string
		errContains   []string
	}{
		{"valid", ExpectedEnvSchemaVersion, "configs/catalog.yaml", nil},
		{"missing version", "", "configs/catalog.yaml", []string{EnvSchemaVersion, "is not set"}},
		{"version mismatch", "0.9", "configs/catalog.yaml", []string{"expected 1.0, got 0.9"}},
		{"missing catalog path", ExpectedEnvSchemaVersion, "", []string{"missing required variables", EnvCatalogPath}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvSchemaVersion, tt.schemaVersion)
			t.Setenv(EnvCatalogPath, tt.catalogPath)

			err := ValidateEnv()
			if tt.errContains == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEnv)
			for _, want := range tt.errContains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestConfigWarnings(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment:     DefaultEnvironment,
			LogLevel:        "debug",
			CatalogPath:     "configs/catalog.yaml",
			CatalogWatch:    true,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		}
	}

	t.Run("development tolerates debug and watching", func(t *testing.T) {
		assert.Empty(t, base().Warnings())
	})

	t.Run("production flags debug and watching", func(t *testing.T) {
		cfg := base()
		cfg.Environment = EnvironmentProduction
		cfg.LogLevel = "DEBUG"

		warnings := cfg.Warnings()
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], EnvLogLevel)
		assert.Contains(t, warnings[1], EnvCatalogWatch)
	})

	t.Run("unknown catalog extension", func(t *testing.T) {
		cfg := base()
		cfg.CatalogPath = "recipes.toml"

		warnings := cfg.Warnings()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "recipes.toml")
	})

	t.Run("request timeout longer than shutdown", func(t *testing.T) {
		cfg := base()
		cfg.RequestTimeout = time.Minute

		warnings := cfg.Warnings()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], EnvRequestTimeout)
	})
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvCatalogPath, "configs/catalog.json")

	cfg := &Config{Environment: "prod", CatalogPath: "configs/catalog.json", CatalogWatch: true}
	warnings, err := ValidateEnvWithWarnings(cfg)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], EnvCatalogWatch)

	t.Setenv(EnvSchemaVersion, "2.0")
	_, err = ValidateEnvWithWarnings(cfg)
	assert.ErrorIs(t, err, ErrInvalidEnv)
}
