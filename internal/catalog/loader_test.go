package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
	"github.com/osse101/ColonyPlanner_Go/internal/validation"
)

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("catalog.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("catalog.yml"))
	assert.Equal(t, FormatJSON, FormatFromPath("catalog.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("catalog"))
}

func TestLoader_ParseYAML(t *testing.T) {
	l := NewLoader()

	config, err := l.Parse([]byte(smallCatalogYAML), FormatYAML)
	require.NoError(t, err)
	require.NoError(t, l.Validate(config))

	require.Len(t, config.Recipes, 4)
	planks := config.Recipes[1]
	assert.Equal(t, "planks", planks.Item)
	assert.Equal(t, "sawmill", planks.Creator)
	assert.Equal(t, 9.0, planks.CycleTime)
	require.Len(t, planks.OptionalOutputs, 1)
	assert.Equal(t, 0.25, planks.OptionalOutputs[0].Likelihood)
}

func TestLoader_ParseJSON(t *testing.T) {
	l := NewLoader()
	data := `{"recipes": [{"item": "gear", "creator": "press", "cycle_time": 2, "output": 1, "toolset": {"type": "machine"}}]}`

	config, err := l.Parse([]byte(data), FormatJSON)
	require.NoError(t, err)

	recipes, err := config.DomainRecipes()
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, toolset.MachineToolset{}, recipes[0].Toolset)
}

func TestLoader_SchemaFailures(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"missing cycle time", FormatYAML, "recipes:\n  - item: a\n    creator: b\n    output: 1\n"},
		{"zero output", FormatYAML, "recipes:\n  - item: a\n    creator: b\n    cycle_time: 1\n    output: 0\n"},
		{"unknown tier", FormatYAML, "recipes:\n  - item: a\n    creator: b\n    cycle_time: 1\n    output: 1\n    toolset:\n      minimum_tool: mithril\n"},
		{"likelihood above one", FormatJSON, `{"recipes": [{"item": "a", "creator": "b", "cycle_time": 1, "output": 1, "optional_outputs": [{"item": "a", "amount": 1, "likelihood": 1.5}]}]}`},
		{"unknown field", FormatJSON, `{"recipes": [{"item": "a", "creator": "b", "cycle_time": 1, "output": 1, "speed": 3}]}`},
		{"empty document", FormatYAML, ""},
	}

	l := NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestLoader_SchemaViolationLocation(t *testing.T) {
	data := "recipes:\n  - item: a\n    creator: b\n    cycle_time: 1\n    output: 1\n  - item: c\n    creator: d\n    cycle_time: -2\n    output: 1\n"

	_, err := NewLoader().Parse([]byte(data), FormatYAML)
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrSchemaViolation)

	var schemaErr *validation.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.NotEmpty(t, schemaErr.Violations)
	assert.Equal(t, "/recipes/1/cycle_time", schemaErr.Violations[0].Location)
}

func TestLoader_DecodeFailures(t *testing.T) {
	l := NewLoader()

	_, err := l.Parse([]byte("recipes: [unclosed"), FormatYAML)
	assert.Error(t, err)

	_, err = l.Parse([]byte("{"), FormatJSON)
	assert.Error(t, err)

	_, err = l.Parse([]byte("{}"), Format("toml"))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoader_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{Recipes: []RecipeDef{
			{Item: "log", Creator: "woodcutter", CycleTime: 1, Output: 1},
			{Item: "planks", Creator: "sawmill", CycleTime: 1, Output: 1, Requirements: []RequirementDef{{Item: "log", Amount: 1}}},
		}}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"empty", func(c *Config) { c.Recipes = nil }, ErrInvalidConfig},
		{"empty creator", func(c *Config) { c.Recipes[0].Creator = "" }, ErrInvalidConfig},
		{"duplicate key", func(c *Config) { c.Recipes = append(c.Recipes, c.Recipes[0]) }, ErrDuplicateRecipeKey},
		{"negative cycle time", func(c *Config) { c.Recipes[0].CycleTime = -1 }, ErrInvalidConfig},
		{"zero output", func(c *Config) { c.Recipes[1].Output = 0 }, ErrInvalidConfig},
		{"inverted tool range", func(c *Config) {
			c.Recipes[0].Toolset = ToolsetDef{MinimumTool: "iron", MaximumTool: "stone"}
		}, ErrInvalidConfig},
		{"unknown toolset type", func(c *Config) { c.Recipes[0].Toolset = ToolsetDef{Type: "wand"} }, ErrInvalidConfig},
		{"requirement without producer", func(c *Config) {
			c.Recipes[1].Requirements = append(c.Recipes[1].Requirements, RequirementDef{Item: "nails", Amount: 1})
		}, ErrInvalidItem},
		{"non-positive requirement", func(c *Config) { c.Recipes[1].Requirements[0].Amount = 0 }, ErrInvalidConfig},
		{"optional output without producer", func(c *Config) {
			c.Recipes[1].OptionalOutputs = []OptionalOutputDef{{Item: "sawdust", Amount: 1, Likelihood: 0.5}}
		}, ErrInvalidItem},
		{"likelihood out of range", func(c *Config) {
			c.Recipes[1].OptionalOutputs = []OptionalOutputDef{{Item: "log", Amount: 1, Likelihood: 2}}
		}, ErrInvalidConfig},
	}

	l := NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := l.Validate(c)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	t.Run("nil config", func(t *testing.T) {
		assert.True(t, errors.Is(l.Validate(nil), ErrInvalidConfig))
	})
}

func TestConfig_RecipesToolsets(t *testing.T) {
	config := &Config{Recipes: []RecipeDef{
		{Item: "a", Creator: "defaults", CycleTime: 1, Output: 1},
		{Item: "b", Creator: "ranged", CycleTime: 1, Output: 1, Toolset: ToolsetDef{Type: "default", MinimumTool: "Stone", MaximumTool: "iron"}},
		{Item: "c", Creator: "machine", CycleTime: 1, Output: 1, Toolset: ToolsetDef{Type: "machine"}},
		{Item: "d", Creator: "glasses", CycleTime: 1, Output: 1, Toolset: ToolsetDef{Type: "eyeglasses"}},
	}}

	recipes, err := config.DomainRecipes()
	require.NoError(t, err)
	require.Len(t, recipes, 4)

	assert.Equal(t, toolset.DefaultToolset{MinimumTool: toolset.TierNone, MaximumTool: toolset.TierSteel}, recipes[0].Toolset)
	assert.Equal(t, toolset.DefaultToolset{MinimumTool: toolset.TierStone, MaximumTool: toolset.TierIron}, recipes[1].Toolset)
	assert.Equal(t, toolset.MachineToolset{}, recipes[2].Toolset)
	assert.Equal(t, toolset.EyeglassesToolset{}, recipes[3].Toolset)
}

func TestLoader_Load(t *testing.T) {
	l := NewLoader()

	path := writeCatalog(t, "catalog.yaml", smallCatalogYAML)
	config, err := l.Load(path)
	require.NoError(t, err)
	assert.Len(t, config.Recipes, 4)

	_, err = l.Load(path + ".missing")
	assert.Error(t, err)
}

func TestLoader_ShippedCatalog(t *testing.T) {
	l := NewLoader()

	config, err := l.Load("../../configs/catalog.yaml")
	require.NoError(t, err)
	require.NoError(t, l.Validate(config))

	recipes, err := config.DomainRecipes()
	require.NoError(t, err)
	_, err = NewIndex(recipes)
	assert.NoError(t, err)
}
