package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
	"github.com/osse101/ColonyPlanner_Go/internal/validation"
)

// Sentinel errors for catalog loader
var (
	ErrDuplicateRecipeKey = errors.New("duplicate recipe key")
	ErrInvalidItem        = errors.New("invalid item reference")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrNotLoaded          = errors.New(ErrMsgNotLoaded)
)

//go:embed schema/catalog.schema.json
var schemaFS embed.FS

// Format is the encoding of a catalog file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension. Anything that is
// not .json is read as YAML, which also accepts JSON documents.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Config represents a recipe catalog file
type Config struct {
	Version     string      `json:"version"`
	Description string      `json:"description"`
	Recipes     []RecipeDef `json:"recipes"`
}

// RecipeDef represents a single recipe in the catalog
type RecipeDef struct {
	Item            string              `json:"item"`
	Creator         string              `json:"creator"`
	CycleTime       float64             `json:"cycle_time"`
	Output          float64             `json:"output"`
	Toolset         ToolsetDef          `json:"toolset"`
	Requirements    []RequirementDef    `json:"requirements,omitempty"`
	OptionalOutputs []OptionalOutputDef `json:"optional_outputs,omitempty"`
}

// ToolsetDef is the tagged encoding of toolset.Toolset. An empty Type means
// the default tiered toolset; empty tiers mean none and steel.
type ToolsetDef struct {
	Type        string `json:"type,omitempty"`
	MinimumTool string `json:"minimum_tool,omitempty"`
	MaximumTool string `json:"maximum_tool,omitempty"`
}

// RequirementDef is an ingredient consumed per cycle
type RequirementDef struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// OptionalOutputDef is a byproduct yielded per cycle
type OptionalOutputDef struct {
	Item       string  `json:"item"`
	Amount     float64 `json:"amount"`
	Likelihood float64 `json:"likelihood"`
}

// Loader handles loading and validating recipe catalogs
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte, format Format) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader that checks documents against the embedded
// catalog schema
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewFSSchemaValidator(schemaFS),
	}
}

// Load reads and parses a catalog file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	config, err := l.Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse decodes a catalog document. YAML is converted to JSON first, so both
// formats are checked against the same schema before binding to Config.
func (l *catalogLoader) Parse(data []byte, format Format) (*Config, error) {
	var encoded []byte
	switch format {
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeCatalogFailed, err)
		}
		normalized, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeCatalogFailed, err)
		}
		encoded = normalized
	case FormatJSON:
		encoded = data
	default:
		return nil, fmt.Errorf("%w: "+ErrMsgUnknownFormatFmt, ErrInvalidConfig, format)
	}

	if err := l.schemaValidator.ValidateJSON(encoded, CatalogSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, format, err)
	}

	var config Config
	if err := json.Unmarshal(encoded, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeCatalogFailed, err)
	}
	return &config, nil
}

// Validate checks the catalog for errors the schema cannot express: duplicate
// keys, tier ranges and dangling item references
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Recipes) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoRecipesDefined)
	}

	produced := make(map[string]bool, len(config.Recipes))
	keys := make(map[domain.RecipeKey]bool, len(config.Recipes))
	for i := range config.Recipes {
		def := &config.Recipes[i]
		if def.Item == "" || def.Creator == "" {
			return fmt.Errorf(ErrFmtRecipeAtIndexEmpty, ErrInvalidConfig, i)
		}
		key := domain.RecipeKey{ItemID: def.Item, CreatorID: def.Creator}
		if keys[key] {
			return fmt.Errorf(ErrFmtDuplicateRecipe, ErrDuplicateRecipeKey, key)
		}
		keys[key] = true
		produced[def.Item] = true
	}

	for i := range config.Recipes {
		if err := validateRecipeDef(&config.Recipes[i], produced); err != nil {
			return err
		}
	}
	return nil
}

func validateRecipeDef(def *RecipeDef, produced map[string]bool) error {
	key := domain.RecipeKey{ItemID: def.Item, CreatorID: def.Creator}

	if def.CycleTime <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveCycleTime, ErrInvalidConfig, key)
	}
	if def.Output <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveOutput, ErrInvalidConfig, key)
	}
	if _, err := def.Toolset.toToolset(); err != nil {
		return fmt.Errorf(ErrFmtBadToolset, ErrInvalidConfig, key, err)
	}

	for j, req := range def.Requirements {
		switch {
		case req.Item == "":
			return fmt.Errorf(ErrFmtRequirementEmpty, ErrInvalidConfig, key, j)
		case req.Amount <= 0:
			return fmt.Errorf(ErrFmtRequirementAmount, ErrInvalidConfig, key, j)
		case !produced[req.Item]:
			return fmt.Errorf(ErrFmtRequirementUnknown, ErrInvalidItem, key, j, req.Item)
		}
	}

	for j, opt := range def.OptionalOutputs {
		switch {
		case opt.Item == "":
			return fmt.Errorf(ErrFmtOptionalOutputEmpty, ErrInvalidConfig, key, j)
		case opt.Amount <= 0:
			return fmt.Errorf(ErrFmtOptionalOutputAmount, ErrInvalidConfig, key, j)
		case opt.Likelihood < 0 || opt.Likelihood > 1:
			return fmt.Errorf(ErrFmtOptionalOutputLikely, ErrInvalidConfig, key, j)
		case !produced[opt.Item]:
			return fmt.Errorf(ErrFmtOptionalOutputUnknown, ErrInvalidItem, key, j, opt.Item)
		}
	}
	return nil
}

// DomainRecipes converts the definitions to domain recipes in file order
func (c *Config) DomainRecipes() ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0, len(c.Recipes))
	for _, def := range c.Recipes {
		ts, err := def.Toolset.toToolset()
		if err != nil {
			return nil, fmt.Errorf(ErrFmtBadToolset, ErrInvalidConfig, domain.RecipeKey{ItemID: def.Item, CreatorID: def.Creator}, err)
		}

		recipe := domain.Recipe{
			ItemID:    def.Item,
			CreatorID: def.Creator,
			CycleTime: def.CycleTime,
			Output:    def.Output,
			Toolset:   ts,
		}
		for _, req := range def.Requirements {
			recipe.Requirements = append(recipe.Requirements, domain.Requirement{ItemID: req.Item, Amount: req.Amount})
		}
		for _, opt := range def.OptionalOutputs {
			recipe.OptionalOutputs = append(recipe.OptionalOutputs, domain.OptionalOutput{
				ItemID:     opt.Item,
				Amount:     opt.Amount,
				Likelihood: opt.Likelihood,
			})
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (d ToolsetDef) toToolset() (toolset.Toolset, error) {
	switch toolset.Kind(strings.ToLower(strings.TrimSpace(d.Type))) {
	case "", toolset.KindDefault:
		minimum, maximum := toolset.TierNone, toolset.TierSteel
		var err error
		if d.MinimumTool != "" {
			if minimum, err = toolset.ParseTier(d.MinimumTool); err != nil {
				return nil, err
			}
		}
		if d.MaximumTool != "" {
			if maximum, err = toolset.ParseTier(d.MaximumTool); err != nil {
				return nil, err
			}
		}
		if minimum > maximum {
			return nil, fmt.Errorf(ErrFmtToolRangeInverted, minimum, maximum)
		}
		return toolset.DefaultToolset{MinimumTool: minimum, MaximumTool: maximum}, nil
	case toolset.KindMachine:
		return toolset.MachineToolset{}, nil
	case toolset.KindEyeglasses:
		return toolset.EyeglassesToolset{}, nil
	default:
		return nil, fmt.Errorf(ErrFmtUnknownToolsetType, d.Type)
	}
}
