package validation

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipeSchemaPath = "schemas/recipe.schema.json"

const recipeSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"item": {"type": "string", "minLength": 1},
		"cycle_time": {"type": "number", "exclusiveMinimum": 0},
		"toolset": {"type": "string", "enum": ["default", "machine", "eyeglasses"]}
	},
	"required": ["item", "cycle_time"]
}`

func newTestValidator() SchemaValidator {
	return NewFSSchemaValidator(fstest.MapFS{
		recipeSchemaPath:             &fstest.MapFile{Data: []byte(recipeSchema)},
		"schemas/broken.schema.json": &fstest.MapFile{Data: []byte(`{"type": `)},
	})
}

func TestSchemaValidator_ValidateJSON(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		data      string
		wantErr   bool
		violation Violation
	}{
		{"valid", `{"item": "plank", "cycle_time": 10}`, false, Violation{}},
		{"valid with toolset", `{"item": "gear", "cycle_time": 2.5, "toolset": "machine"}`, false, Violation{}},
		{"missing required", `{"item": "plank"}`, true, Violation{Location: "", Keyword: "required"}},
		{"wrong type", `{"item": "plank", "cycle_time": "slow"}`, true, Violation{Location: "/cycle_time", Keyword: "type"}},
		{"constraint violation", `{"item": "plank", "cycle_time": 0}`, true, Violation{Location: "/cycle_time", Keyword: "exclusiveMinimum"}},
		{"bad enum", `{"item": "plank", "cycle_time": 1, "toolset": "magic"}`, true, Violation{Location: "/toolset", Keyword: "enum"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateJSON([]byte(tt.data), recipeSchemaPath)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSchemaViolation))

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, recipeSchemaPath, schemaErr.Schema)
			assert.Contains(t, schemaErr.Violations, tt.violation)
		})
	}
}

func TestSchemaValidator_InvalidJSON(t *testing.T) {
	err := newTestValidator().ValidateJSON([]byte(`{"item": }`), recipeSchemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse JSON")
	assert.False(t, errors.Is(err, ErrSchemaViolation))
}

func TestSchemaValidator_SchemaLoadFailures(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateJSON([]byte(`{}`), "schemas/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedded schema")

	err = v.ValidateJSON([]byte(`{}`), "schemas/broken.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaError_Message(t *testing.T) {
	err := &SchemaError{
		Schema: "catalog.schema.json",
		Violations: []Violation{
			{Location: "", Keyword: "required"},
			{Location: "/recipes/0/output", Keyword: "exclusiveMinimum"},
			{Location: "/recipes/1"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "schema validation failed against catalog.schema.json")
	assert.Contains(t, msg, "at (root): required validation failed")
	assert.Contains(t, msg, "at /recipes/0/output: exclusiveMinimum validation failed")
	assert.Contains(t, msg, "at /recipes/1: validation failed")
}
