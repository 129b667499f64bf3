package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrSchemaViolation is wrapped by every document-level validation failure
var ErrSchemaViolation = errors.New("schema validation failed")

// Violation is one failing location in a document
type Violation struct {
	Location string // JSON pointer into the document, "" for the root
	Keyword  string // failing schema keyword path, for example "minItems"
}

func (v Violation) String() string {
	location := v.Location
	if location == "" {
		location = "(root)"
	}
	if v.Keyword == "" {
		return fmt.Sprintf("at %s: validation failed", location)
	}
	return fmt.Sprintf("at %s: %s validation failed", location, v.Keyword)
}

// SchemaError lists every violation found in a document
type SchemaError struct {
	Schema     string
	Violations []Violation
}

func (e *SchemaError) Error() string {
	lines := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		lines = append(lines, "  - "+v.String())
	}
	return fmt.Sprintf("%s against %s:\n%s", ErrSchemaViolation, e.Schema, strings.Join(lines, "\n"))
}

func (e *SchemaError) Unwrap() error { return ErrSchemaViolation }

// SchemaValidator validates JSON documents against schemas read from an fs.FS
type SchemaValidator interface {
	ValidateJSON(data []byte, schemaPath string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
	source   fs.FS
}

// NewFSSchemaValidator creates a validator that reads schemas from fsys,
// typically an embed.FS shipped with the binary. Compiled schemas are cached.
func NewFSSchemaValidator(fsys fs.FS) SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
		source:   fsys,
	}
}

// ValidateJSON validates an encoded JSON document. Callers holding YAML
// convert it to JSON first so numbers and maps have the shapes the schema
// engine expects.
func (v *validator) ValidateJSON(data []byte, schemaPath string) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	schema, err := v.loadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if !errors.As(err, &validationErr) {
			return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
		}
		schemaErr := &SchemaError{Schema: schemaPath}
		collectViolations(validationErr, &schemaErr.Violations)
		return schemaErr
	}
	return nil
}

// loadSchema compiles a schema on first use
func (v *validator) loadSchema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaPath]; ok {
		return schema, nil
	}

	data, err := fs.ReadFile(v.source, schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}

	schemaJSON, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(schemaPath, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaPath] = schema
	return schema, nil
}

// collectViolations flattens the error tree. Only leaves are reported; inner
// nodes just say that some child failed.
func collectViolations(err *jsonschema.ValidationError, out *[]Violation) {
	if len(err.Causes) == 0 {
		*out = append(*out, toViolation(err))
		return
	}
	for _, cause := range err.Causes {
		collectViolations(cause, out)
	}
}

func toViolation(err *jsonschema.ValidationError) Violation {
	var v Violation
	if len(err.InstanceLocation) > 0 {
		v.Location = "/" + strings.Join(err.InstanceLocation, "/")
	}
	if err.ErrorKind != nil {
		v.Keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	return v
}
