package validation

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrUnknownSchema is returned when validating against a name that was
// never registered
var ErrUnknownSchema = errors.New("schema not registered")

// SchemaValidator validates JSON documents against named, pre-registered
// JSON schemas
type SchemaValidator interface {
	RegisterSchema(name string, schema []byte) error
	ValidateBytes(data []byte, schema string) error
}

// Violation is one failed schema keyword at one location in the document
type Violation struct {
	Location string
	Keyword  string
}

func (v Violation) String() string {
	if v.Keyword == "" {
		return fmt.Sprintf("at %s: validation failed", v.Location)
	}
	return fmt.Sprintf("at %s: %s validation failed", v.Location, v.Keyword)
}

// ValidationError lists every violation found in a document, sorted by
// location
type ValidationError struct {
	Schema     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		lines = append(lines, "  - "+v.String())
	}
	return fmt.Sprintf("%s schema validation failed:\n%s", e.Schema, strings.Join(lines, "\n"))
}

type validator struct {
	mu       sync.RWMutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates an empty validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// RegisterSchema compiles schema under name. Registering a name twice keeps
// the first schema.
func (v *validator) RegisterSchema(name string, schema []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf("failed to parse schema %s: %w", name, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[name]; ok {
		return nil
	}
	if err := v.compiler.AddResource(name, doc); err != nil {
		return fmt.Errorf("failed to add schema %s: %w", name, err)
	}
	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", name, err)
	}
	v.schemas[name] = compiled
	return nil
}

// ValidateBytes checks data against the named schema. Schema violations are
// returned as *ValidationError.
func (v *validator) ValidateBytes(data []byte, name string) error {
	v.mu.RLock()
	schema, ok := v.schemas[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	err = schema.Validate(doc)
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		return &ValidationError{Schema: name, Violations: collectViolations(verr)}
	}
	return err
}

// collectViolations flattens the leaf causes of a validation error
func collectViolations(err *jsonschema.ValidationError) []Violation {
	var out []Violation
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, violationFor(e))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(err)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out
}

func violationFor(e *jsonschema.ValidationError) Violation {
	v := Violation{Location: "(root)"}
	if len(e.InstanceLocation) > 0 {
		v.Location = "/" + strings.Join(e.InstanceLocation, "/")
	}
	if e.ErrorKind != nil {
		v.Keyword = strings.Join(e.ErrorKind.KeywordPath(), ".")
	}
	return v
}
