// pkg/registry/registry.go
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Endpoint IDs used by the HTTP API.
const (
	EndpointSearch     = "search"
	EndpointDetails    = "details"
	EndpointClearCache = "clear-cache"
)

//go:embed registry.json
var embedded []byte

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Endpoint string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s input validation failed: %s", e.Endpoint, strings.Join(e.Problems, "; "))
}

func LoadRegistry(path string) (*APIRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Default returns the registry compiled into the binary.
func Default() (*APIRegistry, error) {
	return Parse(embedded)
}

func Parse(data []byte) (*APIRegistry, error) {
	var reg APIRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	return &reg, nil
}

// Find returns the endpoint with id, or nil.
func (r *APIRegistry) Find(id string) *Endpoint {
	for i := range r.Endpoints {
		if r.Endpoints[i].ID == id {
			return &r.Endpoints[i]
		}
	}
	return nil
}

// Check compiles every input and output schema and reports duplicate IDs.
func (r *APIRegistry) Check() error {
	seen := make(map[string]bool)
	for _, ep := range r.Endpoints {
		if ep.ID == "" {
			return fmt.Errorf("endpoint with path %q has no id", ep.Path)
		}
		if seen[ep.ID] {
			return fmt.Errorf("duplicate endpoint id %q", ep.ID)
		}
		seen[ep.ID] = true

		for name, schema := range map[string]map[string]interface{}{"input": ep.InputSchema, "output": ep.OutputSchema} {
			if len(schema) == 0 {
				continue
			}
			if _, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema)); err != nil {
				return fmt.Errorf("endpoint %q: invalid %s schema: %w", ep.ID, name, err)
			}
		}
	}
	return nil
}

// ValidateInput checks document against the endpoint input schema. An endpoint without one accepts anything.
func (e *Endpoint) ValidateInput(document interface{}) error {
	if len(e.InputSchema) == 0 {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(e.InputSchema)
	documentLoader := gojsonschema.NewGoLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		problems := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			problems[i] = desc.String()
		}
		return &ValidationError{Endpoint: e.ID, Problems: problems}
	}

	return nil
}
