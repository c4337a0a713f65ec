package provider

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed roadmap.schema.json
var roadmapSchemaJSON []byte

const roadmapSchemaURL = "schema://roadmap.json"

var (
	roadmapSchemaOnce sync.Once
	roadmapSchema     *jsonschema.Schema
	roadmapSchemaErr  error
)

// compiledRoadmapSchema compiles the embedded schema once.
func compiledRoadmapSchema() (*jsonschema.Schema, error) {
	roadmapSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(roadmapSchemaJSON, &def); err != nil {
			roadmapSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(roadmapSchemaURL, def); err != nil {
			roadmapSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		roadmapSchema, roadmapSchemaErr = c.Compile(roadmapSchemaURL)
	})
	return roadmapSchema, roadmapSchemaErr
}

// validateRoadmap checks a fetch body against the roadmap schema.
// Returns *ErrInvalidResponse on failure.
func validateRoadmap(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compiledRoadmapSchema()
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile roadmap schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}
	return nil
}
