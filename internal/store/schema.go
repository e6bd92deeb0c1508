package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://wait-trivia-settings.json"

// settingsSchema describes the settings file. Unknown keys are tolerated and
// ignored on decode.
var settingsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"difficulties": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"categories": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"limit": map[string]any{
			"type":    "integer",
			"minimum": MinLimit,
			"maximum": MaxLimit,
		},
	},
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a decoded JSON document, not Go literals.
	raw, err := json.Marshal(settingsSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal settings schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse settings schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// decode validates raw file content against the schema and decodes it.
func decode(raw []byte) (Settings, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Settings{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return Settings{}, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return Settings{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}
