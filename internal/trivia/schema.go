package trivia

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const responseSchemaURL = "schema://trivia-questions.json"

// responseSchema covers the fields this client reads from The Trivia API v2.
// Extra fields (tags, regions, isNiche ...) are allowed.
var responseSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":            map[string]any{"type": "string"},
			"category":      map[string]any{"type": "string"},
			"difficulty":    map[string]any{"type": "string"},
			"correctAnswer": map[string]any{"type": "string"},
			"incorrectAnswers": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string"},
			},
			"question": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{"type": "string"},
				},
				"required": []any{"text"},
			},
		},
		"required": []any{"question", "correctAnswer", "incorrectAnswers"},
	},
}

var compiledResponseSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(responseSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal response schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse response schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(responseSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(responseSchemaURL)
})

// validateResponse checks raw against the response schema.
func validateResponse(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %w", ErrMalformed, err)
	}
	schema, err := compiledResponseSchema()
	if err != nil {
		return fmt.Errorf("%w: compile schema: %w", ErrMalformed, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%w: schema validation failed: %w", ErrMalformed, err)
	}
	return nil
}
