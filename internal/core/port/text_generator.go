package port

import (
	"context"
	"encoding/json"
)

// Schema is the subset of JSON schema the text generators understand. It is
// translated to each backend's native form by the adapter.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// TextGenerator produces structured text from a prompt. Output is not
// deterministic and must be validated by the caller.
type TextGenerator interface {
	// GenerateJSON returns a JSON document conforming to schema.
	GenerateJSON(ctx context.Context, prompt string, schema *Schema) (json.RawMessage, error)
	// IsConfigured reports whether a backend is available. When false,
	// GenerateJSON always fails with domain.ErrGenerationUnavailable.
	IsConfigured() bool
}
