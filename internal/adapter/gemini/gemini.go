// Package gemini implements port.TextGenerator on the Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Generator asks Gemini for JSON constrained by a response schema. Without
// an API key it stays unconfigured and every call fails with
// domain.ErrGenerationUnavailable.
type Generator struct {
	client      *genai.Client
	model       string
	temperature float32
}

func New(ctx context.Context, cfg configs.GenAI) (*Generator, error) {
	g := &Generator{model: cfg.Model, temperature: cfg.Temperature}
	if cfg.APIKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

func (g *Generator) IsConfigured() bool {
	return g.client != nil
}

func (g *Generator) GenerateJSON(ctx context.Context, prompt string, schema *port.Schema) (json.RawMessage, error) {
	if g.client == nil {
		return nil, domain.ErrGenerationUnavailable
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(g.temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   toSchema(schema),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, errors.New("gemini returned no content")
	}
	if !json.Valid([]byte(text)) {
		return nil, errors.New("gemini returned invalid JSON")
	}
	return json.RawMessage(text), nil
}

var schemaTypes = map[string]genai.Type{
	"object":  genai.TypeObject,
	"array":   genai.TypeArray,
	"string":  genai.TypeString,
	"number":  genai.TypeNumber,
	"integer": genai.TypeInteger,
	"boolean": genai.TypeBoolean,
}

// toSchema converts the port schema into Gemini's OpenAPI subset.
func toSchema(s *port.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        schemaTypes[strings.ToLower(s.Type)],
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
		Items:       toSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toSchema(prop)
		}
	}
	return out
}
