package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

func TestToSchema(t *testing.T) {
	in := &port.Schema{
		Type: "object",
		Properties: map[string]*port.Schema{
			"headline": {Type: "string", Description: "hero headline"},
			"tags":     {Type: "array", Items: &port.Schema{Type: "string", Enum: []string{"a", "b"}}},
			"budget":   {Type: "number"},
		},
		Required: []string{"headline"},
	}

	got := toSchema(in)
	require.NotNil(t, got)
	assert.Equal(t, genai.TypeObject, got.Type)
	assert.Equal(t, []string{"headline"}, got.Required)
	assert.Equal(t, genai.TypeString, got.Properties["headline"].Type)
	assert.Equal(t, "hero headline", got.Properties["headline"].Description)
	assert.Equal(t, genai.TypeArray, got.Properties["tags"].Type)
	assert.Equal(t, []string{"a", "b"}, got.Properties["tags"].Items.Enum)
	assert.Equal(t, genai.TypeNumber, got.Properties["budget"].Type)
	assert.Nil(t, toSchema(nil))
}

func TestUnconfiguredGenerator(t *testing.T) {
	g, err := New(context.Background(), configs.GenAI{Model: "gemini-2.5-flash"})
	require.NoError(t, err)

	assert.False(t, g.IsConfigured())
	_, err = g.GenerateJSON(context.Background(), "prompt", &port.Schema{Type: "object"})
	assert.ErrorIs(t, err, domain.ErrGenerationUnavailable)
}

func newServer(t *testing.T, text string) (*httptest.Server, *string) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		if !strings.HasSuffix(r.URL.Path, "models/test-model:generateContent") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":`+text+`}]}}]}`)
	}))
	t.Cleanup(srv.Close)
	return srv, &body
}

func TestGenerateJSON(t *testing.T) {
	srv, body := newServer(t, `"{\"headline\":\"Your Family Doctor\"}"`)
	g, err := New(context.Background(), configs.GenAI{APIKey: "key", Model: "test-model", BaseURL: srv.URL, Temperature: 0.2})
	require.NoError(t, err)
	require.True(t, g.IsConfigured())

	raw, err := g.GenerateJSON(context.Background(), "write a hero", &port.Schema{Type: "object"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"headline":"Your Family Doctor"}`, string(raw))
	assert.Contains(t, *body, "write a hero")
	assert.Contains(t, *body, "application/json")
}

func TestGenerateJSONRejectsProse(t *testing.T) {
	srv, _ := newServer(t, `"Sure! Here is your hero."`)
	g, err := New(context.Background(), configs.GenAI{APIKey: "key", Model: "test-model", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = g.GenerateJSON(context.Background(), "write a hero", &port.Schema{Type: "object"})
	assert.ErrorContains(t, err, "invalid JSON")
}
