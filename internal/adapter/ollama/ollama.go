// Package ollama implements port.TextGenerator on a local Ollama server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const probeTTL = time.Minute

// Generator calls /api/chat with a JSON schema in the format field, which
// makes Ollama constrain the output to that schema.
type Generator struct {
	BaseURL     string
	Model       string
	Temperature float32
	client      *http.Client

	mu        sync.Mutex
	probedAt  time.Time
	available bool
}

func New(baseURL, model string, temperature float32, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Generator{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Model:       model,
		Temperature: temperature,
		client:      &http.Client{Timeout: timeout},
	}
}

// IsConfigured checks that the server is up and has the model pulled. The
// answer is cached for a minute.
func (o *Generator) IsConfigured() bool {
	if o.BaseURL == "" || o.Model == "" {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.probedAt.IsZero() && time.Since(o.probedAt) < probeTTL {
		return o.available
	}
	o.available = o.probe()
	o.probedAt = time.Now()
	return o.available
}

func (o *Generator) probe() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.BaseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}

	var result struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false
	}
	base := strings.SplitN(o.Model, ":", 2)[0]
	for _, m := range result.Models {
		if strings.HasPrefix(m.Name, base) {
			return true
		}
	}
	return false
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string         `json:"model"`
	Messages []chatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Format   *port.Schema   `json:"format,omitempty"`
	Options  map[string]any `json:"options,omitempty"`
}

func (o *Generator) GenerateJSON(ctx context.Context, prompt string, schema *port.Schema) (json.RawMessage, error) {
	if o.BaseURL == "" || o.Model == "" {
		return nil, domain.ErrGenerationUnavailable
	}

	data, err := json.Marshal(chatRequest{
		Model:    o.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Format:   schema,
		Options:  map[string]any{"temperature": o.Temperature},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+"/api/chat", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama chat: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("ollama returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result struct {
		Message chatMessage `json:"message"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return ExtractJSON(result.Message.Content)
}

// ExtractJSON returns the JSON document in text, stripping markdown code
// fences some models wrap around their answer.
func ExtractJSON(text string) (json.RawMessage, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		lines := strings.Split(text, "\n")
		end := len(lines)
		for i := len(lines) - 1; i > 0; i-- {
			if strings.TrimSpace(lines[i]) == "```" {
				end = i
				break
			}
		}
		text = strings.TrimSpace(strings.Join(lines[1:end], "\n"))
	}
	if text == "" {
		return nil, errors.New("empty response")
	}
	if !json.Valid([]byte(text)) {
		return nil, errors.New("response is not valid JSON")
	}
	return json.RawMessage(text), nil
}
