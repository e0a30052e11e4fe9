// Package adplatform implements port.AdPlatform against a Google-Ads-style
// REST API: resources are created through per-collection :mutate calls and
// reported through GAQL search.
package adplatform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/port"
	"adpilot/internal/telemetry"
)

// Client is a rate-limited REST client for the ad platform.
type Client struct {
	cfg        configs.Ads
	customerID string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	metrics    *telemetry.Metrics
}

func New(cfg configs.Ads, logger *slog.Logger, m *telemetry.Metrics) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 1
	}
	return &Client{
		cfg:        cfg,
		customerID: strings.ReplaceAll(cfg.CustomerID, "-", ""),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		logger:  logger,
		metrics: m,
	}
}

func (c *Client) IsConfigured() bool {
	return len(c.cfg.Missing()) == 0
}

func (c *Client) MissingSettings() []string {
	return c.cfg.Missing()
}

// apiError is the error envelope returned with 4xx and 5xx responses.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Errors []struct {
				Message string `json:"message"`
			} `json:"errors"`
		} `json:"details"`
	} `json:"error"`
}

func (e apiError) messages() []string {
	var out []string
	for _, d := range e.Error.Details {
		for _, it := range d.Errors {
			if it.Message != "" {
				out = append(out, it.Message)
			}
		}
	}
	if len(out) == 0 && e.Error.Message != "" {
		out = append(out, e.Error.Message)
	}
	return out
}

// call performs one request under the rate limiter and records its outcome.
// op labels the call in metrics and logs.
func (c *Client) call(ctx context.Context, op, path string, body, result any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.PlatformCall(op, err, time.Since(start))
		if err != nil {
			c.logger.Debug("ad platform call failed", slog.String("op", op), slog.Any("error", err))
		}
	}()

	if err = c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.cfg.BaseURL, "/")+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if c.cfg.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", strings.ReplaceAll(c.cfg.LoginCustomerID, "-", ""))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		pe := &port.PlatformError{StatusCode: resp.StatusCode}
		var ae apiError
		if json.Unmarshal(raw, &ae) == nil {
			pe.Messages = ae.messages()
		}
		if len(pe.Messages) == 0 {
			pe.Messages = []string{strings.TrimSpace(string(raw))}
		}
		return pe
	}

	if result != nil {
		if err = json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) customerPath(suffix string) string {
	return "/customers/" + c.customerID + suffix
}

type mutateRequest struct {
	Operations []operation `json:"operations"`
}

type operation struct {
	Create any `json:"create"`
}

type mutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

// mutate creates resources in collection and returns their resource names
// in request order.
func (c *Client) mutate(ctx context.Context, op, collection string, creates ...any) ([]string, error) {
	req := mutateRequest{Operations: make([]operation, len(creates))}
	for i, it := range creates {
		req.Operations[i] = operation{Create: it}
	}
	var resp mutateResponse
	if err := c.call(ctx, op, c.customerPath("/"+collection+":mutate"), req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) != len(creates) {
		return nil, fmt.Errorf("%s: expected %d results, got %d", op, len(creates), len(resp.Results))
	}
	out := make([]string, len(resp.Results))
	for i, r := range resp.Results {
		out[i] = r.ResourceName
	}
	return out, nil
}

func (c *Client) mutateOne(ctx context.Context, op, collection string, create any) (string, error) {
	names, err := c.mutate(ctx, op, collection, create)
	if err != nil {
		return "", err
	}
	return names[0], nil
}
