package adplatform

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type searchResponse struct {
	Results []searchRow `json:"results"`
}

type searchRow struct {
	Segments struct {
		Date string `json:"date"`
	} `json:"segments"`
	Metrics struct {
		Impressions string  `json:"impressions"`
		Clicks      string  `json:"clicks"`
		Conversions float64 `json:"conversions"`
		CostMicros  string  `json:"costMicros"`
	} `json:"metrics"`
	ConversionAction struct {
		ResourceName string `json:"resourceName"`
	} `json:"conversionAction"`
}

func (c *Client) search(ctx context.Context, op, query string) ([]searchRow, error) {
	var resp searchResponse
	if err := c.call(ctx, op, c.customerPath("/googleAds:search"), map[string]string{"query": query}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// QueryMetrics returns one row per day with traffic for the campaign.
func (c *Client) QueryMetrics(ctx context.Context, campaignID string, r domain.DateRange) ([]port.MetricRow, error) {
	query := fmt.Sprintf(`SELECT segments.date, metrics.impressions, metrics.clicks, metrics.conversions, metrics.cost_micros
FROM campaign
WHERE campaign.resource_name = '%s' AND segments.date BETWEEN '%s' AND '%s'
ORDER BY segments.date`, quote(campaignID), r.From.Format(time.DateOnly), r.To.Format(time.DateOnly))

	rows, err := c.search(ctx, "query_metrics", query)
	if err != nil {
		return nil, err
	}
	out := make([]port.MetricRow, 0, len(rows))
	for _, row := range rows {
		day, err := time.Parse(time.DateOnly, row.Segments.Date)
		if err != nil {
			return nil, fmt.Errorf("metrics row date %q: %w", row.Segments.Date, err)
		}
		cost := parseInt(row.Metrics.CostMicros)
		out = append(out, port.MetricRow{
			Day:         day,
			Impressions: parseInt(row.Metrics.Impressions),
			Clicks:      parseInt(row.Metrics.Clicks),
			Conversions: row.Metrics.Conversions,
			Cost:        float64(cost) / 1e6,
		})
	}
	return out, nil
}

// FindOrCreateConversionAction looks the action up by name and creates an
// upload-clicks action when none exists.
func (c *Client) FindOrCreateConversionAction(ctx context.Context, name string) (string, error) {
	rows, err := c.search(ctx, "find_conversion_action", fmt.Sprintf(
		`SELECT conversion_action.resource_name FROM conversion_action WHERE conversion_action.name = '%s' AND conversion_action.status != 'REMOVED'`,
		quote(name)))
	if err != nil {
		return "", err
	}
	if len(rows) > 0 && rows[0].ConversionAction.ResourceName != "" {
		return rows[0].ConversionAction.ResourceName, nil
	}
	return c.mutateOne(ctx, "create_conversion_action", "conversionActions", map[string]any{
		"name":     name,
		"type":     "UPLOAD_CLICKS",
		"category": "BOOK_APPOINTMENT",
		"status":   "ENABLED",
	})
}

type clickConversion struct {
	GCLID              string  `json:"gclid"`
	ConversionAction   string  `json:"conversionAction"`
	ConversionDateTime string  `json:"conversionDateTime"`
	ConversionValue    float64 `json:"conversionValue"`
	CurrencyCode       string  `json:"currencyCode"`
}

type uploadResponse struct {
	PartialFailureError *struct {
		Message string `json:"message"`
	} `json:"partialFailureError"`
}

// UploadClickConversion reports one offline conversion. Partial failures
// come back with status 200 and are turned into errors here.
func (c *Client) UploadClickConversion(ctx context.Context, conv port.ClickConversion) error {
	var resp uploadResponse
	err := c.call(ctx, "upload_click_conversion", "/customers/"+c.customerID+":uploadClickConversions", map[string]any{
		"conversions": []clickConversion{{
			GCLID:              conv.GCLID,
			ConversionAction:   conv.ConversionAction,
			ConversionDateTime: conv.At.UTC().Format("2006-01-02 15:04:05-07:00"),
			ConversionValue:    conv.Value,
			CurrencyCode:       conv.Currency,
		}},
		"partialFailure": true,
	}, &resp)
	if err != nil {
		return err
	}
	if resp.PartialFailureError != nil && resp.PartialFailureError.Message != "" {
		return &port.PlatformError{StatusCode: 200, Messages: []string{resp.PartialFailureError.Message}}
	}
	return nil
}

func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

// quote escapes a GAQL string literal.
func quote(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `'`, `\'`)
}
