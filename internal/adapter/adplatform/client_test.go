package adplatform

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/telemetry"
)

type recorded struct {
	Path    string
	Headers http.Header
	Body    map[string]any
}

// fakeAPI answers by request path and records every request.
type fakeAPI struct {
	t        *testing.T
	mu       sync.Mutex
	requests []recorded
	routes   map[string]func(body map[string]any) (int, string)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.requests = append(f.requests, recorded{Path: r.URL.Path, Headers: r.Header.Clone(), Body: body})
	route, ok := f.routes[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		http.Error(w, `{"error":{"code":404,"message":"no route"}}`, http.StatusNotFound)
		return
	}
	status, resp := route(body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp)
}

func newClient(t *testing.T, routes map[string]func(map[string]any) (int, string)) (*Client, *fakeAPI, *telemetry.Metrics) {
	api := &fakeAPI{t: t, routes: routes}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	m := telemetry.New()
	c := New(configs.Ads{
		BaseURL:         srv.URL,
		DeveloperToken:  "dev-token",
		CustomerID:      "123-456-7890",
		LoginCustomerID: "999-000-1111",
		AccessToken:     "access",
		Timeout:         time.Second,
		RateLimit:       1000,
		RateBurst:       10,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), m)
	return c, api, m
}

func ok(resp string) func(map[string]any) (int, string) {
	return func(map[string]any) (int, string) { return http.StatusOK, resp }
}

func TestConfiguration(t *testing.T) {
	c := New(configs.Ads{CustomerID: "1"}, slog.Default(), nil)
	assert.False(t, c.IsConfigured())
	assert.Equal(t, []string{"ADS_DEVELOPER_TOKEN", "ADS_ACCESS_TOKEN"}, c.MissingSettings())
}

func TestCreateCampaignSendsPausedSearchCampaign(t *testing.T) {
	c, api, m := newClient(t, map[string]func(map[string]any) (int, string){
		"/customers/1234567890/campaigns:mutate": ok(`{"results":[{"resourceName":"customers/1234567890/campaigns/42"}]}`),
	})

	id, err := c.CreateCampaign(context.Background(), port.CampaignInput{
		Name:            "busy-parents 01234567",
		BudgetID:        "customers/1234567890/campaignBudgets/7",
		Status:          port.CampaignPaused,
		TargetCPAMicros: 75_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, "customers/1234567890/campaigns/42", id)

	require.Len(t, api.requests, 1)
	req := api.requests[0]
	assert.Equal(t, "Bearer access", req.Headers.Get("Authorization"))
	assert.Equal(t, "dev-token", req.Headers.Get("developer-token"))
	assert.Equal(t, "9990001111", req.Headers.Get("login-customer-id"))

	create := req.Body["operations"].([]any)[0].(map[string]any)["create"].(map[string]any)
	assert.Equal(t, "PAUSED", create["status"])
	assert.Equal(t, "SEARCH", create["advertisingChannelType"])
	assert.Equal(t, "75000000", create["targetCpa"].(map[string]any)["targetCpaMicros"])

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlatformCalls.WithLabelValues("create_campaign", "ok")))
}

func TestCreateKeywordsBatchesOperations(t *testing.T) {
	c, api, _ := newClient(t, map[string]func(map[string]any) (int, string){
		"/customers/1234567890/adGroupCriteria:mutate": ok(`{"results":[{"resourceName":"k/1"},{"resourceName":"k/2"}]}`),
	})

	ids, err := c.CreateKeywords(context.Background(), "ag/1", []domain.Keyword{
		{Text: "family doctor", MatchType: domain.MatchPhrase},
		{Text: "family doctor", MatchType: domain.MatchExact},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"k/1", "k/2"}, ids)

	ops := api.requests[0].Body["operations"].([]any)
	require.Len(t, ops, 2)
	kw := ops[1].(map[string]any)["create"].(map[string]any)["keyword"].(map[string]any)
	assert.Equal(t, "EXACT", kw["matchType"])
}

func TestMutateResultCountMismatch(t *testing.T) {
	c, _, _ := newClient(t, map[string]func(map[string]any) (int, string){
		"/customers/1234567890/campaignCriteria:mutate": ok(`{"results":[{"resourceName":"n/1"}]}`),
	})

	_, err := c.CreateNegativeKeywords(context.Background(), "c/1", []string{"free", "jobs"})
	assert.ErrorContains(t, err, "expected 2 results, got 1")
}

func TestPlatformErrorCarriesMessages(t *testing.T) {
	c, _, m := newClient(t, map[string]func(map[string]any) (int, string){
		"/customers/1234567890/adGroups:mutate": func(map[string]any) (int, string) {
			return http.StatusBadRequest, `{"error":{"code":400,"message":"Request contains an invalid argument.","status":"INVALID_ARGUMENT",
"details":[{"errors":[{"message":"Bid is too low."},{"message":"Name is too long."}]}]}}`
		},
	})

	_, err := c.CreateAdGroup(context.Background(), port.AdGroupInput{Name: "g", CampaignID: "c/1", CPCBidMicros: 1})

	var pe *port.PlatformError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusBadRequest, pe.StatusCode)
	assert.Equal(t, []string{"Bid is too low.", "Name is too long."}, pe.Messages)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlatformCalls.WithLabelValues("create_ad_group", "error")))
}

func TestPlatformErrorWithoutEnvelope(t *testing.T) {
	c, _, _ := newClient(t, map[string]func(map[string]any) (int, string){
		"/customers/1234567890/adGroups:mutate": func(map[string]any) (int, string) {
			return http.StatusBadGateway, `upstream unavailable`
		},
	})

	_, err := c.CreateAdGroup(context.Background(), port.AdGroupInput{})
	var pe *port.PlatformError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"upstream unavailable"}, pe.Messages)
}

func TestGeoTargetConstant(t *testing.T) {
	got, err := GeoTargetConstant(" us ")
	require.NoError(t, err)
	assert.Equal(t, "geoTargetConstants/2840", got)

	got, err = GeoTargetConstant("1014221")
	require.NoError(t, err)
	assert.Equal(t, "geoTargetConstants/1014221", got)

	_, err = GeoTargetConstant("Narnia")
	assert.Error(t, err)
}

func TestQueryMetrics(t *testing.T) {
	c, api, _ := newClient(t, map[string]func(map[string]any) (int, string){
		"/customers/1234567890/googleAds:search": ok(`{"results":[
{"segments":{"date":"2026-03-08"},"metrics":{"impressions":"1000","clicks":"40","conversions":2,"costMicros":"60500000"}},
{"segments":{"date":"2026-03-09"},"metrics":{"impressions":"0"}}]}`),
	})

	rows, err := c.QueryMetrics(context.Background(), "customers/1234567890/campaigns/42", domain.DateRange{
		From: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, port.MetricRow{
		Day:         time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Impressions: 1000,
		Clicks:      40,
		Conversions: 2,
		Cost:        60.5,
	}, rows[0])
	assert.Zero(t, rows[1].Clicks)

	query := api.requests[0].Body["query"].(string)
	assert.Contains(t, query, "campaign.resource_name = 'customers/1234567890/campaigns/42'")
	assert.Contains(t, query, "BETWEEN '2026-03-01' AND '2026-03-09'")
}

func TestFindOrCreateConversionAction(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		c, api, _ := newClient(t, map[string]func(map[string]any) (int, string){
			"/customers/1234567890/googleAds:search": ok(`{"results":[{"conversionAction":{"resourceName":"conversionActions/7"}}]}`),
		})
		id, err := c.FindOrCreateConversionAction(context.Background(), "Membership Booking")
		require.NoError(t, err)
		assert.Equal(t, "conversionActions/7", id)
		assert.Len(t, api.requests, 1)
	})

	t.Run("created", func(t *testing.T) {
		c, api, _ := newClient(t, map[string]func(map[string]any) (int, string){
			"/customers/1234567890/googleAds:search":          ok(`{}`),
			"/customers/1234567890/conversionActions:mutate": ok(`{"results":[{"resourceName":"conversionActions/8"}]}`),
		})
		id, err := c.FindOrCreateConversionAction(context.Background(), "Member's Booking")
		require.NoError(t, err)
		assert.Equal(t, "conversionActions/8", id)
		require.Len(t, api.requests, 2)
		assert.Contains(t, api.requests[0].Body["query"], `'Member\'s Booking'`)
	})
}

func TestUploadClickConversion(t *testing.T) {
	c, api, _ := newClient(t, map[string]func(map[string]any) (int, string){
		"/customers/1234567890:uploadClickConversions": ok(`{"results":[{}]}`),
	})

	err := c.UploadClickConversion(context.Background(), port.ClickConversion{
		ConversionAction: "conversionActions/7",
		GCLID:            "abc",
		At:               time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		Value:            100,
		Currency:         "USD",
	})
	require.NoError(t, err)

	conv := api.requests[0].Body["conversions"].([]any)[0].(map[string]any)
	assert.Equal(t, "abc", conv["gclid"])
	assert.Equal(t, "2026-03-10 09:30:00+00:00", conv["conversionDateTime"])
	assert.Equal(t, true, api.requests[0].Body["partialFailure"])
}

func TestUploadClickConversionPartialFailure(t *testing.T) {
	c, _, _ := newClient(t, map[string]func(map[string]any) (int, string){
		"/customers/1234567890:uploadClickConversions": ok(`{"partialFailureError":{"message":"The click is too old."}}`),
	})

	err := c.UploadClickConversion(context.Background(), port.ClickConversion{GCLID: "abc", At: time.Now()})
	var pe *port.PlatformError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"The click is too old."}, pe.Messages)
}
