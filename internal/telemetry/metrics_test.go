package telemetry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Step("ad_plan", "hit")
		m.Compliance("Keyword", true)
		m.Generation("campaign_spec", "ok")
		m.PlatformCall("create_budget", nil, time.Second)
		m.Sync(true, "ok")
		m.Conversion("uploaded")
		m.HTTPRequest("/api/v1/runs/{id}", http.MethodGet, http.StatusOK, time.Millisecond)
	})
}

func TestCounters(t *testing.T) {
	m := New()

	m.Step("ad_plan", "hit")
	m.Step("ad_plan", "hit")
	m.Compliance("Keyword", false)
	m.PlatformCall("create_budget", errors.New("boom"), 10*time.Millisecond)
	m.Sync(false, "failed")
	m.Conversion("failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StepsTotal.WithLabelValues("ad_plan", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ComplianceResults.WithLabelValues("Keyword", "fail")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlatformCalls.WithLabelValues("create_budget", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncsTotal.WithLabelValues("live", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConversionsTotal.WithLabelValues("failed")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.Conversion("uploaded")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `adpilot_conversion_uploads_total{outcome="uploaded"} 1`)
}
