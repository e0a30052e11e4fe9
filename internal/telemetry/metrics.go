package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service. A nil *Metrics is
// valid and records nothing, so components can be built without telemetry
// in tests.
type Metrics struct {
	// Pipeline
	StepsTotal        *prometheus.CounterVec
	ComplianceResults *prometheus.CounterVec
	GenerationTotal   *prometheus.CounterVec

	// Ad platform
	PlatformCalls    *prometheus.CounterVec
	PlatformDuration *prometheus.HistogramVec
	SyncsTotal       *prometheus.CounterVec

	// Conversions
	ConversionsTotal *prometheus.CounterVec

	// HTTP API
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates a Metrics instance with every collector registered on a
// private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		StepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_pipeline_steps_total",
				Help: "Pipeline stage executions by outcome (hit, generated, failed)",
			},
			[]string{"stage", "outcome"},
		),
		ComplianceResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_compliance_results_total",
				Help: "Compliance validations by context and status",
			},
			[]string{"context", "status"},
		),
		GenerationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_generation_attempts_total",
				Help: "Text generation attempts by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		PlatformCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_platform_calls_total",
				Help: "Ad platform API calls by operation and status",
			},
			[]string{"operation", "status"},
		),
		PlatformDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adpilot_platform_call_duration_seconds",
				Help:    "Ad platform API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		SyncsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_syncs_total",
				Help: "Campaign syncs by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		ConversionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_conversion_uploads_total",
				Help: "Offline conversion uploads by outcome",
			},
			[]string{"outcome"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_http_requests_total",
				Help: "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adpilot_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.StepsTotal,
		m.ComplianceResults,
		m.GenerationTotal,
		m.PlatformCalls,
		m.PlatformDuration,
		m.SyncsTotal,
		m.ConversionsTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Step(stage, outcome string) {
	if m == nil {
		return
	}
	m.StepsTotal.WithLabelValues(stage, outcome).Inc()
}

func (m *Metrics) Compliance(context string, passed bool) {
	if m == nil {
		return
	}
	status := "pass"
	if !passed {
		status = "fail"
	}
	m.ComplianceResults.WithLabelValues(context, status).Inc()
}

func (m *Metrics) Generation(kind, outcome string) {
	if m == nil {
		return
	}
	m.GenerationTotal.WithLabelValues(kind, outcome).Inc()
}

// PlatformCall records one ad platform request.
func (m *Metrics) PlatformCall(operation string, err error, d time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.PlatformCalls.WithLabelValues(operation, status).Inc()
	m.PlatformDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) Sync(dryRun bool, outcome string) {
	if m == nil {
		return
	}
	mode := "live"
	if dryRun {
		mode = "dry_run"
	}
	m.SyncsTotal.WithLabelValues(mode, outcome).Inc()
}

func (m *Metrics) Conversion(outcome string) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(outcome).Inc()
}

// HTTPRequest records a served request.
func (m *Metrics) HTTPRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}
