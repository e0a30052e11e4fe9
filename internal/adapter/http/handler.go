package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adpilot/internal/core/compliance"
	"adpilot/internal/core/port"
	"adpilot/internal/telemetry"
)

// Services are the inbound ports the HTTP adapter drives.
type Services struct {
	Campaigns port.CampaignUseCase
	Sync      port.SyncUseCase
	Metrics   port.MetricsUseCase
	Leads     port.LeadUseCase
}

// Handler is the inbound HTTP adapter. Operator actions live under
// /api/v1; the lead endpoints are called by landing pages.
type Handler struct {
	svc       Services
	validator *compliance.Validator
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, validator *compliance.Validator, m *telemetry.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, validator: validator, metrics: m, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Post("/campaigns/generate", h.handleGenerateCampaign)
		r.Get("/campaigns/{specID}", h.handleGetSpec)
		r.Post("/campaigns/{specID}/runs", h.handleStartRun)
		r.Get("/campaigns/{specID}/runs", h.handleListRuns)

		r.Get("/runs/{runID}", h.handleGetRun)
		r.Delete("/runs/{runID}", h.handleDeleteRun)
		r.Post("/runs/{runID}/build", h.handleBuild)
		r.Get("/runs/{runID}/artifacts/{stage}", h.handleGetArtifact)
		r.Post("/runs/{runID}/sync", h.handleSync)
		r.Get("/runs/{runID}/metrics", h.handleMetrics)

		r.Post("/leads", h.handleTrackLead)
		r.Post("/leads/{leadID}/book", h.handleBookLead)

		r.Post("/compliance/validate", h.handleValidate)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
