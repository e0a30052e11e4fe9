package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.Campaigns.GetRun(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (h *Handler) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Campaigns.DeleteRun(r.Context(), chi.URLParam(r, "runID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBuild generates the ad plan and landing page. The body is
// optional; {"force": true} regenerates cached stages.
func (h *Handler) handleBuild(w http.ResponseWriter, r *http.Request) {
	var opts port.BuildOptions
	if err := decode(r, &opts, true); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	run, err := h.svc.Campaigns.BuildArtifacts(r.Context(), chi.URLParam(r, "runID"), opts)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (h *Handler) handleGetArtifact(w http.ResponseWriter, r *http.Request) {
	stage := domain.Stage(chi.URLParam(r, "stage"))
	if !stage.Valid() {
		http.Error(w, "unknown stage", http.StatusBadRequest)
		return
	}
	a, err := h.svc.Campaigns.GetArtifact(r.Context(), chi.URLParam(r, "runID"), stage)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// handleSync pushes the run to the ad platform. dry_run defaults to true
// so a live push always has to be asked for.
func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	dryRun := true
	if v := r.URL.Query().Get("dry_run"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "invalid dry_run", http.StatusBadRequest)
			return
		}
		dryRun = b
	}
	res, err := h.svc.Sync.Sync(r.Context(), chi.URLParam(r, "runID"), dryRun)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	agg, err := h.svc.Metrics.Refresh(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, agg)
}
