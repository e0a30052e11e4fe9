package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// handleCreateCampaign stores an operator-written spec. Text failing
// compliance is answered with 422 and the reasons.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignReq
	if err := decode(r, &req, false); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.Campaigns.CreateCampaign(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

type generateReq struct {
	Strategy domain.Strategy `json:"strategy"`
	Inlet    *domain.Inlet   `json:"inlet"`
}

func (h *Handler) handleGenerateCampaign(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := decode(r, &req, true); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.Campaigns.GenerateCampaign(r.Context(), req.Strategy, req.Inlet)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleGetSpec(w http.ResponseWriter, r *http.Request) {
	spec, err := h.svc.Campaigns.GetSpec(r.Context(), chi.URLParam(r, "specID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (h *Handler) handleStartRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.Campaigns.StartRun(r.Context(), chi.URLParam(r, "specID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, run)
}

func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.svc.Campaigns.ListRuns(r.Context(), chi.URLParam(r, "specID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if runs == nil {
		runs = []domain.CampaignRun{}
	}
	writeJSON(w, http.StatusOK, runs)
}
