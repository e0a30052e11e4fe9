package httpadapter

import (
	"net/http"
	"strings"

	"adpilot/internal/core/compliance"
)

type validateReq struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

// handleValidate checks a piece of copy without storing anything.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := decode(r, &req, false); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Context) == "" {
		req.Context = compliance.ContextCampaignSpec
	}
	res := h.validator.Validate(req.Text, req.Context)
	h.metrics.Compliance(req.Context, res.Passed())
	writeJSON(w, http.StatusOK, res)
}
