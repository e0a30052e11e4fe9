package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
)

func (h *Handler) handleTrackLead(w http.ResponseWriter, r *http.Request) {
	var ev domain.LeadEvent
	if err := decode(r, &ev, false); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	lead, err := h.svc.Leads.Track(r.Context(), ev)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

// handleBookLead is idempotent; booking twice returns the booked lead.
func (h *Handler) handleBookLead(w http.ResponseWriter, r *http.Request) {
	lead, err := h.svc.Leads.Book(r.Context(), chi.URLParam(r, "leadID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}
