package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"adpilot/internal/core/domain"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error   string   `json:"error"`
	Context string   `json:"context,omitempty"`
	Step    string   `json:"step,omitempty"`
	Reasons []string `json:"reasons,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decode reads a JSON body into dst. An empty body leaves dst untouched
// when optional is set.
func decode(r *http.Request, dst any, optional bool) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if optional && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a bare 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ce  *domain.ComplianceError
		cfg *domain.ConfigurationError
		se  *domain.SyncError
	)
	switch {
	case errors.As(err, &ce):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "compliance check failed", Context: ce.Context, Reasons: ce.Reasons})
	case errors.As(err, &cfg):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: cfg.Error(), Missing: cfg.Missing})
	case errors.Is(err, domain.ErrGenerationUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSyncInProgress):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.As(err, &se):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "ad platform sync failed", Step: se.Step, Reasons: se.Messages})
	case errors.Is(err, domain.ErrGenerationFailed):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrArtifactMissing):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
