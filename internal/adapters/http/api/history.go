// Package api declares HTTP contracts and route registration helpers for
// the gateway.
package api

import (
	"context"
	"net/http"
	"strings"
)

// HistoryDependencies defines the interface for history operations.
type HistoryDependencies interface {
	History(ctx context.Context) HistoryResult
	AthleteHistory(ctx context.Context, name string) HistoryResult
}

// HistoryHandler handles training history requests.
type HistoryHandler struct {
	deps HistoryDependencies
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps HistoryDependencies) *HistoryHandler {
	return &HistoryHandler{deps: deps}
}

// HandleGetHistory handles GET /training-history requests.
func (h *HistoryHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.History(r.Context()))
}

// HandleGetAthleteHistory handles GET /training-history/{athlete} requests.
func (h *HistoryHandler) HandleGetAthleteHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	athlete := strings.TrimPrefix(r.URL.Path, "/training-history/")
	if athlete == "" || strings.Contains(athlete, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.AthleteHistory(r.Context(), athlete))
}
