// Package api declares HTTP contracts and route registration helpers for
// the gateway.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/denniswu/swinglab/internal/domain/leaderboard"
)

// LeaderboardDependencies defines the interface for leaderboard operations.
type LeaderboardDependencies interface {
	Leaderboard(ctx context.Context, key leaderboard.SortKey) LeaderboardResult
}

// LeaderboardHandler handles leaderboard requests.
type LeaderboardHandler struct {
	deps LeaderboardDependencies
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps LeaderboardDependencies) *LeaderboardHandler {
	return &LeaderboardHandler{deps: deps}
}

// HandleGetLeaderboard handles GET /leaderboard and GET /leaderboard/{sortKey}
// requests. An empty sort key ranks by average score.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/leaderboard"), "/")
	if strings.Contains(raw, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	key, err := sortKeyParam(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_sort_key", err)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Leaderboard(r.Context(), key))
}
