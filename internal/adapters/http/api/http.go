// Package api declares HTTP contracts and route registration helpers for
// the gateway.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/denniswu/swinglab/internal/app"
	"github.com/denniswu/swinglab/internal/domain/leaderboard"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	HistoryDependencies
	LeaderboardDependencies
	SubmitDependencies
	NavigationDependencies

	// UpstreamHealthy probes the persistence API behind the gateway.
	UpstreamHealthy(ctx context.Context) bool
}

// Result and view shapes are owned by the app layer; the API re-exports
// them so handler signatures stay local.
type (
	HistoryResult     = app.HistoryResult
	LeaderboardResult = app.LeaderboardResult
	NavView           = app.NavView
)

// Server wires HTTP routes for the gateway API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	historyHandler     *HistoryHandler
	leaderboardHandler *LeaderboardHandler
	submitHandler      *SubmitHandler
	navigationHandler  *NavigationHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(deps),
		statsHandler:       NewStatsHandler(statsProvider),
		historyHandler:     NewHistoryHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps),
		submitHandler:      NewSubmitHandler(deps),
		navigationHandler:  NewNavigationHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleMetrics, "healthz"))
	mux.HandleFunc("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/training-history", MetricsMiddleware(s.handleTrainingHistory, "training_history"))
	mux.HandleFunc("/training-history/", MetricsMiddleware(s.historyHandler.HandleGetAthleteHistory, "training_history_athlete"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/leaderboard/", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/navigation", MetricsMiddleware(s.navigationHandler.HandleGetState, "navigation"))
	mux.HandleFunc("/navigation/", MetricsMiddleware(s.navigationHandler.HandlePostAction, "navigation_action"))
}

// handleTrainingHistory dispatches /training-history by method: reads list
// the history, writes store a new session, matching the upstream API.
func (s *Server) handleTrainingHistory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.historyHandler.HandleGetHistory(w, r)
	case http.MethodPost:
		s.submitHandler.HandlePostSession(w, r)
	default:
		http.NotFound(w, r)
	}
}

// sortKeyParam resolves the path parameter of /leaderboard/{sortKey},
// defaulting to average score when absent.
func sortKeyParam(path string) (leaderboard.SortKey, error) {
	if path == "" {
		return leaderboard.ByAvgScore, nil
	}
	return leaderboard.ParseSortKey(path)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// decodeBody decodes a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}
