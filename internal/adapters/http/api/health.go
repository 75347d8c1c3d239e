// Package api declares HTTP contracts and route registration helpers for
// the gateway.
package api

import (
	"context"
	"net/http"

	"github.com/denniswu/swinglab/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthDependencies defines the interface for upstream health probes.
type HealthDependencies interface {
	UpstreamHealthy(ctx context.Context) bool
}

// HealthHandler handles health check and metrics requests.
type HealthHandler struct {
	deps HealthDependencies
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps HealthDependencies) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// HandleMetrics handles GET /healthz requests by serving the custom
// Prometheus registry.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}

type healthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
}

// HandleHealth handles GET /health requests. The gateway itself is healthy
// whenever it can answer; the upstream field reports the persistence API.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	upstream := "unreachable"
	if h.deps.UpstreamHealthy(r.Context()) {
		upstream = "connected"
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Upstream: upstream})
}
