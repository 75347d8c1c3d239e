// Package metrics provides Prometheus metrics for the swinglab gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the gateway.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Upstream (persistence API) metrics.
	upstreamFetches       *prometheus.CounterVec
	upstreamFetchDuration *prometheus.HistogramVec
	fallbackActivations   *prometheus.CounterVec

	// Aggregation metrics.
	rankRecomputes  *prometheus.CounterVec
	sessionsTracked prometheus.Gauge
	athletesRanked  prometheus.Gauge

	// Navigation state machine metrics.
	navTransitions *prometheus.CounterVec
	reopenSkips    prometheus.Counter

	// HTTP gateway metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "swinglab",
		subsystem:        "gateway",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.upstreamFetches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "upstream_fetches_total",
		Help:      "Upstream persistence API requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	m.upstreamFetchDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "upstream_fetch_duration_milliseconds",
		Help:      "Upstream request latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint"})

	m.fallbackActivations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fallback_activations_total",
		Help:      "Times a view was served from the fixed example data set",
	}, []string{"view"})

	m.rankRecomputes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_recomputes_total",
		Help:      "Leaderboard recomputations by sort key",
	}, []string{"sort_key"})

	m.sessionsTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_tracked",
		Help:      "Sessions in the most recent history snapshot",
	})

	m.athletesRanked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "athletes_ranked",
		Help:      "Athletes in the most recent leaderboard",
	})

	m.navTransitions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "navigation_transitions_total",
		Help:      "Navigation state machine transitions",
	}, []string{"from", "to"})

	m.reopenSkips = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "navigation_reopen_skips_total",
		Help:      "Reopen attempts skipped because the remembered session was gone",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Gateway HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Gateway HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutine_count",
		Help:      "Current number of goroutines",
	})
}

// RecordUpstreamFetch counts an upstream request with its outcome
// ("ok", "unavailable" or "decode_error").
func RecordUpstreamFetch(endpoint, outcome string) {
	globalManager.upstreamFetches.WithLabelValues(endpoint, outcome).Inc()
}

// RecordUpstreamFetchDuration records upstream latency in milliseconds.
func RecordUpstreamFetchDuration(endpoint string, durationMs float64) {
	globalManager.upstreamFetchDuration.WithLabelValues(endpoint).Observe(durationMs)
}

// RecordFallbackActivation counts one degraded-mode substitution for a view
// ("history" or "leaderboard").
func RecordFallbackActivation(view string) {
	globalManager.fallbackActivations.WithLabelValues(view).Inc()
}

// RecordRankRecompute counts one leaderboard recomputation.
func RecordRankRecompute(sortKey string) {
	globalManager.rankRecomputes.WithLabelValues(sortKey).Inc()
}

// UpdateSessionsTracked sets the size of the current history snapshot.
func UpdateSessionsTracked(count int) {
	globalManager.sessionsTracked.Set(float64(count))
}

// UpdateAthletesRanked sets the size of the current leaderboard.
func UpdateAthletesRanked(count int) {
	globalManager.athletesRanked.Set(float64(count))
}

// RecordNavTransition counts one state machine transition.
func RecordNavTransition(from, to string) {
	globalManager.navTransitions.WithLabelValues(from, to).Inc()
}

// RecordReopenSkip counts one skipped reopen (remembered session missing).
func RecordReopenSkip() {
	globalManager.reopenSkips.Inc()
}

// RecordHTTPRequest records a gateway HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records gateway HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the current heap allocation.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by the manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
