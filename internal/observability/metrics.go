// Package observability exposes the service's Prometheus metrics: HTTP
// request counts and latency, path-generation outcomes, and suggestion cache
// effectiveness. Collection is opt-in via METRICS_ENABLED.
package observability

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	pathsGenerated *prometheus.CounterVec
	pathLength     prometheus.Histogram
	engineLatency  prometheus.Histogram

	suggestionCache *prometheus.CounterVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

// Enabled reports whether METRICS_ENABLED turns metric collection on.
func Enabled() bool {
	v := strings.TrimSpace(os.Getenv("METRICS_ENABLED"))
	if v == "" {
		return false
	}
	return strings.EqualFold(v, "true") || v == "1" || strings.EqualFold(v, "yes")
}

// Init registers all collectors on the default registry exactly once and
// returns the shared instance.
func Init() *Metrics {
	initOnce.Do(func() {
		instance = &Metrics{
			apiRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "skillpath_http_requests_total",
					Help: "Total HTTP requests by method, route and status",
				},
				[]string{"method", "route", "status"},
			),
			apiLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "skillpath_http_request_duration_seconds",
					Help:    "HTTP request latency in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
			apiInflight: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "skillpath_http_inflight_requests",
					Help: "HTTP requests currently being served",
				},
			),
			pathsGenerated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "skillpath_paths_generated_total",
					Help: "Learning path generations by outcome",
				},
				[]string{"outcome"},
			),
			pathLength: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "skillpath_path_length",
					Help:    "Number of courses in generated paths",
					Buckets: []float64{1, 2, 3, 4, 6, 8, 10, 12},
				},
			),
			engineLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "skillpath_engine_duration_seconds",
					Help:    "End-to-end path engine latency in seconds",
					Buckets: prometheus.DefBuckets,
				},
			),
			suggestionCache: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "skillpath_suggestion_cache_total",
					Help: "Career goal suggestion cache lookups by result",
				},
				[]string{"result"},
			),
		}
	})
	return instance
}

// Current returns the shared instance, nil when Init has not run.
func Current() *Metrics {
	return instance
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) ObserveAPI(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// ObservePathGeneration records one engine run. Outcome is "ok", "empty" or
// "error"; pathLen is only observed for successful runs.
func (m *Metrics) ObservePathGeneration(outcome string, pathLen int, d time.Duration) {
	if m == nil {
		return
	}
	m.pathsGenerated.WithLabelValues(outcome).Inc()
	m.engineLatency.Observe(d.Seconds())
	if outcome == "ok" {
		m.pathLength.Observe(float64(pathLen))
	}
}

func (m *Metrics) ObserveSuggestionCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.suggestionCache.WithLabelValues(result).Inc()
}
