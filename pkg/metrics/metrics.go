// Package metrics provides the Prometheus registry and /metrics handler for
// pagelinks. All metrics are defined in their respective packages (pagination,
// cache) to maintain modularity and avoid circular dependencies.
//
// This package also documents every metric the module exports.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the default Prometheus registry used by pagelinks.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Gatherer collects the metrics registered with Registry.
var Gatherer = prometheus.DefaultGatherer

// Names lists every metric exported by the module.
var Names = []string{
	"pagination_renders_total",
	"pagination_render_duration_seconds",
	"pagination_links_built_total",
	"pagination_requests_total",
	"pagination_cache_hits_total",
	"pagination_cache_misses_total",
	"pagination_cache_stores_total",
	"pagination_304_responses_total",
	"pagination_cache_errors_total",
}

// Handler returns the HTTP handler serving Gatherer in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Gatherer, promhttp.HandlerOpts{})
}

// Metrics Documentation
//
// Render Metrics (pkg/pagination):
//   - pagination_renders_total{result} (Counter): Template renders by result ("ok", "error")
//   - pagination_render_duration_seconds (Histogram): Template render duration
//   - pagination_links_built_total{kind} (Counter): Links built by kind ("numbered", "control")
//   - pagination_requests_total (Counter): pagination-request events emitted by clicks
//
// Cache Metrics (pkg/cache):
//   - pagination_cache_hits_total (Counter): Markup cache hits
//   - pagination_cache_misses_total (Counter): Markup cache misses
//   - pagination_cache_stores_total (Counter): Markup entries written to Redis
//   - pagination_304_responses_total (Counter): 304 Not Modified responses
//   - pagination_cache_errors_total{operation} (Counter): Cache operation errors
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(pagination_cache_hits_total[5m])) /
//   (sum(rate(pagination_cache_hits_total[5m])) + sum(rate(pagination_cache_misses_total[5m])))
//
//   # Template Error Rate
//   rate(pagination_renders_total{result="error"}[5m])
//
//   # P95 Render Latency
//   histogram_quantile(0.95, rate(pagination_render_duration_seconds_bucket[5m]))
//
//   # Clicks per Render
//   rate(pagination_requests_total[5m]) / rate(pagination_renders_total[5m])
