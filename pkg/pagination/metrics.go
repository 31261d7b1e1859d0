package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RendersTotal counts template renders by result ("ok", "error").
	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_renders_total",
			Help: "Total number of pagination template renders by result",
		},
		[]string{"result"},
	)

	// RenderDuration tracks template render latency.
	RenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pagination_render_duration_seconds",
			Help:    "Pagination template render duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// LinksBuilt counts page links built, by kind ("numbered", "control").
	LinksBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_links_built_total",
			Help: "Total number of pagination links built by kind",
		},
		[]string{"kind"},
	)

	// RequestsEmitted counts pagination-request events emitted by click handlers.
	RequestsEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_requests_total",
			Help: "Total number of pagination-request events emitted",
		},
	)
)
