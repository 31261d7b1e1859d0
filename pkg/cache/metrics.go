package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks markup cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_cache_hits_total",
			Help: "Total number of pagination markup cache hits",
		},
	)

	// CacheMisses tracks markup cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_cache_misses_total",
			Help: "Total number of pagination markup cache misses",
		},
	)

	// CacheStores tracks entries written to Redis
	CacheStores = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_cache_stores_total",
			Help: "Total number of pagination markup entries stored",
		},
	)

	// NotModified tracks 304 Not Modified responses served from cached ETags
	NotModified = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_304_responses_total",
			Help: "Total number of 304 Not Modified responses",
		},
	)

	// CacheErrors tracks cache operation errors
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
