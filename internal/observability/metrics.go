package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueryOperationsTotal counts pipeline operations by type and status
	QueryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "querycache_operations_total",
		Help: "The total number of query pipeline operations",
	}, []string{"type", "status"})

	// CacheHitsTotal counts cache hits
	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "querycache_hits_total",
		Help: "The total number of result cache hits",
	})

	// CacheMissesTotal counts cache misses
	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "querycache_misses_total",
		Help: "The total number of result cache misses",
	})

	// CacheEvictionsTotal counts evicted cache entries
	CacheEvictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "querycache_evictions_total",
		Help: "The total number of evicted result cache entries",
	})

	// QueryDurationSeconds measures end-to-end query latency
	QueryDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "querycache_query_duration_seconds",
		Help:    "The latency of processed queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
)
