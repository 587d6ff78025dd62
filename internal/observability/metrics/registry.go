// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// ActiveConnections tracks the number of in-flight HTTP requests
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of in-flight HTTP requests",
		},
	)
)

// Cache metrics track the post detail cache-aside path
var (
	// CacheRequestsTotal counts cache lookups by result (hit, miss, error)
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Total number of cache lookups by result",
		},
		[]string{"result"},
	)

	// CacheWriteFailuresTotal counts failed cache population attempts
	CacheWriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_write_failures_total",
			Help: "Total number of failed cache population attempts",
		},
	)
)

// Access log metrics track the Redis request-log mirror
var (
	// AccessLogRecordsTotal counts records pushed to the Redis access log
	AccessLogRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "accesslog_records_total",
			Help: "Total number of access log records pushed to Redis",
		},
	)

	// AccessLogDroppedTotal counts records dropped because the sink buffer was full
	AccessLogDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "accesslog_dropped_total",
			Help: "Total number of access log records dropped due to a full buffer",
		},
	)

	// AccessLogPushFailuresTotal counts failed pushes to the Redis access log
	AccessLogPushFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "accesslog_push_failures_total",
			Help: "Total number of failed pushes to the Redis access log",
		},
	)
)

// RecordCacheHit records a successful cache lookup.
func RecordCacheHit() {
	CacheRequestsTotal.WithLabelValues("hit").Inc()
}

// RecordCacheMiss records a cache lookup that found no entry.
func RecordCacheMiss() {
	CacheRequestsTotal.WithLabelValues("miss").Inc()
}

// RecordCacheError records a cache lookup that failed. Errors are served
// as misses, but tracked separately so degraded cache health is visible.
func RecordCacheError() {
	CacheRequestsTotal.WithLabelValues("error").Inc()
}
