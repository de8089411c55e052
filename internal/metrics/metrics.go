// Package metrics provides Prometheus metrics collection for the packboard service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// AggregationsTotal tracks packing-board aggregations by outcome.
	AggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packing_aggregations_total",
			Help: "Total number of packing board aggregations",
		},
		[]string{"status"},
	)

	// AggregationDuration tracks how long a full board aggregation takes.
	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packing_aggregation_duration_seconds",
			Help:    "Packing board aggregation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// SkippedOrderLines counts order lines dropped by the aggregation engine
	// because they carry no resolvable product reference. The lines are
	// skipped silently at runtime; this counter keeps the condition observable.
	SkippedOrderLines = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "packing_skipped_order_lines_total",
			Help: "Order lines skipped during aggregation due to a missing product reference",
		},
	)

	// BoardCustomers tracks the customer count of the most recent aggregation.
	BoardCustomers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "packing_board_customers",
			Help: "Customers on the most recently aggregated packing board",
		},
	)

	// ChangeEventsTotal tracks realtime change notifications by direction.
	ChangeEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packing_change_events_total",
			Help: "Total number of packing change events",
		},
		[]string{"direction"},
	)

	// SnapshotCacheOperations tracks board snapshot cache hits and misses.
	SnapshotCacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packing_snapshot_cache_operations_total",
			Help: "Board snapshot cache operations",
		},
		[]string{"result"},
	)
)

// RecordAggregation records an aggregation with its duration and outcome.
func RecordAggregation(duration time.Duration, status string) {
	AggregationsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		AggregationDuration.Observe(duration.Seconds())
	}
}

// RecordChangeEvent records a published or delivered change event.
func RecordChangeEvent(direction string) {
	ChangeEventsTotal.WithLabelValues(direction).Inc()
}

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}
