package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "crypto_insight_hub_"

// Service constants
const (
	ServiceMarkets     = "markets"
	ServiceMarketChart = "market-chart"
	ServiceInsights    = "insights"
	ServiceDashboard   = "dashboard"
	ServiceJobs        = "jobs"
)

var (
	// Upstream request counter per service
	// Cardinality: ~9 (3 upstream services × 3 statuses)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "upstream_requests_total",
			Help: "Total number of HTTP requests to upstream APIs per service",
		},
		[]string{"service", "status"},
	)

	// Upstream request latency per service
	// Cardinality: ~3 (number of upstream services)
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "upstream_request_latency_seconds",
			Help: "Upstream HTTP request latency by service",
		},
		[]string{"service"},
	)

	// Per-coin history failures
	// Cardinality: 4 (failure kinds)
	HistoryWarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "history_warnings_total",
			Help: "Number of coins whose price history could not be produced",
		},
		[]string{"kind"},
	)

	// Finished jobs per kind and status
	// Cardinality: ~4 (2 job kinds × 2 final statuses)
	JobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "jobs_total",
			Help: "Number of finished asynchronous jobs",
		},
		[]string{"kind", "status"},
	)

	// Service cache size
	// Cardinality: 1 (job store)
	ServiceCacheSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "service_cache_size",
			Help: "Number of items in service cache",
		},
		[]string{"service"},
	)
)

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordUpstreamRequest records an upstream API request with its status
func (mw *MetricsWriter) RecordUpstreamRequest(status string) {
	UpstreamRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// RecordRequestLatency records the latency of an upstream request
func (mw *MetricsWriter) RecordRequestLatency(duration time.Duration) {
	RequestLatencyHistogram.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
}

// RecordHistoryWarning records a coin whose history fetch failed
func (mw *MetricsWriter) RecordHistoryWarning(kind string) {
	HistoryWarningsTotal.WithLabelValues(kind).Inc()
}

// RecordJob records a finished job
func (mw *MetricsWriter) RecordJob(kind, status string) {
	JobsTotal.WithLabelValues(kind, status).Inc()
}

// RecordCacheSize records the number of items in service cache
func (mw *MetricsWriter) RecordCacheSize(size int) {
	ServiceCacheSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
	log.Printf("Metrics: %s cache size is %d items", mw.serviceName, size)
}
