package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PipelineDurationHistogram tracks the duration of dashboard pipeline operations
	PipelineDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "pipeline_duration_seconds",
			Help: "Time taken by a dashboard operation including all upstream calls",
		},
		[]string{"service", "operation"},
	)
)

// RecordPipelineDuration measures and records the duration of a pipeline operation
func RecordPipelineDuration(service, operation string, start time.Time) {
	duration := time.Since(start)
	PipelineDurationHistogram.WithLabelValues(service, operation).Observe(duration.Seconds())
	log.Printf("Metrics: %s %s took %.2fs", service, operation, duration.Seconds())
}
