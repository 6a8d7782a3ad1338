package coingecko_common

import (
	"time"

	"github.com/status-im/crypto-insight-hub/metrics"
)

// HttpRequestMetricsWriter implements IHttpStatusHandler by writing to metrics
type HttpRequestMetricsWriter struct {
	writer *metrics.MetricsWriter
}

// NewHttpRequestMetricsWriter creates a new metrics writer for the given service
func NewHttpRequestMetricsWriter(serviceName string) *HttpRequestMetricsWriter {
	return &HttpRequestMetricsWriter{
		writer: metrics.NewMetricsWriter(serviceName),
	}
}

// OnRequest records an HTTP request with its status
func (h *HttpRequestMetricsWriter) OnRequest(status string) {
	h.writer.RecordUpstreamRequest(status)
}

// OnLatency records the duration of an HTTP request
func (h *HttpRequestMetricsWriter) OnLatency(duration time.Duration) {
	h.writer.RecordRequestLatency(duration)
}
