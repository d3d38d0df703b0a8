package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector provides an interface for collecting and exposing
// application metrics. It abstracts Prometheus metric operations with
// support for counters, histograms, and gauges.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// Default metric methods

	// IncrementEmbedRequests increments the embedding request counter for
	// a model with the given status label ("success" or "error").
	IncrementEmbedRequests(model, status string)

	// RecordEmbedDuration records the duration (in seconds) of an
	// embedding backend request for a model.
	RecordEmbedDuration(start time.Time, model string)

	// AddEmbedRetries adds retry attempts to the retry counter for a model.
	AddEmbedRetries(model string, attempts int)

	// ObserveEmbedDimensions sets the dimensions gauge for a model.
	ObserveEmbedDimensions(model string, dimensions int)

	// Dynamic metric factories

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
