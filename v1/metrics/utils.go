package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementEmbedRequests increments the embedding request counter for a model
// with the given status label.
// Example: metrics.IncrementEmbedRequests("qwen3-embedding:0.6b", "success")
func (m *Metrics) IncrementEmbedRequests(model, status string) {
	m.embedRequestsTotal.WithLabelValues(model, status).Inc()
}

// RecordEmbedDuration records the duration (in seconds) of an embedding
// backend request for a model.
// Example: defer metrics.RecordEmbedDuration(time.Now(), model)
func (m *Metrics) RecordEmbedDuration(start time.Time, model string) {
	duration := time.Since(start).Seconds()
	m.embedDuration.WithLabelValues(model).Observe(duration)
}

// AddEmbedRetries adds retry attempts to the retry counter for a model.
func (m *Metrics) AddEmbedRetries(model string, attempts int) {
	if attempts <= 0 {
		return
	}
	m.embedRetriesTotal.WithLabelValues(model).Add(float64(attempts))
}

// ObserveEmbedDimensions sets the dimensions gauge for a model.
func (m *Metrics) ObserveEmbedDimensions(model string, dimensions int) {
	m.embedDimensions.WithLabelValues(model).Set(float64(dimensions))
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.Registry.MustRegister(gauge)
	return gauge
}

// createCounterVec defines a new CounterVec with standard options.
// Used internally by NewMetrics to maintain consistency.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
// Used internally by NewMetrics for latency tracking.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec defines a new GaugeVec for resource monitoring.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
