package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric
	// name collisions.
	Registry *prometheus.Registry

	// Core built-in metrics
	embedRequestsTotal *prometheus.CounterVec
	embedDuration      *prometheus.HistogramVec
	embedRetriesTotal  *prometheus.CounterVec
	embedDimensions    *prometheus.GaugeVec
}

// NewMetrics initializes and returns a new Metrics instance.
// It sets up a dedicated Prometheus registry, registers default system
// collectors, wraps all metrics with a constant `service` label, and creates
// an HTTP server exposing the /metrics endpoint.
//
// Example:
//
//	cfg := metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "embedkit",
//	    EnableDefaultCollectors: true,
//	}
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	// Isolated registry per service; avoids collisions when multiple
	// services run in the same process.
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically carry the label
	// service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.embedRequestsTotal = createCounterVec("embed_requests_total", "Total number of embedding backend requests", []string{"model", "status"})
	m.embedDuration = createHistogramVec("embed_request_duration_seconds", "Duration of embedding backend requests in seconds", []string{"model"}, prometheus.DefBuckets)
	m.embedRetriesTotal = createCounterVec("embed_retries_total", "Total number of retried embedding requests", []string{"model"})
	m.embedDimensions = createGaugeVec("embed_dimensions", "Dimensions of the most recent embedding per model", []string{"model"})

	wrappedRegistry.MustRegister(
		m.embedRequestsTotal,
		m.embedDuration,
		m.embedRetriesTotal,
		m.embedDimensions,
	)

	// Standard collectors provide runtime visibility:
	//   - GoCollector: memory usage, goroutines, GC stats
	//   - ProcessCollector: CPU, file descriptors, memory stats
	//   - BuildInfoCollector: binary version/build info
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	m.Server = server
	return m
}
