// Package metrics provides Prometheus-based monitoring for embedkit.
//
// The package owns a per-service Prometheus registry, exposes it on a
// configurable /metrics HTTP endpoint, and ships embedding-centric built-in
// instruments: request counts by model and status, request latency
// histograms, retry counts, and last-observed vector dimensions.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" pattern:
//   - MetricsCollector interface: contract for metric operations
//   - Metrics struct: concrete implementation
//   - NewMetrics constructor: returns *Metrics
//   - FX module: provides *Metrics for dependency injection
//
// # Direct Usage
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		ServiceName:             "embedkit",
//		EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
//
//	m.IncrementEmbedRequests("qwen3-embedding:0.6b", "success")
//	defer m.RecordEmbedDuration(time.Now(), "qwen3-embedding:0.6b")
//
// # Observer Integration
//
// The embedding client does not depend on this package. It emits
// observability.OperationContext values; NewObserver adapts them onto the
// built-in instruments:
//
//	client = client.WithObserver(metrics.NewObserver(m))
//
// # Custom Metrics
//
// Applications can register additional collectors through the factory
// methods (CreateCounter, CreateHistogram, CreateGauge) or directly on the
// exposed Registry.
//
// # Configuration
//
//	METRICS_ADDRESS=:9090
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	METRICS_SERVICE_NAME=embedkit
//
// # Thread Safety
//
// All methods on Metrics and the Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics
