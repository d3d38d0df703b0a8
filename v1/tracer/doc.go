// Package tracer provides distributed tracing for embedkit via OpenTelemetry.
//
// The package wraps the OpenTelemetry TracerProvider behind a small API:
// create spans for significant operations, record errors on them, and let
// the OTLP exporter ship them to your collector.
//
// # Usage
//
//	cfg := tracer.Config{
//		ServiceName:  "embedkit",
//		AppEnv:       "production",
//		EnableExport: true,
//	}
//	trc := tracer.NewClient(cfg, log)
//
//	ctx, span := trc.StartSpan(ctx, "embed-batch")
//	defer span.End()
//
//	if err := doWork(ctx); err != nil {
//		trc.RecordErrorOnSpan(span, err)
//	}
//
// When EnableExport is false the provider is still installed, so span
// context propagates (and shows up in logs via the logger package) without
// anything being exported. That is the right mode for tests and local runs.
//
// # Exporting
//
// With EnableExport set, spans are batched to an OTLP/HTTP endpoint. The
// exporter is configured through the standard OTEL_EXPORTER_OTLP_*
// environment variables understood by the OpenTelemetry SDK.
//
// # Fx Integration
//
// tracer.FXModule provides *Tracer and registers a shutdown hook that
// flushes pending spans on application stop.
//
// # Thread Safety
//
// Tracer is safe for concurrent use and can be shared across goroutines.
package tracer
