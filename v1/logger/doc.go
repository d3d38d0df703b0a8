// Package logger provides structured logging for embedkit components.
//
// The package wraps Uber's Zap with a small, stable API used across all
// embedkit packages: leveled logging with an optional error and free-form
// field maps, plus context-aware variants that attach OpenTelemetry trace
// and span IDs to each entry.
//
// # Architecture
//
// The package follows "accept interfaces, return structs":
//   - Logger struct: concrete Zap-backed implementation
//   - NewLoggerClient constructor: returns *Logger
//   - Consumer packages declare their own small Logger interface and accept
//     anything that satisfies it (see the embedding package)
//
// # Direct Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "embedkit",
//	})
//
//	log.Info("model resolved", nil, map[string]interface{}{
//		"model":  "qwen3-embedding:0.6b",
//		"family": "qwen",
//	})
//
// # Context-Aware Logging
//
// When EnableTracing is set, the *WithContext methods extract the active
// span from the context and add trace_id and span_id fields, correlating
// log entries with distributed traces:
//
//	log.InfoWithContext(ctx, "embedding batch finished", nil, map[string]interface{}{
//		"texts": 12,
//	})
//
// # Fx Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Info, ServiceName: "my-service"}
//		}),
//	)
//
// The module provides *Logger and registers an OnStop hook that flushes
// buffered entries on shutdown.
//
// # Configuration
//
// Config can also be sourced from the environment via NewConfig:
//
//	ZAP_LOGGER_LEVEL=debug       # debug, info, warning, error
//	LOGGER_SERVICE_NAME=embedkit
//	LOGGER_ENABLE_TRACING=true
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
