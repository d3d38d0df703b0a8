// Package observability defines the minimal contract between embedkit
// components and whatever metrics/tracing backend an application wires in.
//
// Components never talk to Prometheus or OpenTelemetry directly at the call
// site. Instead they emit OperationContext values to an Observer configured
// via WithObserver. The metrics package ships a Prometheus-backed Observer;
// applications can supply their own.
//
// The package is intentionally dependency-free: it sits below every other
// embedkit package.
package observability

import "time"

// OperationContext describes one completed operation of a component.
// A single observation carries everything a metrics or tracing backend
// typically wants: what ran, on what, how long it took, and whether it failed.
type OperationContext struct {
	// Component is the emitting package, e.g. "embedding".
	Component string

	// Operation is the action performed, e.g. "embed", "health".
	Operation string

	// Resource identifies the primary target of the operation.
	// For embedding calls this is the model name.
	Resource string

	// SubResource carries additional addressing context, if any.
	SubResource string

	// Duration is the wall-clock time of the operation.
	Duration time.Duration

	// Error is the terminal error of the operation, or nil on success.
	Error error

	// Size is an operation-specific magnitude (e.g. vector dimensions).
	Size int64

	// Metadata holds free-form details such as attempt counts.
	Metadata map[string]interface{}
}

// Observer receives operation observations from embedkit components.
// Implementations must be safe for concurrent use; observations may be
// emitted from any number of goroutines.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
