package embedding

import "fmt"

// ValidationError reports input rejected before any backend call was made.
// Position is the index of the offending text within a batch, or -1 for
// single operations.
type ValidationError struct {
	Position int
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("embedding: invalid input at position %d: %s", e.Position, e.Reason)
	}
	return fmt.Sprintf("embedding: invalid input: %s", e.Reason)
}

// ConnectionError reports an unreachable backend. Not retried: if the
// backend refuses connections, further attempts within the same invocation
// will not help. Callers should inspect the endpoint configuration.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("embedding: cannot reach backend at %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ModelNotFoundError reports that the backend does not have the requested
// model. Not retried.
type ModelNotFoundError struct {
	Model string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("embedding: model %q not found on backend; install it first (e.g. `ollama pull %s`)", e.Model, e.Model)
}

// InvalidResponseError reports a backend response that violates the
// embedding contract (missing field, empty vector list, wrong type).
// Not retried: a contract mismatch indicates a backend or version
// incompatibility, not a transient failure.
type InvalidResponseError struct {
	Reason string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("embedding: invalid backend response: %s", e.Reason)
}

// RetryExhaustedError reports that transient failures persisted beyond the
// retry budget. Attempts is the total number of attempts issued
// (maxRetries + 1); LastErr is the final underlying failure.
type RetryExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("embedding: request failed after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *RetryExhaustedError) Unwrap() error { return e.LastErr }

// statusError is the internal carrier for non-2xx HTTP responses before
// classification into the typed errors above.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.code, e.body)
}
