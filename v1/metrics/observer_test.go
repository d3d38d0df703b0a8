package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/embedforge/embedkit/v1/observability"
)

func newTestMetrics() *Metrics {
	return NewMetrics(Config{
		Address:     ":0",
		ServiceName: "test",
	})
}

func TestObserverRecordsSuccess(t *testing.T) {
	m := newTestMetrics()
	obs := NewObserver(m)

	obs.ObserveOperation(observability.OperationContext{
		Component: "embedding",
		Operation: "embed",
		Resource:  "qwen3-embedding:0.6b",
		Duration:  25 * time.Millisecond,
		Size:      1024,
		Metadata:  map[string]interface{}{"retries": 0},
	})

	if got := testutil.ToFloat64(m.embedRequestsTotal.WithLabelValues("qwen3-embedding:0.6b", "success")); got != 1 {
		t.Errorf("expected 1 success request, got %v", got)
	}
	if got := testutil.ToFloat64(m.embedDimensions.WithLabelValues("qwen3-embedding:0.6b")); got != 1024 {
		t.Errorf("expected dimensions gauge 1024, got %v", got)
	}
	if got := testutil.ToFloat64(m.embedRetriesTotal.WithLabelValues("qwen3-embedding:0.6b")); got != 0 {
		t.Errorf("expected 0 retries, got %v", got)
	}
}

func TestObserverRecordsErrorAndRetries(t *testing.T) {
	m := newTestMetrics()
	obs := NewObserver(m)

	obs.ObserveOperation(observability.OperationContext{
		Component: "embedding",
		Operation: "embed",
		Resource:  "nomic-embed-text",
		Duration:  time.Second,
		Error:     errors.New("upstream overloaded"),
		Metadata:  map[string]interface{}{"retries": 2},
	})

	if got := testutil.ToFloat64(m.embedRequestsTotal.WithLabelValues("nomic-embed-text", "error")); got != 1 {
		t.Errorf("expected 1 error request, got %v", got)
	}
	if got := testutil.ToFloat64(m.embedRetriesTotal.WithLabelValues("nomic-embed-text")); got != 2 {
		t.Errorf("expected 2 retries counted, got %v", got)
	}
}

func TestObserverUnknownResource(t *testing.T) {
	m := newTestMetrics()
	obs := NewObserver(m)

	obs.ObserveOperation(observability.OperationContext{
		Component: "embedding",
		Operation: "health",
		Duration:  time.Millisecond,
	})

	if got := testutil.ToFloat64(m.embedRequestsTotal.WithLabelValues("unknown", "success")); got != 1 {
		t.Errorf("expected fallback model label, got %v", got)
	}
}

func TestObserverNilSafe(t *testing.T) {
	var obs *Observer
	// Must not panic.
	obs.ObserveOperation(observability.OperationContext{Operation: "embed"})

	NewObserver(nil).ObserveOperation(observability.OperationContext{Operation: "embed"})
}
