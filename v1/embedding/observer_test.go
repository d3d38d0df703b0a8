package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/embedforge/embedkit/v1/observability"
)

// capturingObserver records every operation context it receives.
type capturingObserver struct {
	mu  sync.Mutex
	ops []observability.OperationContext
}

func (o *capturingObserver) ObserveOperation(op observability.OperationContext) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ops = append(o.ops, op)
}

func (o *capturingObserver) all() []observability.OperationContext {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]observability.OperationContext(nil), o.ops...)
}

func TestObserveOperationNilObserverIsSafe(t *testing.T) {
	c := &Client{logger: nopLogger{}}
	// Must not panic without an observer.
	c.observeOperation("embed", "model", 0, nil, 0, nil)
}

func TestEmbedSingleEmitsOperation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"embeddings": [][]float64{seqVector(768)}})
	}))
	defer srv.Close()

	obs := &capturingObserver{}
	c := newTestClient(t, srv.URL).WithObserver(obs)

	if _, err := c.EmbedSingle(context.Background(), "hello", "nomic-embed-text", Options{}); err != nil {
		t.Fatal(err)
	}

	ops := obs.all()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	op := ops[0]
	if op.Component != "embedding" || op.Operation != "embed" {
		t.Errorf("unexpected component/operation: %s/%s", op.Component, op.Operation)
	}
	if op.Resource != "nomic-embed-text" {
		t.Errorf("resource should be the model, got %q", op.Resource)
	}
	if op.Size != 768 {
		t.Errorf("size should be the vector dimensions, got %d", op.Size)
	}
	if op.Error != nil {
		t.Errorf("unexpected error: %v", op.Error)
	}
	if op.Metadata["retries"] != 0 {
		t.Errorf("expected 0 retries in metadata, got %v", op.Metadata["retries"])
	}
	if op.Metadata["mode"] != string(ModeAuto) {
		t.Errorf("expected auto mode in metadata, got %v", op.Metadata["mode"])
	}
}

func TestEmbedSingleEmitsOperationOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	zero := 0
	obs := &capturingObserver{}
	c := newTestClient(t, srv.URL).WithObserver(obs)

	_, err := c.EmbedSingle(context.Background(), "hello", "qwen3-embedding:0.6b", Options{
		PerformanceMode:  ModeCustom,
		CustomMaxRetries: &zero,
	})
	if err == nil {
		t.Fatal("expected failure")
	}

	ops := obs.all()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Error == nil {
		t.Error("failed operation must carry its error")
	}
	if ops[0].Size != 0 {
		t.Errorf("failed operation must report zero size, got %d", ops[0].Size)
	}
}

func TestHealthEmitsOperation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]string{{"name": "qwen3-embedding:0.6b"}},
		})
	}))
	defer srv.Close()

	obs := &capturingObserver{}
	c := newTestClient(t, srv.URL).WithObserver(obs)

	if err := c.Health(context.Background()); err != nil {
		t.Fatal(err)
	}
	models, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 1 || models[0] != "qwen3-embedding:0.6b" {
		t.Fatalf("unexpected models %v", models)
	}

	ops := obs.all()
	if len(ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(ops))
	}
	if ops[0].Operation != "health" || ops[1].Operation != "list-models" {
		t.Errorf("unexpected operations: %s, %s", ops[0].Operation, ops[1].Operation)
	}
}
