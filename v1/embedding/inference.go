package embedding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"syscall"
	"time"
)

// ollamaProvider talks to an Ollama-style embedding backend.
// The backend accepts exactly one text per call; batching is the Client's
// job. Each Embed call performs exactly one attempt; retry policy is owned
// by the caller.
type ollamaProvider struct {
	baseURL    string
	embedPath  string
	httpClient *http.Client
}

func newOllamaProvider(cfg *Config) (*ollamaProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("inference: missing EMBEDDING_ENDPOINT")
	}

	// Remove trailing slash if the user added one.
	base := strings.TrimRight(cfg.Endpoint, "/")

	path := cfg.EmbedPath
	if path == "" {
		path = DefaultEmbedPath
	}

	return &ollamaProvider{
		baseURL:   base,
		embedPath: path,
		// The client timeout is a transport ceiling; per-call deadlines
		// come from the request policy via ctx.
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

// Embed generates the embedding for one text using the given model.
// Wire contract: POST {base}{embedPath} with {"model","input"}; the success
// body is {"embeddings": [[...]]} and element 0 is the result.
func (p *ollamaProvider) Embed(ctx context.Context, model, text string) ([]float64, error) {
	if model == "" {
		return nil, &ValidationError{Position: -1, Reason: "model is required"}
	}

	reqBody := map[string]any{
		"model": model,
		"input": text,
	}

	url := p.baseURL + p.embedPath

	var parsed struct {
		Embeddings [][]float64 `json:"embeddings"`
	}

	if err := p.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return nil, p.classify(err, model)
	}

	if len(parsed.Embeddings) == 0 {
		return nil, &InvalidResponseError{Reason: "embeddings list is missing or empty"}
	}
	vec := parsed.Embeddings[0]
	if len(vec) == 0 {
		return nil, &InvalidResponseError{Reason: "first embedding is empty"}
	}

	return vec, nil
}

// ListModels returns the model names known to the backend (GET /api/tags).
func (p *ollamaProvider) ListModels(ctx context.Context) ([]string, error) {
	var parsed struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}

	if err := p.getJSON(ctx, p.baseURL+"/api/tags", &parsed); err != nil {
		return nil, p.classify(err, "")
	}

	names := make([]string, 0, len(parsed.Models))
	for _, m := range parsed.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Close releases idle HTTP connections.
func (p *ollamaProvider) Close() error {
	p.httpClient.CloseIdleConnections()
	return nil
}

// classify maps raw transport and HTTP failures onto the package's error
// taxonomy. Anything not classified here is treated as transient by the
// retry engine.
func (p *ollamaProvider) classify(err error, model string) error {
	// Connection refused: the backend is not listening. Retrying within
	// the same invocation will not help.
	if errors.Is(err, syscall.ECONNREFUSED) {
		return &ConnectionError{Endpoint: p.baseURL, Err: err}
	}

	var status *statusError
	if errors.As(err, &status) {
		// Ollama signals a missing model with 404.
		if status.code == http.StatusNotFound && model != "" {
			return &ModelNotFoundError{Model: model}
		}
	}

	var invalid *InvalidResponseError
	if errors.As(err, &invalid) {
		return invalid
	}

	return err
}
