package embedding

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultEmbedPath is the backend's embedding endpoint path.
// Matches Ollama's batch-capable endpoint, which this package drives with
// one text per call.
const DefaultEmbedPath = "/api/embed"

// Config holds the backend connection settings.
//
// EMBEDDING_ENDPOINT must point to the root of the backend (no /api/embed
// appended); the provider appends paths automatically, so callers only need
// to supply the host base URL, e.g. http://localhost:11434.
type Config struct {
	// Endpoint is the base URL of the embedding backend.
	Endpoint string

	// EmbedPath is the embedding endpoint path (default /api/embed).
	EmbedPath string

	// HTTPTimeoutS is the outer HTTP client timeout in seconds
	// (default 120). This is a transport-level ceiling; the effective
	// per-call timeout comes from the request policy and is always
	// shorter in practice.
	HTTPTimeoutS int
}

// NewConfig reads configuration from environment variables.
func NewConfig() *Config {
	timeout := 120
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	path := os.Getenv("EMBEDDING_EMBED_PATH")
	if path == "" {
		path = DefaultEmbedPath
	}

	return &Config{
		Endpoint:     os.Getenv("EMBEDDING_ENDPOINT"),
		EmbedPath:    path,
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	return nil
}
