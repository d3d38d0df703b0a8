package embedding

import (
	"context"
	"time"
)

// Health probes the backend by listing its models. A nil return means the
// backend is reachable and answering; a *ConnectionError means it is down
// or the endpoint is misconfigured.
func (c *Client) Health(ctx context.Context) error {
	start := time.Now()
	_, err := c.provider.ListModels(ctx)
	c.observeOperation("health", "", time.Since(start), err, 0, nil)
	return err
}

// ListModels returns the model names available on the backend. Useful for
// surfacing "model not installed" remediation hints to callers.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	start := time.Now()
	models, err := c.provider.ListModels(ctx)
	c.observeOperation("list-models", "", time.Since(start), err, int64(len(models)), nil)
	return models, err
}
