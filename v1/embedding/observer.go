package embedding

import (
	"time"

	"github.com/embedforge/embedkit/v1/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured. This is used internally to track backend calls for metrics.
//
// Notes:
//   - resource: the model name the operation targeted
//   - size: vector dimensions for embed operations, zero otherwise
func (c *Client) observeOperation(operation, resource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component: "embedding",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  metadata,
	})
}
