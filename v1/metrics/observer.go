package metrics

import (
	"github.com/embedforge/embedkit/v1/observability"
)

// Observer adapts a *Metrics instance onto the observability.Observer
// contract, so components that only know about observability can feed the
// built-in embedding instruments.
type Observer struct {
	metrics *Metrics
}

// NewObserver returns an Observer backed by the given Metrics instance.
//
//	m := metrics.NewMetrics(cfg)
//	client = client.WithObserver(metrics.NewObserver(m))
func NewObserver(m *Metrics) *Observer {
	return &Observer{metrics: m}
}

// ObserveOperation records one component operation on the built-in
// instruments. Only "embed" operations carry dimensions and retry metadata;
// other operations (health, list-models) still count toward request totals
// and latency under their model/resource label.
func (o *Observer) ObserveOperation(ctx observability.OperationContext) {
	if o == nil || o.metrics == nil {
		return
	}

	status := "success"
	if ctx.Error != nil {
		status = "error"
	}

	model := ctx.Resource
	if model == "" {
		model = "unknown"
	}

	o.metrics.embedRequestsTotal.WithLabelValues(model, status).Inc()
	o.metrics.embedDuration.WithLabelValues(model).Observe(ctx.Duration.Seconds())

	if ctx.Size > 0 {
		o.metrics.embedDimensions.WithLabelValues(model).Set(float64(ctx.Size))
	}

	if ctx.Metadata != nil {
		if retries, ok := ctx.Metadata["retries"].(int); ok {
			o.metrics.AddEmbedRetries(model, retries)
		}
	}
}
