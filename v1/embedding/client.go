package embedding

import (
	"context"
	"fmt"

	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/embedforge/embedkit/v1/capability"
	"github.com/embedforge/embedkit/v1/observability"
)

// Tracer defines the tracing operations the embedding package needs.
// *tracer.Tracer satisfies it; any OpenTelemetry-backed implementation works.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span)
	RecordErrorOnSpan(span traceSpan.Span, err error)
}

// Client is the public entrypoint for computing embeddings.
//
// It hides all backend details (endpoint paths, HTTP, retry policy) from the
// application layer. A Client holds no per-request mutable state: every
// EmbedSingle/EmbedBatch invocation derives a fresh policy and batch job, so
// concurrent invocations never observe each other's adaptive adjustments.
type Client struct {
	provider   Provider
	endpoint   string
	logger     Logger
	observer   observability.Observer
	tracer     Tracer
	thresholds map[capability.Family]Thresholds
	sleep      sleepFn
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the backend provider.
// Application code should depend on *Client, not on Provider.
func NewClient(cfg *Config, log Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newOllamaProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	return &Client{
		provider:   p,
		endpoint:   p.baseURL,
		logger:     log,
		thresholds: defaultThresholds,
		sleep:      defaultSleep,
	}, nil
}

// WithObserver attaches an operation observer (e.g. metrics.NewObserver)
// and returns the same client for chaining.
func (c *Client) WithObserver(obs observability.Observer) *Client {
	c.observer = obs
	return c
}

// WithTracer attaches a tracer and returns the same client for chaining.
// When set, every backend call runs inside its own span.
func (c *Client) WithTracer(t Tracer) *Client {
	c.tracer = t
	return c
}

// WithThresholds overrides the adaptive-detection latency cutoffs.
// The table is read at batch start and never mutated by the client.
func (c *Client) WithThresholds(table map[capability.Family]Thresholds) *Client {
	c.thresholds = table
	return c
}

// EmbedSingle embeds one text and returns its normalized result.
//
// Validation failures surface before any backend call. The returned error
// is one of the package's typed errors (*ValidationError, *ConnectionError,
// *ModelNotFoundError, *InvalidResponseError, *RetryExhaustedError).
func (c *Client) EmbedSingle(ctx context.Context, text, model string, opts Options) (*EmbeddingResult, error) {
	prepared, err := prepareText(text, opts.Prefix, opts.Instruction, -1)
	if err != nil {
		return nil, err
	}

	job := c.newBatchJob(model, opts)
	return job.executeOne(ctx, prepared)
}

// EmbedBatch embeds texts sequentially with one backend call per text.
//
// All texts are validated before the first backend call. In auto mode the
// batch adapts its timeout/retry policy after its first successful call;
// the adjustment applies only to the remaining texts of this batch.
//
// Without Options.ContinueOnError the first failing item aborts the batch
// and its error (annotated with the item position) is returned. With it,
// failures are recorded per item and the aggregate is returned with a nil
// error.
func (c *Client) EmbedBatch(ctx context.Context, texts []string, model string, opts Options) (*BatchResult, error) {
	if len(texts) == 0 {
		return nil, &ValidationError{Position: -1, Reason: "no texts provided"}
	}

	job := c.newBatchJob(model, opts)

	batch := &BatchResult{
		Model: model,
		Count: len(texts),
		Items: make([]BatchItem, len(texts)),
	}

	// Validate and derive every text up front: a bad input must fail
	// before any backend traffic is issued.
	prepared := make([]string, len(texts))
	for i, raw := range texts {
		batch.Items[i] = BatchItem{Index: i, Text: raw}
		p, err := prepareText(raw, opts.Prefix, opts.Instruction, i)
		if err != nil {
			if !opts.ContinueOnError {
				return nil, err
			}
			batch.Items[i].Err = err
			batch.Failed++
			continue
		}
		prepared[i] = p
	}

	for i := range texts {
		if batch.Items[i].Err != nil {
			continue
		}

		// Batch-level cancellation: checked between sequential calls.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := job.executeOne(ctx, prepared[i])
		if err != nil {
			if !opts.ContinueOnError {
				return nil, fmt.Errorf("embedding: batch item %d: %w", i, err)
			}
			batch.Items[i].Err = err
			batch.Failed++
			continue
		}

		batch.Items[i].Result = res
		if batch.Dimensions == 0 {
			batch.Dimensions = res.Dimensions
		}
	}

	c.logger.Info("embedding batch finished", nil, map[string]interface{}{
		"model":  model,
		"count":  batch.Count,
		"failed": batch.Failed,
	})

	return batch, nil
}

// Close releases internal resources held by the provider.
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
