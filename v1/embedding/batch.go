package embedding

import (
	"context"
	"time"

	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/embedforge/embedkit/v1/capability"
)

// batchJob owns the only mutable state of one EmbedSingle/EmbedBatch
// invocation: the current request policy and the adapted flag. It is
// created at batch start and discarded at batch end; nothing on the Client
// is written during execution, which is what guarantees isolation between
// concurrent invocations.
type batchJob struct {
	client  *Client
	model   string
	profile capability.Profile
	policy  RequestPolicy
	opts    Options
	adapted bool
}

// newBatchJob builds a fresh job: capability profile resolved once,
// initial policy derived from the options.
func (c *Client) newBatchJob(model string, opts Options) *batchJob {
	return &batchJob{
		client:  c,
		model:   model,
		profile: capability.Lookup(model),
		policy:  derivePolicy(opts),
		opts:    opts,
	}
}

// executeOne runs one prepared text through retry, adaptation, and
// normalization under the job's current policy.
func (j *batchJob) executeOne(ctx context.Context, prepared string) (result *EmbeddingResult, err error) {
	c := j.client

	var span traceSpan.Span
	if c.tracer != nil {
		ctx, span = c.tracer.StartSpan(ctx, "embedding.embed")
		defer func() {
			if err != nil {
				c.tracer.RecordErrorOnSpan(span, err)
			}
			span.End()
		}()
	}

	// latency is the wall-clock time of the last (successful) attempt.
	var latency time.Duration
	start := time.Now()

	vec, attempts, err := runAttempts(ctx, j.policy.MaxRetries, c.sleep, func(attempt int) ([]float64, error) {
		callCtx, cancel := context.WithTimeout(ctx, j.policy.Timeout)
		defer cancel()

		t0 := time.Now()
		v, callErr := c.provider.Embed(callCtx, j.model, prepared)
		latency = time.Since(t0)
		return v, callErr
	})

	c.observeOperation("embed", j.model, time.Since(start), err, int64(len(vec)), map[string]interface{}{
		"retries": attempts - 1,
		"mode":    string(j.policy.Mode),
	})

	if err != nil {
		return nil, err
	}

	j.maybeAdapt(latency)

	normalized, warning := normalizeVector(vec, j.opts.TargetDimensions, j.profile)
	if warning != "" {
		c.logger.Warn("embedding dimensions clamped", nil, map[string]interface{}{
			"model":   j.model,
			"warning": warning,
		})
	}

	return &EmbeddingResult{
		Vector:          normalized,
		Dimensions:      len(normalized),
		ModelUsed:       j.model,
		ObservedLatency: latency,
		Warning:         warning,
	}, nil
}

// maybeAdapt replaces the job's policy after its first successful call when
// running in auto mode. The replacement lives and dies with this job.
func (j *batchJob) maybeAdapt(latency time.Duration) {
	if j.adapted || j.policy.Mode != ModeAuto {
		return
	}
	j.adapted = true

	th := thresholdsFor(j.client.thresholds, j.profile.Family)
	next := j.policy.adapted(latency, th)
	if next.Timeout != j.policy.Timeout || next.MaxRetries != j.policy.MaxRetries {
		j.client.logger.Debug("adaptive policy adjusted for batch", nil, map[string]interface{}{
			"model":       j.model,
			"latency_ms":  latency.Milliseconds(),
			"timeout_ms":  next.Timeout.Milliseconds(),
			"max_retries": next.MaxRetries,
		})
	}
	j.policy = next
}
