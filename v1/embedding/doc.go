// Package embedding orchestrates text-to-vector requests against an
// Ollama-style backend that accepts exactly one text per call.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides all
// low-level HTTP details, per-call timeouts, retry policy, and model
// capability handling.
//
// A client is constructed using:
//
//	client, err := embedding.NewClient(cfg, log)
//
// Once created, the client can embed a single text:
//
//	res, err := client.EmbedSingle(ctx, "hello world", "qwen3-embedding:0.6b", embedding.Options{})
//
// or a batch:
//
//	batch, err := client.EmbedBatch(ctx, texts, "qwen3-embedding:0.6b", embedding.Options{
//	    Instruction:      embedding.InstructionDocument,
//	    TargetDimensions: 256,
//	})
//
// # Pipeline
//
// Every text flows through the same stages:
//
//  1. Preparation: validation, control-character stripping, optional
//     prefix, optional retrieval instruction template.
//  2. Policy: timeout and retry budget from the performance mode
//     (auto/gpu/cpu/custom); in auto mode the batch adapts once, after
//     measuring the latency of its first successful call.
//  3. Execution: one HTTP call per text under the current policy timeout,
//     transient failures retried with capped exponential backoff.
//  4. Normalization: the returned vector is truncated or zero-padded to
//     the requested dimensions, clamped to the model's capability ceiling
//     (see the capability package).
//  5. Formatting: FormatResult/FormatBatch shape the output as full,
//     simplified, or vector-only, optionally with a compact single-line
//     string rendering.
//
// # Performance Modes
//
//   - gpu:    10s timeout, 2 retries, for backends known to be fast
//   - cpu:    60s timeout, 3 retries, for backends known to be slow
//   - custom: caller-supplied timeout/retries
//   - auto:   30s/2 initially; after the first successful call of a batch,
//     the observed latency is compared against per-family thresholds and
//     the batch switches to the gpu or cpu profile for its remaining texts
//
// Adaptive state is confined to the batch that measured it. Policies are
// created fresh per invocation and never stored on the Client, so settings
// detected in one batch can never leak into another; concurrent batches
// are isolated by construction, not by locking.
//
// # Batching
//
// The backend has no multi-text endpoint, so a batch of N texts issues N
// sequential calls. Sequential execution is also what allows the adaptive
// policy to react to the first call before the rest are issued. The context
// is checked between calls, so cancelling it stops the batch.
//
// # Error Taxonomy
//
//   - *ValidationError:     empty/whitespace input, rejected before any HTTP
//   - *ConnectionError:     backend unreachable, not retried
//   - *ModelNotFoundError:  model missing on backend, not retried
//   - *InvalidResponseError: contract mismatch, not retried
//   - *RetryExhaustedError: transient failures beyond the retry budget,
//     carries attempt count and last underlying error
//
// Dimension clamping is a warning on the successful result, never an error.
//
// # Dimension Truncation
//
// Truncating below the native size relies on nested (Matryoshka-style)
// representations and is only meaningful for models trained for it, such as
// the qwen3-embedding family. The package applies the caller's target
// without verifying that precondition.
//
// # Configuration
//
//	EMBEDDING_ENDPOINT=http://localhost:11434   # required
//	EMBEDDING_EMBED_PATH=/api/embed             # optional
//	EMBEDDING_HTTP_TIMEOUT_SECONDS=120          # optional transport ceiling
//
// # Observability
//
// The client emits one observability.OperationContext per backend call and
// per health/list operation. Wire metrics with:
//
//	client = client.WithObserver(metrics.NewObserver(m))
//
// and tracing with:
//
//	client = client.WithTracer(trc)
//
// # Dependency Injection (Fx)
//
// embedding.FXModule provides *Config and *Client and registers a cleanup
// hook; it expects logger.FXModule (or a *logger.Logger) in the graph.
package embedding
