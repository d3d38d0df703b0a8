package embedding

import (
	"context"
	"time"
)

// Instruction selects the retrieval-style instruction template prepended to
// a text before embedding. Only meaningful for model families that support
// instructions; see capability.Profile.SupportsInstructions.
type Instruction string

const (
	// InstructionNone embeds the text as-is.
	InstructionNone Instruction = ""

	// InstructionQuery marks the text as a search query.
	InstructionQuery Instruction = "query"

	// InstructionDocument marks the text as a document to be retrieved.
	InstructionDocument Instruction = "document"
)

// PerformanceMode names a timeout/retry policy for backend calls.
type PerformanceMode string

const (
	// ModeAuto starts with moderate limits and adapts to GPU or CPU
	// limits after observing the first call's latency within a batch.
	ModeAuto PerformanceMode = "auto"

	// ModeGPU assumes a fast backend: short timeout, few retries.
	ModeGPU PerformanceMode = "gpu"

	// ModeCPU assumes a slow backend: long timeout, more retries.
	ModeCPU PerformanceMode = "cpu"

	// ModeCustom uses the caller-supplied timeout and retry budget.
	ModeCustom PerformanceMode = "custom"
)

// ReturnFormat selects the output shape produced by the formatter.
type ReturnFormat string

const (
	// FormatFull includes vector, dimensions, original text, model name,
	// and metadata such as latency and warnings.
	FormatFull ReturnFormat = "full"

	// FormatSimplified includes text, vector, and dimension count.
	FormatSimplified ReturnFormat = "simplified"

	// FormatVectorOnly includes just the vector.
	FormatVectorOnly ReturnFormat = "vectorOnly"
)

// Options configures a single or batch embedding operation.
// The zero value is valid: no prefix, no instruction, native dimensions,
// auto performance mode, full return format.
type Options struct {
	// Prefix is prepended to each text (separated by a space) before the
	// instruction template is applied.
	Prefix string

	// Instruction selects the instruction template, if any.
	Instruction Instruction

	// TargetDimensions requests a specific output vector size. Zero means
	// "whatever the backend returns natively". Values above the model's
	// capability ceiling are clamped with a warning. Truncation below the
	// native size is only semantically valid for models with nested (MRL)
	// representations; callers are responsible for that precondition.
	TargetDimensions int

	// PerformanceMode selects the timeout/retry policy. Empty means ModeAuto.
	PerformanceMode PerformanceMode

	// CustomTimeout is the per-call timeout for ModeCustom.
	// Zero falls back to 30 seconds.
	CustomTimeout time.Duration

	// CustomMaxRetries is the retry budget for ModeCustom.
	// Nil falls back to 2.
	CustomMaxRetries *int

	// ReturnFormat selects the formatter output shape. Empty means FormatFull.
	ReturnFormat ReturnFormat

	// Compact additionally renders each vector as a single-line
	// comma-joined string alongside (never replacing) the numeric array.
	Compact bool

	// ContinueOnError makes batch operations collect per-item errors
	// instead of aborting on the first failure.
	ContinueOnError bool
}

// EmbeddingResult is the outcome of embedding one text.
// Invariant: len(Vector) == Dimensions, always.
type EmbeddingResult struct {
	// Vector is the normalized embedding.
	Vector []float64

	// Dimensions is the length of Vector after normalization.
	Dimensions int

	// ModelUsed is the model that produced the embedding.
	ModelUsed string

	// ObservedLatency is the wall-clock duration of the successful
	// backend call (excluding retries and backoff).
	ObservedLatency time.Duration

	// Warning carries a non-fatal notice, e.g. when the requested
	// dimensions were clamped to the model's ceiling. Empty on clean runs.
	Warning string
}

// BatchItem pairs one input text with its result or error.
type BatchItem struct {
	// Index is the position of the text in the input slice.
	Index int

	// Text is the original (raw) input text.
	Text string

	// Result is the embedding outcome; nil when Err is set.
	Result *EmbeddingResult

	// Err is the per-item failure; nil when Result is set.
	Err error
}

// BatchResult aggregates the outcome of a batch operation.
type BatchResult struct {
	// Model is the model used for the batch.
	Model string

	// Count is the number of input texts.
	Count int

	// Dimensions is the dimension count of the first successful item,
	// zero when every item failed.
	Dimensions int

	// Failed is the number of items that errored.
	Failed int

	// Items holds one entry per input text, in input order.
	Items []BatchItem
}

// Provider is the transport-level contract for a single embedding backend
// call. Implementations perform exactly one attempt per call; retry and
// timeout policy is owned by the Client.
//
// Implementations must return the typed errors of this package
// (*ConnectionError, *ModelNotFoundError, *InvalidResponseError) for the
// corresponding failure classes so that the retry engine can classify them.
type Provider interface {
	// Embed generates the embedding for one text using the given model.
	Embed(ctx context.Context, model, text string) ([]float64, error)

	// ListModels returns the model names available on the backend.
	ListModels(ctx context.Context) ([]string, error)
}

// Logger defines the logging operations the embedding package needs.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=types.go -destination=mock_logger.go -package=embedding
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
