package embedding

import (
	"strconv"
	"strings"
)

// FormattedResult is the caller-facing shape of one embedding, built
// according to Options.ReturnFormat:
//
//   - full: vector, dimensions, original text, model, latency, warning
//   - simplified: text, vector, dimensions
//   - vectorOnly: just the vector
//
// When Options.Compact is set, CompactVector additionally carries a
// single-line string rendering of the vector. It never replaces the numeric
// Vector: downstream consumers expect numeric arrays, not strings.
type FormattedResult struct {
	Text          string    `json:"text,omitempty"`
	Vector        []float64 `json:"vector"`
	Dimensions    int       `json:"dimensions,omitempty"`
	Model         string    `json:"model,omitempty"`
	LatencyMs     int64     `json:"latency_ms,omitempty"`
	Warning       string    `json:"warning,omitempty"`
	CompactVector string    `json:"compact_vector,omitempty"`
}

// FormattedItem pairs one input text of a batch with its formatted result
// or error message.
type FormattedItem struct {
	Text   string           `json:"text"`
	Error  string           `json:"error,omitempty"`
	Result *FormattedResult `json:"result,omitempty"`
}

// FormattedBatch is the aggregate output shape for batch operations:
// summary counters plus the per-item list in input order.
type FormattedBatch struct {
	Model      string          `json:"model"`
	Count      int             `json:"count"`
	Dimensions int             `json:"dimensions"`
	Failed     int             `json:"failed"`
	Items      []FormattedItem `json:"items"`
}

// FormatResult shapes one embedding result according to the options.
func FormatResult(text string, res *EmbeddingResult, opts Options) FormattedResult {
	out := FormattedResult{Vector: res.Vector}

	if opts.Compact {
		out.CompactVector = compactVector(res.Vector)
	}

	switch opts.ReturnFormat {
	case FormatVectorOnly:
		return out
	case FormatSimplified:
		out.Text = text
		out.Dimensions = res.Dimensions
		return out
	default: // FormatFull
		out.Text = text
		out.Dimensions = res.Dimensions
		out.Model = res.ModelUsed
		out.LatencyMs = res.ObservedLatency.Milliseconds()
		out.Warning = res.Warning
		return out
	}
}

// FormatBatch shapes a batch result: an aggregate object plus a per-item
// list pairing each input text with its formatted result or error.
func FormatBatch(batch *BatchResult, opts Options) FormattedBatch {
	out := FormattedBatch{
		Model:      batch.Model,
		Count:      batch.Count,
		Dimensions: batch.Dimensions,
		Failed:     batch.Failed,
		Items:      make([]FormattedItem, 0, len(batch.Items)),
	}

	for _, item := range batch.Items {
		fi := FormattedItem{Text: item.Text}
		if item.Err != nil {
			fi.Error = item.Err.Error()
		} else if item.Result != nil {
			res := FormatResult(item.Text, item.Result, opts)
			fi.Result = &res
		}
		out.Items = append(out.Items, fi)
	}

	return out
}

// compactVector renders a vector as a single-line, comma-joined string:
// [0.12,-0.5,...]. Formatting uses the shortest exact representation and is
// locale-independent.
func compactVector(vec []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}
