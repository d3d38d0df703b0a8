package embedding

import (
	"fmt"

	"github.com/embedforge/embedkit/v1/capability"
)

// normalizeVector adjusts vec to the requested dimension count.
//
// target 0 (or negative) means "use whatever the backend returned" and is
// the identity. A target above the profile's ceiling is clamped to
// profile.MaxDimensions and reported through the returned warning; the
// warning is caller-visible but non-fatal. Smaller targets truncate,
// larger targets pad with trailing zeros.
//
// Truncation exploits the nesting property of MRL-style embeddings and is
// only semantically valid for models trained for it; that precondition is
// the caller's, not verified here.
//
// Postcondition: len(result) == effective target, always.
func normalizeVector(vec []float64, target int, profile capability.Profile) ([]float64, string) {
	if target <= 0 || target == len(vec) {
		return vec, ""
	}

	warning := ""
	if profile.MaxDimensions > 0 && target > profile.MaxDimensions {
		warning = fmt.Sprintf("requested %d dimensions exceeds %s model maximum %d; clamped", target, profile.Family, profile.MaxDimensions)
		target = profile.MaxDimensions
	}

	switch {
	case target < len(vec):
		out := make([]float64, target)
		copy(out, vec[:target])
		return out, warning
	case target > len(vec):
		out := make([]float64, target)
		copy(out, vec)
		return out, warning
	default:
		return vec, warning
	}
}
