// Package capability maps embedding model names to static capability
// profiles: maximum and default vector dimensions, context window, and
// instruction support.
//
// # Overview
//
// Backends like Ollama expose models from many families under free-form
// names ("qwen3-embedding:0.6b", "nomic-embed-text:latest", ...). The
// families differ in hard limits the orchestrator must respect, most
// importantly the dimension ceiling used when clamping a caller's
// requested output size.
//
// Lookup is a pure, total function:
//
//	profile := capability.Lookup("qwen3-embedding:0.6b")
//	// profile.MaxDimensions == 1024, profile.MaxContextTokens == 32768
//
// Unknown names never fail; they resolve to a conservative Generic profile.
//
// # Matching Order
//
// Matching is done by case-insensitive substring against an ordered rule
// table. The order is a fixed priority list, not an accident: when a model
// name could match several family tokens, the earliest rule wins. See the
// table in registry.go for the authoritative order.
//
// # Thread Safety
//
// The rule table is read-only after package initialization. Lookup is safe
// for concurrent use from any number of goroutines.
package capability
