package capability

import "strings"

// Family identifies a known embedding model family.
type Family string

const (
	FamilyGemma   Family = "gemma"
	FamilyNomic   Family = "nomic"
	FamilyArctic  Family = "arctic"
	FamilyQwen    Family = "qwen"
	FamilyMxbai   Family = "mxbai"
	FamilyBGE     Family = "bge"
	FamilyMiniLM  Family = "minilm"
	FamilyGeneric Family = "generic"
)

// Profile describes the static capabilities of a model family.
// Profiles are immutable; Lookup returns them by value.
type Profile struct {
	// Family is the matched model family.
	Family Family

	// MaxDimensions is the hard ceiling for output vector size.
	// Requested dimensions above this are clamped by the orchestrator.
	MaxDimensions int

	// DefaultDimensions is the native output size of the family.
	DefaultDimensions int

	// MaxContextTokens is the model's context window.
	MaxContextTokens int

	// SupportsInstructions reports whether the family understands
	// retrieval-style instruction prefixes (query vs. document).
	SupportsInstructions bool
}

// rule pairs the substring tokens of a family with its profile.
type rule struct {
	tokens  []string
	profile Profile
}

// rules is the ordered dispatch table. Order is the priority list: a name
// matching several tokens resolves to the first rule that hits. More
// specific families come before broader ones.
var rules = []rule{
	{[]string{"gemma"}, Profile{FamilyGemma, 768, 768, 8192, false}},
	{[]string{"nomic"}, Profile{FamilyNomic, 768, 768, 8192, true}},
	{[]string{"snowflake", "arctic"}, Profile{FamilyArctic, 1024, 1024, 8192, false}},
	{[]string{"qwen"}, Profile{FamilyQwen, 1024, 1024, 32768, true}},
	{[]string{"mxbai"}, Profile{FamilyMxbai, 1024, 1024, 512, true}},
	{[]string{"bge"}, Profile{FamilyBGE, 1024, 1024, 8192, false}},
	{[]string{"all-minilm", "minilm"}, Profile{FamilyMiniLM, 384, 384, 512, false}},
}

// Generic is the fallback profile for model names matching no known family.
// Conservative limits: callers get sensible behavior for arbitrary models.
var Generic = Profile{
	Family:               FamilyGeneric,
	MaxDimensions:        1024,
	DefaultDimensions:    768,
	MaxContextTokens:     8192,
	SupportsInstructions: true,
}

// Lookup resolves a model name to its capability profile.
// Matching is case-insensitive substring against the ordered rule table;
// the first matching rule wins. Lookup never fails: unknown names return
// the Generic profile.
func Lookup(modelName string) Profile {
	name := strings.ToLower(modelName)
	for _, r := range rules {
		for _, token := range r.tokens {
			if strings.Contains(name, token) {
				return r.profile
			}
		}
	}
	return Generic
}
