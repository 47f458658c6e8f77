// Package shader converts free-form LLM text into a renderable pair of
// shader programs. The pipeline tries structured JSON extraction first,
// then a heading-plus-code-block regex scan, and finally falls back to the
// built-in default shaders, so that any non-empty input text yields a
// complete pair.
package shader

// Pair is the final output of normalization: two non-empty GLSL sources.
type Pair struct {
	Vertex   string
	Fragment string
}

// Tier identifies which stage of the fallback chain produced a pair.
type Tier string

const (
	TierJSON    Tier = "json"
	TierRegex   Tier = "regex"
	TierDefault Tier = "default"
)

// Normalizer runs the extraction chain with a fixed set of fallback
// shaders injected at construction.
type Normalizer struct {
	defaults Defaults
}

// NewNormalizer builds a Normalizer. Empty default fields are replaced
// with the built-in shaders.
func NewNormalizer(d Defaults) *Normalizer {
	if d.Vertex == "" {
		d.Vertex = DefaultVertexShader
	}
	if d.Fragment == "" {
		d.Fragment = DefaultFragmentShader
	}
	return &Normalizer{defaults: d}
}

// Normalize converts raw LLM response text into a shader pair. It never
// fails for non-empty input: extraction-tier problems select the next tier
// instead of surfacing as errors. The returned Tier records which stage
// produced the pair.
func (n *Normalizer) Normalize(text string) (Pair, Tier) {
	if block, ok := locateJSONBlock(text); ok {
		if pair, ok := n.parseShaderJSON(block); ok {
			return pair, TierJSON
		}
	}

	pair, matched := n.extractByHeading(text)
	if matched {
		return pair, TierRegex
	}
	return pair, TierDefault
}
