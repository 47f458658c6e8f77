package shader

import (
	"encoding/json"
	"strings"
)

// locateJSONBlock returns the widest brace-delimited span in text: from the
// first '{' to the last '}'. No balanced matching is attempted; nested
// braces in surrounding prose can produce a span that fails to decode, and
// that failure is handled by the regex tier rather than by refining the
// span here.
func locateJSONBlock(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return "", false
	}
	return text[start : end+1], true
}

// pairShape classifies which shader fields a decoded candidate carries as
// usable strings. Decided once after decoding.
type pairShape int

const (
	shapeNeither pairShape = iota
	shapeBoth
	shapeVertexOnly
	shapeFragmentOnly
)

func classify(decoded map[string]any) (vertex, fragment string, shape pairShape) {
	vertex, hasVertex := decoded["vertexShader"].(string)
	fragment, hasFragment := decoded["fragmentShader"].(string)
	switch {
	case hasVertex && hasFragment:
		shape = shapeBoth
	case hasVertex:
		shape = shapeVertexOnly
	case hasFragment:
		shape = shapeFragmentOnly
	default:
		shape = shapeNeither
	}
	return vertex, fragment, shape
}

// parseShaderJSON decodes candidate as a JSON object and builds a pair from
// whichever shader fields are present. A missing side is filled from the
// defaults. The bool result reports whether this tier produced a pair;
// decode failures and shapeless objects both report false so the caller
// falls through to the regex tier.
func (n *Normalizer) parseShaderJSON(candidate string) (Pair, bool) {
	var decoded map[string]any
	if err := json.Unmarshal([]byte(candidate), &decoded); err != nil {
		return Pair{}, false
	}

	vertex, fragment, shape := classify(decoded)
	switch shape {
	case shapeBoth:
		return Pair{Vertex: CleanFence(vertex), Fragment: CleanFence(fragment)}, true
	case shapeVertexOnly:
		return Pair{Vertex: CleanFence(vertex), Fragment: n.defaults.Fragment}, true
	case shapeFragmentOnly:
		return Pair{Vertex: n.defaults.Vertex, Fragment: CleanFence(fragment)}, true
	default:
		return Pair{}, false
	}
}
