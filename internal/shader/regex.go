package shader

import "regexp"

var (
	vertexBlock   = regexp.MustCompile("(?is)vertex\\s+shader.*?```[a-zA-Z0-9]*[ \t]*\n?(.*?)```")
	fragmentBlock = regexp.MustCompile("(?is)fragment\\s+shader.*?```[a-zA-Z0-9]*[ \t]*\n?(.*?)```")
)

// extractByHeading scans the raw text for "vertex shader" / "fragment
// shader" phrases followed by a fenced code block. The two searches are
// independent; each missing side is filled from the defaults. The bool
// result reports whether at least one block was captured.
func (n *Normalizer) extractByHeading(text string) (Pair, bool) {
	pair := Pair{Vertex: n.defaults.Vertex, Fragment: n.defaults.Fragment}
	matched := false

	if m := vertexBlock.FindStringSubmatch(text); m != nil {
		pair.Vertex = CleanFence(m[1])
		matched = true
	}
	if m := fragmentBlock.FindStringSubmatch(text); m != nil {
		pair.Fragment = CleanFence(m[1])
		matched = true
	}
	return pair, matched
}
