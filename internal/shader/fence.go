package shader

import (
	"regexp"
	"strings"
)

var (
	leadingFence  = regexp.MustCompile("^```[a-zA-Z0-9]*[ \t]*\r?\n?")
	trailingFence = regexp.MustCompile("\\s*```\\s*$")
)

// CleanFence strips markdown fence markers (with an optional language
// tag) and surrounding whitespace from code. Nested fences are stripped
// layer by layer until none remain, so cleaning an already-clean string
// returns it unchanged.
func CleanFence(code string) string {
	s := strings.TrimSpace(code)
	for {
		next := leadingFence.ReplaceAllString(s, "")
		next = trailingFence.ReplaceAllString(next, "")
		next = strings.TrimSpace(next)
		if next == s {
			return s
		}
		s = next
	}
}
