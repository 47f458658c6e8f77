package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			name:  "bare object",
			input: `{"a":1}`,
			want:  `{"a":1}`,
			found: true,
		},
		{
			name:  "object inside prose",
			input: "Here you go:\n{\"a\":1}\nEnjoy!",
			want:  `{"a":1}`,
			found: true,
		},
		{
			name:  "widest span, not balanced",
			input: `prefix {"a":1} middle {"b":2} suffix`,
			want:  `{"a":1} middle {"b":2}`,
			found: true,
		},
		{
			name:  "no opening brace",
			input: "nothing structured here",
			found: false,
		},
		{
			name:  "opening brace without closing",
			input: "broken { output",
			found: false,
		},
		{
			name:  "closing brace before opening",
			input: "} then {",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := locateJSONBlock(tt.input)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseShaderJSONShapes(t *testing.T) {
	n := NewNormalizer(StandardDefaults())

	t.Run("both keys", func(t *testing.T) {
		pair, ok := n.parseShaderJSON(`{"vertexShader":"v code","fragmentShader":"f code"}`)
		require.True(t, ok)
		assert.Equal(t, "v code", pair.Vertex)
		assert.Equal(t, "f code", pair.Fragment)
	})

	t.Run("vertex only gets default fragment", func(t *testing.T) {
		pair, ok := n.parseShaderJSON(`{"vertexShader":"v code"}`)
		require.True(t, ok)
		assert.Equal(t, "v code", pair.Vertex)
		assert.Equal(t, DefaultFragmentShader, pair.Fragment)
	})

	t.Run("fragment only gets default vertex", func(t *testing.T) {
		pair, ok := n.parseShaderJSON(`{"fragmentShader":"f code"}`)
		require.True(t, ok)
		assert.Equal(t, DefaultVertexShader, pair.Vertex)
		assert.Equal(t, "f code", pair.Fragment)
	})

	t.Run("non-string values are not usable", func(t *testing.T) {
		_, ok := n.parseShaderJSON(`{"vertexShader":42,"fragmentShader":null}`)
		assert.False(t, ok)
	})

	t.Run("non-string vertex does not shadow string fragment", func(t *testing.T) {
		pair, ok := n.parseShaderJSON(`{"vertexShader":true,"fragmentShader":"f code"}`)
		require.True(t, ok)
		assert.Equal(t, DefaultVertexShader, pair.Vertex)
		assert.Equal(t, "f code", pair.Fragment)
	})

	t.Run("unrelated keys", func(t *testing.T) {
		_, ok := n.parseShaderJSON(`{"answer":"no shaders here"}`)
		assert.False(t, ok)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, ok := n.parseShaderJSON(`{"vertexShader": "unterminated`)
		assert.False(t, ok)
	})

	t.Run("fenced values are cleaned", func(t *testing.T) {
		pair, ok := n.parseShaderJSON(`{"vertexShader":"` + "```glsl\\nv code\\n```" + `","fragmentShader":"f code"}`)
		require.True(t, ok)
		assert.Equal(t, "v code", pair.Vertex)
		assert.Equal(t, "f code", pair.Fragment)
	})
}
