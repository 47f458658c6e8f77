package shader

// Defaults holds the fallback shader sources used to fill any gap the
// extraction tiers leave behind.
type Defaults struct {
	Vertex   string
	Fragment string
}

// DefaultVertexShader passes the position attribute straight through to
// clip space, no matrix transforms.
const DefaultVertexShader = `attribute vec4 a_position;

void main() {
    gl_Position = a_position;
}`

// DefaultFragmentShader renders a time-varying UV gradient so that even the
// worst-case fallback produces something visibly animated.
const DefaultFragmentShader = `precision mediump float;

uniform float u_time;
uniform vec2 u_resolution;

void main() {
    vec2 uv = gl_FragCoord.xy / u_resolution;
    vec3 color = vec3(uv.x, uv.y, 0.5 + 0.5 * sin(u_time));
    gl_FragColor = vec4(color, 1.0);
}`

// StandardDefaults returns the built-in shader pair.
func StandardDefaults() Defaults {
	return Defaults{
		Vertex:   DefaultVertexShader,
		Fragment: DefaultFragmentShader,
	}
}
