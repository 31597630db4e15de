package render

// ShaderSource is a vertex+fragment pair and the names the application binds.
type ShaderSource struct {
	Name     string
	Vertex   string
	Fragment string

	Attributes []string
	Uniforms   []string
}

const (
	AttribPosition = "position"
	AttribColor    = "color"

	UniformView       = "view"
	UniformProjection = "projection"
)

const colorVertexShader = `#version 330 core

uniform mat4 projection;
uniform mat4 view;

in vec3 position;
in vec3 color;

out vec3 fragColor;

void main() {
	fragColor = color;
	gl_Position = projection * view * vec4(position, 1);
}
`

const colorFragmentShader = `#version 330 core

in vec3 fragColor;

out vec4 outputColor;

void main() {
	outputColor = vec4(fragColor, 1);
}
`

// ColorShader is the per-vertex colour program used by the cube and the plane.
func ColorShader() ShaderSource {
	return ShaderSource{
		Name:       "color",
		Vertex:     colorVertexShader,
		Fragment:   colorFragmentShader,
		Attributes: []string{AttribPosition, AttribColor},
		Uniforms:   []string{UniformView, UniformProjection},
	}
}
