// Package render owns the GPU-side resources of the application and the render pass.
package render

import "github.com/go-gl/mathgl/mgl32"

// Topology is the primitive assembly mode of an indexed draw.
type Topology int

const (
	Triangles Topology = iota
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	}
	return "unknown"
}

// Device is the subset of the GPU API the resource set and scene need.
// Location lookups return -1 for names the linked program does not have.
type Device interface {
	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32

	NewVertexArray() uint32
	BindVertexArray(vao uint32)

	// UploadVertices creates an array buffer holding data and leaves it bound.
	UploadVertices(data []float32) uint32
	// UploadIndices creates an element buffer holding data, attached to the bound vertex array.
	UploadIndices(data []uint32) uint32
	// VertexAttrib points slot at the bound array buffer, tightly packed floats.
	VertexAttrib(slot uint32, components int32)

	UseProgram(program uint32)
	UniformMatrix4(location int32, m *mgl32.Mat4)
	DrawElements(topology Topology, count int32)

	EnableDepthTest()
	Clear(color [4]float32)
	Viewport(x, y, width, height int32)

	// Error returns the pending GPU error, if any, and clears it.
	Error() error
}
