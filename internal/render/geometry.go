package render

import (
	"errors"
	"fmt"
)

var ErrInvalidMesh = errors.New("invalid mesh")

// Channel is one per-vertex attribute stream.
type Channel struct {
	Attribute  string
	Components int
	Data       []float32
}

// Mesh is static geometry bound to a shader program by name.
type Mesh struct {
	Name     string
	Program  string
	Channels []Channel
	Indices  []uint32
	Topology Topology

	// Visible meshes are drawn by the scene every frame.
	Visible bool
}

// VertexCount returns the number of vertices of the first channel.
func (m Mesh) VertexCount() int {
	if len(m.Channels) == 0 || m.Channels[0].Components == 0 {
		return 0
	}
	return len(m.Channels[0].Data) / m.Channels[0].Components
}

func (m Mesh) validate() error {

	if len(m.Channels) == 0 {
		return fmt.Errorf("%w: %q has no channels", ErrInvalidMesh, m.Name)
	}
	if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %q has %d indices", ErrInvalidMesh, m.Name, len(m.Indices))
	}

	n := m.VertexCount()
	for _, ch := range m.Channels {
		if ch.Components < 1 || ch.Components > 4 || len(ch.Data)%ch.Components != 0 {
			return fmt.Errorf("%w: %q channel %q is malformed", ErrInvalidMesh, m.Name, ch.Attribute)
		}
		if len(ch.Data)/ch.Components != n {
			return fmt.Errorf("%w: %q channel %q has %d vertices, want %d",
				ErrInvalidMesh, m.Name, ch.Attribute, len(ch.Data)/ch.Components, n)
		}
	}

	for _, i := range m.Indices {
		if int(i) >= n {
			return fmt.Errorf("%w: %q index %d out of range", ErrInvalidMesh, m.Name, i)
		}
	}

	return nil
}

// Plane is a 20x20 ground quad at y=0: 4 vertices, 2 triangles.
func Plane() Mesh {
	return Mesh{
		Name:    "plane",
		Program: "color",
		Channels: []Channel{
			{Attribute: AttribPosition, Components: 3, Data: []float32{
				-10, 0, -10,
				10, 0, -10,
				10, 0, 10,
				-10, 0, 10,
			}},
			{Attribute: AttribColor, Components: 3, Data: []float32{
				0.2, 0.5, 0.2,
				0.2, 0.6, 0.2,
				0.3, 0.7, 0.3,
				0.2, 0.6, 0.2,
			}},
		},
		Indices:  []uint32{0, 2, 1, 0, 3, 2},
		Topology: Triangles,
		Visible:  true,
	}
}

// Cube is a unit cube centred on the origin with a colour per corner.
func Cube() Mesh {
	return Mesh{
		Name:    "cube",
		Program: "color",
		Channels: []Channel{
			{Attribute: AttribPosition, Components: 3, Data: []float32{
				-0.5, -0.5, 0.5,
				0.5, -0.5, 0.5,
				0.5, 0.5, 0.5,
				-0.5, 0.5, 0.5,
				-0.5, -0.5, -0.5,
				0.5, -0.5, -0.5,
				0.5, 0.5, -0.5,
				-0.5, 0.5, -0.5,
			}},
			{Attribute: AttribColor, Components: 3, Data: []float32{
				0, 0, 1,
				1, 0, 1,
				1, 1, 1,
				0, 1, 1,
				0, 0, 0,
				1, 0, 0,
				1, 1, 0,
				0, 1, 0,
			}},
		},
		Indices: []uint32{
			0, 1, 2, 2, 3, 0, // front
			1, 5, 6, 6, 2, 1, // right
			5, 4, 7, 7, 6, 5, // back
			4, 0, 3, 3, 7, 4, // left
			3, 2, 6, 6, 7, 3, // top
			4, 5, 1, 1, 0, 4, // bottom
		},
		Topology: Triangles,
	}
}
