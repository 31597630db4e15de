package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/stevebirtles/glframe/internal/logging"
)

var (
	ErrUnknownPrimitive   = errors.New("unknown primitive")
	ErrAlreadyInitialized = errors.New("resource set already initialized")
	ErrNotInitialized     = errors.New("resource set not initialized")
)

// Buffer is an uploaded vertex attribute stream or index list.
type Buffer struct {
	Handle uint32
	Count  int
	Stride int
}

// Primitive is a drawable mesh: its program, buffers and vertex array.
type Primitive struct {
	Name        string
	Program     *Program
	VAO         uint32
	Buffers     []Buffer
	Indices     Buffer
	VertexCount int32
	IndexCount  int32
	Topology    Topology
	Visible     bool
}

// ResourceSet holds the GPU resources uploaded once at startup.
// Nothing in it changes after Initialize.
type ResourceSet struct {
	dev     Device
	sources []ShaderSource
	meshes  []Mesh

	initialized bool
	programs    map[string]*Program
	primitives  map[string]*Primitive
	order       []*Primitive
}

// NewResourceSet declares the programs and meshes to upload on Initialize.
func NewResourceSet(dev Device, sources []ShaderSource, meshes ...Mesh) *ResourceSet {
	return &ResourceSet{
		dev:     dev,
		sources: sources,
		meshes:  meshes,
	}
}

// Initialize compiles every program and uploads every mesh. It must run once,
// with a current context, before any Draw.
func (rs *ResourceSet) Initialize() error {

	if rs.initialized {
		return ErrAlreadyInitialized
	}

	rs.programs = make(map[string]*Program, len(rs.sources))
	for _, src := range rs.sources {
		p, err := newProgram(rs.dev, src)
		if err != nil {
			return err
		}
		rs.programs[src.Name] = p
	}

	rs.primitives = make(map[string]*Primitive, len(rs.meshes))
	for _, m := range rs.meshes {
		prim, err := rs.upload(m)
		if err != nil {
			return err
		}
		rs.primitives[m.Name] = prim
		rs.order = append(rs.order, prim)

		logging.Logger().Debug("primitive uploaded",
			"name", prim.Name, "vertices", prim.VertexCount, "indices", prim.IndexCount)
	}

	rs.dev.BindVertexArray(0)

	if err := rs.dev.Error(); err != nil {
		return fmt.Errorf("initialize resources: %w", err)
	}

	rs.initialized = true
	return nil
}

func (rs *ResourceSet) upload(m Mesh) (*Primitive, error) {

	if err := m.validate(); err != nil {
		return nil, err
	}

	prog, ok := rs.programs[m.Program]
	if !ok {
		return nil, fmt.Errorf("mesh %q: unknown program %q", m.Name, m.Program)
	}

	// Resolve every slot before touching the device.
	slots := make([]uint32, len(m.Channels))
	for i, ch := range m.Channels {
		slot, err := prog.Attrib(ch.Attribute)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		slots[i] = slot
	}

	prim := &Primitive{
		Name:        m.Name,
		Program:     prog,
		VertexCount: int32(m.VertexCount()),
		IndexCount:  int32(len(m.Indices)),
		Topology:    m.Topology,
		Visible:     m.Visible,
	}

	prim.VAO = rs.dev.NewVertexArray()
	rs.dev.BindVertexArray(prim.VAO)

	for i, ch := range m.Channels {
		handle := rs.dev.UploadVertices(ch.Data)
		rs.dev.VertexAttrib(slots[i], int32(ch.Components))
		prim.Buffers = append(prim.Buffers, Buffer{
			Handle: handle,
			Count:  len(ch.Data) / ch.Components,
			Stride: ch.Components * 4,
		})
	}

	prim.Indices = Buffer{
		Handle: rs.dev.UploadIndices(m.Indices),
		Count:  len(m.Indices),
		Stride: 4,
	}

	return prim, nil
}

// Primitive returns the uploaded primitive called name.
func (rs *ResourceSet) Primitive(name string) (*Primitive, error) {
	if !rs.initialized {
		return nil, ErrNotInitialized
	}
	p, ok := rs.primitives[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPrimitive, name)
	}
	return p, nil
}

// Primitives returns every primitive in declaration order.
func (rs *ResourceSet) Primitives() []*Primitive {
	return rs.order
}

// Draw issues one indexed draw of p with the given camera matrices.
// The bound program and vertex array are left unbound afterwards.
func (rs *ResourceSet) Draw(p *Primitive, view, projection mgl32.Mat4) {

	rs.dev.UseProgram(p.Program.Handle)
	rs.dev.UniformMatrix4(p.Program.view, &view)
	rs.dev.UniformMatrix4(p.Program.projection, &projection)

	rs.dev.BindVertexArray(p.VAO)
	rs.dev.DrawElements(p.Topology, p.IndexCount)

	rs.dev.BindVertexArray(0)
	rs.dev.UseProgram(0)

}
