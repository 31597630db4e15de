package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type drawCall struct {
	topology Topology
	count    int32
	program  uint32
	vao      uint32
}

// recordingDevice stands in for the GPU and records the calls it receives.
type recordingDevice struct {
	compileErr error
	missing    map[string]bool
	pending    error

	next     uint32
	attribs  map[string]int32
	uniforms map[string]int32

	program uint32
	vao     uint32

	vertexUploads [][]float32
	indexUploads  [][]uint32
	attribSlots   []uint32
	matrices      map[int32]mgl32.Mat4
	draws         []drawCall
	calls         []string
	viewport      [4]int32
	depthTest     bool
	clears        int
}

func newRecordingDevice() *recordingDevice {
	return &recordingDevice{
		missing:  map[string]bool{},
		attribs:  map[string]int32{AttribPosition: 0, AttribColor: 1},
		uniforms: map[string]int32{UniformView: 3, UniformProjection: 4},
		matrices: map[int32]mgl32.Mat4{},
	}
}

func (d *recordingDevice) handle() uint32 {
	d.next++
	return d.next
}

func (d *recordingDevice) log(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *recordingDevice) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if d.compileErr != nil {
		return 0, d.compileErr
	}
	return d.handle(), nil
}

func (d *recordingDevice) AttribLocation(program uint32, name string) int32 {
	if loc, ok := d.attribs[name]; ok && !d.missing[name] {
		return loc
	}
	return -1
}

func (d *recordingDevice) UniformLocation(program uint32, name string) int32 {
	if loc, ok := d.uniforms[name]; ok && !d.missing[name] {
		return loc
	}
	return -1
}

func (d *recordingDevice) NewVertexArray() uint32 { return d.handle() }

func (d *recordingDevice) BindVertexArray(vao uint32) {
	d.vao = vao
	d.log("bind vao %d", vao)
}

func (d *recordingDevice) UploadVertices(data []float32) uint32 {
	d.vertexUploads = append(d.vertexUploads, data)
	return d.handle()
}

func (d *recordingDevice) UploadIndices(data []uint32) uint32 {
	if d.vao == 0 {
		d.pending = errors.New("GL_INVALID_OPERATION")
	}
	d.indexUploads = append(d.indexUploads, data)
	return d.handle()
}

func (d *recordingDevice) VertexAttrib(slot uint32, components int32) {
	d.attribSlots = append(d.attribSlots, slot)
}

func (d *recordingDevice) UseProgram(program uint32) {
	d.program = program
	d.log("use program %d", program)
}

func (d *recordingDevice) UniformMatrix4(location int32, m *mgl32.Mat4) {
	if location < 0 || d.program == 0 {
		d.pending = errors.New("GL_INVALID_OPERATION")
	}
	d.matrices[location] = *m
	d.log("uniform %d", location)
}

func (d *recordingDevice) DrawElements(topology Topology, count int32) {
	if d.program == 0 || d.vao == 0 {
		d.pending = errors.New("GL_INVALID_OPERATION")
	}
	d.draws = append(d.draws, drawCall{topology: topology, count: count, program: d.program, vao: d.vao})
	d.log("draw %s %d", topology, count)
}

func (d *recordingDevice) EnableDepthTest() { d.depthTest = true }

func (d *recordingDevice) Clear(color [4]float32) {
	d.clears++
	d.log("clear")
}

func (d *recordingDevice) Viewport(x, y, width, height int32) {
	d.viewport = [4]int32{x, y, width, height}
}

func (d *recordingDevice) Error() error {
	err := d.pending
	d.pending = nil
	return err
}

var _ Device = (*recordingDevice)(nil)
