package render

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrUnknownUniform   = errors.New("unknown uniform")
)

// Program is a linked shader program with its names resolved to slots.
type Program struct {
	Name   string
	Handle uint32

	attribs  map[string]uint32
	uniforms map[string]int32

	view       int32
	projection int32
}

func newProgram(dev Device, src ShaderSource) (*Program, error) {

	handle, err := dev.CompileProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", src.Name, err)
	}

	p := &Program{
		Name:     src.Name,
		Handle:   handle,
		attribs:  make(map[string]uint32, len(src.Attributes)),
		uniforms: make(map[string]int32, len(src.Uniforms)),
	}

	for _, name := range src.Attributes {
		loc := dev.AttribLocation(handle, name)
		if loc < 0 {
			return nil, fmt.Errorf("program %q: %w %q", src.Name, ErrUnknownAttribute, name)
		}
		p.attribs[name] = uint32(loc)
	}

	for _, name := range src.Uniforms {
		loc := dev.UniformLocation(handle, name)
		if loc < 0 {
			return nil, fmt.Errorf("program %q: %w %q", src.Name, ErrUnknownUniform, name)
		}
		p.uniforms[name] = loc
	}

	if p.view, err = p.Uniform(UniformView); err != nil {
		return nil, err
	}
	if p.projection, err = p.Uniform(UniformProjection); err != nil {
		return nil, err
	}

	return p, nil
}

// Attrib returns the input slot bound to name.
func (p *Program) Attrib(name string) (uint32, error) {
	slot, ok := p.attribs[name]
	if !ok {
		return 0, fmt.Errorf("program %q: %w %q", p.Name, ErrUnknownAttribute, name)
	}
	return slot, nil
}

// Uniform returns the location of the uniform name.
func (p *Program) Uniform(name string) (int32, error) {
	loc, ok := p.uniforms[name]
	if !ok {
		return -1, fmt.Errorf("program %q: %w %q", p.Name, ErrUnknownUniform, name)
	}
	return loc, nil
}
