package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stevebirtles/glframe/internal/logging"
)

const (
	fieldOfView = 45.0
	nearPlane   = 0.1
	farPlane    = 100.0
)

var (
	eye    = mgl32.Vec3{0, 6, 14}
	center = mgl32.Vec3{0, 0, 0}
	up     = mgl32.Vec3{0, 1, 0}
)

// Scene is the render pass: clear, then draw every visible primitive with a
// fixed camera.
type Scene struct {
	dev        Device
	resources  *ResourceSet
	clearColor [4]float32

	view       mgl32.Mat4
	projection mgl32.Mat4
}

// NewScene returns a scene drawing resources into a width x height viewport.
func NewScene(dev Device, resources *ResourceSet, width, height int, clearColor [4]float32) *Scene {
	s := &Scene{
		dev:        dev,
		resources:  resources,
		clearColor: clearColor,
		view:       mgl32.LookAtV(eye, center, up),
	}
	s.projection = perspective(width, height)
	return s
}

func perspective(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(fieldOfView), aspect, nearPlane, farPlane)
}

// Init uploads the resources and sets the fixed pipeline state.
func (s *Scene) Init() error {

	if err := s.resources.Initialize(); err != nil {
		return err
	}
	s.dev.EnableDepthTest()

	return nil
}

// Render draws one frame. dt is unused; the scene is static.
func (s *Scene) Render(dt float64) {

	s.dev.Clear(s.clearColor)

	for _, p := range s.resources.Primitives() {
		if !p.Visible {
			continue
		}
		s.resources.Draw(p, s.view, s.projection)
	}

}

// Resize updates the viewport and the aspect ratio of the projection.
func (s *Scene) Resize(width, height int) {

	if width <= 0 || height <= 0 {
		// minimised
		return
	}

	s.dev.Viewport(0, 0, int32(width), int32(height))
	s.projection = perspective(width, height)

	logging.Logger().Debug("viewport resized", "width", width, "height", height)
}

// Projection returns the current projection matrix.
func (s *Scene) Projection() mgl32.Mat4 { return s.projection }
