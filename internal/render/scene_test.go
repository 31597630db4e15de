package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(t *testing.T) (*Scene, *recordingDevice) {
	t.Helper()

	dev := newRecordingDevice()
	rs := NewResourceSet(dev, []ShaderSource{ColorShader()}, Cube(), Plane())
	s := NewScene(dev, rs, 1000, 800, [4]float32{1, 1, 0, 0})
	require.NoError(t, s.Init())
	return s, dev
}

func TestSceneDrawsVisiblePrimitives(t *testing.T) {
	s, dev := newTestScene(t)
	assert.True(t, dev.depthTest)

	dev.calls = nil
	s.Render(0.016)

	assert.Equal(t, 1, dev.clears)
	assert.Equal(t, "clear", dev.calls[0])
	require.Len(t, dev.draws, 1)
	assert.Equal(t, int32(6), dev.draws[0].count)
	assert.NoError(t, dev.Error())
}

func TestSceneResize(t *testing.T) {
	s, dev := newTestScene(t)
	before := s.Projection()

	s.Resize(800, 800)
	assert.Equal(t, [4]int32{0, 0, 800, 800}, dev.viewport)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(fieldOfView), 1, nearPlane, farPlane), s.Projection())
	assert.NotEqual(t, before, s.Projection())

	s.Resize(0, 0)
	assert.Equal(t, [4]int32{0, 0, 800, 800}, dev.viewport)
}
