package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressMoveRelease(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, ButtonNone, r.State().Button)

	r.MouseButton(ButtonLeft, Press, 10, 20)
	s := r.State()
	assert.Equal(t, ButtonLeft, s.Button)
	assert.Equal(t, 10.0, s.X)
	assert.Equal(t, 10.0, s.OldX)

	r.CursorMove(13, 15)
	s = r.State()
	assert.Equal(t, 10.0, s.OldX)
	assert.Equal(t, 20.0, s.OldY)
	assert.Equal(t, 3.0, s.DX)
	assert.Equal(t, -5.0, s.DY)

	r.CursorMove(11, 25)
	s = r.State()
	assert.Equal(t, -2.0, s.DX)
	assert.Equal(t, 10.0, s.DY)

	r.MouseButton(ButtonLeft, Release, 11, 25)
	assert.Equal(t, ButtonNone, r.State().Button)
}

func TestQuitKey(t *testing.T) {
	tests := []struct {
		name   string
		key    Key
		action Action
		quit   bool
	}{
		{"escape press", KeyEscape, Press, true},
		{"escape release", KeyEscape, Release, false},
		{"escape repeat", KeyEscape, Repeat, false},
		{"space press", KeySpace, Press, false},
		{"unknown press", KeyUnknown, Press, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter()
			r.Key(tt.key, tt.action)
			assert.Equal(t, tt.quit, r.QuitRequested())
		})
	}
}

func TestScroll(t *testing.T) {
	r := NewRouter()
	r.Scroll(0, -2)
	assert.Equal(t, -2.0, r.State().ScrollY)
}

func TestTakeResize(t *testing.T) {
	r := NewRouter()

	_, _, ok := r.TakeResize()
	assert.False(t, ok)

	r.Resize(640, 480)
	r.Resize(800, 600)

	w, h, ok := r.TakeResize()
	assert.True(t, ok)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	_, _, ok = r.TakeResize()
	assert.False(t, ok)
}
