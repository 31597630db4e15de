// Package input routes raw device events into interaction state.
package input

// Key is a keyboard key code. Values match GLFW's key codes.
type Key int

const (
	KeyUnknown Key = -1
	KeySpace   Key = 32
	KeyEscape  Key = 256
)

// Action is the state change reported with a key or button event.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// Button identifies a pointer button. Values match GLFW's button numbers.
type Button int

const (
	ButtonNone   Button = -1
	ButtonLeft   Button = 0
	ButtonRight  Button = 1
	ButtonMiddle Button = 2
)

// EventSink receives the events pushed by the windowing layer.
type EventSink interface {
	Key(key Key, action Action)
	MouseButton(button Button, action Action, x, y float64)
	CursorMove(x, y float64)
	Scroll(dx, dy float64)
	Resize(width, height int)
}
