package input

// QuitKey closes the application when pressed.
const QuitKey = KeyEscape

// State is the interaction state left by the latest events.
type State struct {
	X, Y       float64
	OldX, OldY float64
	DX, DY     float64

	Button Button

	ScrollX, ScrollY float64
}

// Router implements EventSink. It only tracks state; nothing consumes the
// pointer delta or scroll yet.
type Router struct {
	state State

	quit bool

	width, height int
	resized       bool
}

var _ EventSink = (*Router)(nil)

// NewRouter returns a Router with no button pressed.
func NewRouter() *Router {
	return &Router{state: State{Button: ButtonNone}}
}

// Key requests termination when the quit key is pressed. Other keys are ignored.
func (r *Router) Key(key Key, action Action) {
	if action != Press {
		return
	}

	switch key {
	case QuitKey:
		r.quit = true
	case KeySpace:
		// reserved: recenter
	}
}

// MouseButton records the pressed button at the cursor position, or clears it on release.
func (r *Router) MouseButton(button Button, action Action, x, y float64) {
	r.state.Button = button
	r.state.OldX, r.state.X = x, x
	r.state.OldY, r.state.Y = y, y
	r.state.DX, r.state.DY = 0, 0

	if action == Release {
		r.state.Button = ButtonNone
	}
}

// CursorMove shifts the current position to old and records the delta.
func (r *Router) CursorMove(x, y float64) {
	r.state.OldX, r.state.OldY = r.state.X, r.state.Y
	r.state.X, r.state.Y = x, y
	r.state.DX = x - r.state.OldX
	r.state.DY = y - r.state.OldY
}

// Scroll records the latest scroll offsets.
func (r *Router) Scroll(dx, dy float64) {
	r.state.ScrollX, r.state.ScrollY = dx, dy
}

// Resize records the new window size until TakeResize collects it.
func (r *Router) Resize(width, height int) {
	r.width, r.height = width, height
	r.resized = true
}

// State returns a snapshot of the interaction state.
func (r *Router) State() State {
	return r.state
}

// QuitRequested reports whether the quit key has been pressed.
func (r *Router) QuitRequested() bool {
	return r.quit
}

// TakeResize returns the latest size recorded since the previous call.
func (r *Router) TakeResize() (width, height int, ok bool) {
	if !r.resized {
		return 0, 0, false
	}
	r.resized = false
	return r.width, r.height, true
}
