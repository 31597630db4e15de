// Package app drives the frame loop: poll input, tick the clock, count the
// frame, render, present and report FPS in the window title.
package app

import (
	"fmt"

	"github.com/stevebirtles/glframe/internal/clock"
	"github.com/stevebirtles/glframe/internal/config"
	"github.com/stevebirtles/glframe/internal/fps"
	"github.com/stevebirtles/glframe/internal/input"
	"github.com/stevebirtles/glframe/internal/logging"
)

// Window is what the frame loop needs from the windowing layer.
type Window interface {
	PollEvents()
	ShouldClose() bool
	SwapBuffers()
	SetTitle(title string)
	Destroy()
}

// Hooks are the application-specific parts of the loop.
type Hooks struct {
	// Init runs once before the first frame. An error aborts the run.
	Init func() error
	// Render draws one frame.
	Render func(dt float64)
	// Resize receives the latest framebuffer size, at most once per frame.
	Resize func(width, height int)
}

// State is the lifecycle state of the frame loop.
type State int

const (
	Idle State = iota
	Running
	Closing
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Closing:
		return "closing"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// App is the application context: everything the loop touches lives here.
type App struct {
	title  string
	win    Window
	router *input.Router
	clock  *clock.Clock
	fps    *fps.Counter
	hooks  Hooks

	state  State
	frames uint64
}

// Option customises an App.
type Option func(*App)

// WithClock replaces the wall clock, for tests.
func WithClock(c *clock.Clock) Option {
	return func(a *App) { a.clock = c }
}

// New returns an App rendering into win. router must be the sink registered with win.
func New(cfg config.Config, win Window, router *input.Router, hooks Hooks, opts ...Option) *App {
	a := &App{
		title:  cfg.Title,
		win:    win,
		router: router,
		hooks:  hooks,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.clock == nil {
		a.clock = clock.New()
	}
	a.fps = fps.New(cfg.FPSInterval, a.clock.Now)
	return a
}

// State returns the current lifecycle state.
func (a *App) State() State { return a.state }

// Frames returns the number of frames rendered so far.
func (a *App) Frames() uint64 { return a.frames }

// FPS returns the latest frames-per-second reading.
func (a *App) FPS() float64 { return a.fps.Rate() }

// Run initialises the application and loops until a close is requested.
// The window is destroyed before Run returns, whatever the outcome.
func (a *App) Run() error {

	defer a.terminate()

	if a.hooks.Init != nil {
		if err := a.hooks.Init(); err != nil {
			return fmt.Errorf("init: %w", err)
		}
	}

	a.setState(Running)

	for a.state == Running {
		a.frame()
	}

	return nil
}

func (a *App) frame() {

	a.win.PollEvents()

	if a.router.QuitRequested() || a.win.ShouldClose() {
		a.setState(Closing)
		return
	}

	if w, h, ok := a.router.TakeResize(); ok && a.hooks.Resize != nil {
		a.hooks.Resize(w, h)
	}

	dt := a.clock.Tick()
	a.fps.OnFrame()

	if a.hooks.Render != nil {
		a.hooks.Render(dt)
	}
	a.frames++

	a.win.SwapBuffers()
	a.win.SetTitle(a.Title())

}

// Title returns the window title for the latest FPS reading.
func (a *App) Title() string {
	return fmt.Sprintf("%s %d fps", a.title, int(a.fps.Rate()))
}

func (a *App) terminate() {
	if a.state == Terminated {
		return
	}
	a.win.Destroy()
	a.setState(Terminated)
}

func (a *App) setState(s State) {
	logging.Logger().Debug("frame loop", "from", a.state, "to", s, "frames", a.frames)
	a.state = s
}
