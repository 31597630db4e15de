// Package window creates the GLFW window and its OpenGL context.
package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/stevebirtles/glframe/internal/config"
	"github.com/stevebirtles/glframe/internal/input"
	"github.com/stevebirtles/glframe/internal/logging"
)

// Window is a GLFW window with a current core-profile context.
// All methods must be called from the thread that opened it.
type Window struct {
	win  *glfw.Window
	sink input.EventSink
}

// Open initialises GLFW, creates the window, makes its context current and
// registers sink for every input callback. The caller must lock the OS thread.
func Open(cfg config.Config, sink input.EventSink) (*Window, error) {

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.DepthBits, cfg.DepthBits)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()

	w := &Window{win: win, sink: sink}

	win.SetKeyCallback(w.onKey)
	win.SetMouseButtonCallback(w.onMouseButton)
	win.SetCursorPosCallback(w.onCursorPos)
	win.SetScrollCallback(w.onScroll)
	win.SetFramebufferSizeCallback(w.onFramebufferSize)

	glfw.SwapInterval(cfg.SwapInterval)

	logging.Logger().Info("window opened",
		"width", cfg.Width, "height", cfg.Height, "gl", fmt.Sprintf("%d.%d", cfg.GLMajor, cfg.GLMinor))

	return w, nil
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	w.sink.Key(input.Key(key), input.Action(action))
}

func (w *Window) onMouseButton(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	x, y := win.GetCursorPos()
	w.sink.MouseButton(input.Button(button), input.Action(action), x, y)
}

func (w *Window) onCursorPos(_ *glfw.Window, x, y float64) {
	w.sink.CursorMove(x, y)
}

func (w *Window) onScroll(_ *glfw.Window, dx, dy float64) {
	w.sink.Scroll(dx, dy)
}

func (w *Window) onFramebufferSize(_ *glfw.Window, width, height int) {
	w.sink.Resize(width, height)
}

// PollEvents dispatches pending events to the sink.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.win.GetFramebufferSize()
}

// Destroy releases the window and terminates GLFW.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
