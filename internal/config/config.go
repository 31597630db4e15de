// Package config holds the compile-time settings of the application.
package config

import "time"

const (
	windowWidth       = 1000
	windowHeight      = 800
	windowTitlePrefix = "GLFrame-GLFW"
)

// Config describes the window, the GL context and the frame loop.
type Config struct {
	Width  int
	Height int
	Title  string

	GLMajor   int
	GLMinor   int
	DepthBits int

	// SwapInterval 0 presents immediately (vsync off).
	SwapInterval int

	// FPSInterval is how often the FPS counter recomputes its rate.
	FPSInterval time.Duration

	ClearColor [4]float32

	// Debug requests a debug context and installs the GL debug-message callback.
	Debug bool
}

// Default returns the configuration the binary is built with.
func Default() Config {

	return Config{
		Width:        windowWidth,
		Height:       windowHeight,
		Title:        windowTitlePrefix,
		GLMajor:      4,
		GLMinor:      3,
		DepthBits:    16,
		SwapInterval: 0,
		FPSInterval:  500 * time.Millisecond,
		ClearColor:   [4]float32{1, 1, 0, 0},
		Debug:        debugContext,
	}

}
