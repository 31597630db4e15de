package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/stevebirtles/glframe/internal/app"
	"github.com/stevebirtles/glframe/internal/config"
	"github.com/stevebirtles/glframe/internal/glbackend"
	"github.com/stevebirtles/glframe/internal/input"
	"github.com/stevebirtles/glframe/internal/logging"
	"github.com/stevebirtles/glframe/internal/render"
	"github.com/stevebirtles/glframe/internal/window"
)

func init() {

	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()

}

func main() {

	cfg := config.Default()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logging.SetLogger(logger)

	if err := run(cfg); err != nil {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}

}

func run(cfg config.Config) error {

	router := input.NewRouter()

	win, err := window.Open(cfg, router)
	if err != nil {
		return err
	}

	dev, err := glbackend.New(cfg.Debug)
	if err != nil {
		win.Destroy()
		return err
	}

	resources := render.NewResourceSet(dev, []render.ShaderSource{render.ColorShader()},
		render.Cube(), render.Plane())

	width, height := win.FramebufferSize()
	scene := render.NewScene(dev, resources, width, height, cfg.ClearColor)
	scene.Resize(width, height)

	loop := app.New(cfg, win, router, app.Hooks{
		Init:   scene.Init,
		Render: scene.Render,
		Resize: scene.Resize,
	})

	return loop.Run()
}
