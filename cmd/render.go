package cmd

import (
	"net/http"
	"time"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/config"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/render"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/ui"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/ui/remote"
	"github.com/urfave/cli"
)

// RenderInteractive wires the render engine, the scene-build role and the
// UI role together and runs until the window is closed.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := config.DefaultRenderOptions()
	if ctx.IsSet("width") {
		opts.Width = uint32(ctx.Int("width"))
	}
	if ctx.IsSet("height") {
		opts.Height = uint32(ctx.Int("height"))
	}
	opts.Remote = ctx.Bool("remote")

	engine, err := render.New(render.Options{
		Width:      opts.Width,
		Height:     opts.Height,
		ShaderPath: opts.ShaderPath,
		EntryPoint: opts.EntryPoint,
	})
	if err != nil {
		logger.Error(err)
		return err
	}
	engine.Start()
	defer engine.Stop()

	aspect := float32(opts.Width) / float32(opts.Height)
	ctrl := ui.New(engine, aspect)
	ctrl.Camera.Recalculate()
	engine.SubmitCamera(ctrl.Camera)

	if opts.Remote {
		sink := remote.NewSink(engine.Frames)
		mux := http.NewServeMux()
		mux.Handle("/frames", sink)
		go func() {
			logger.Noticef("remote preview listening on %s", opts.RemoteAddr)
			if err := http.ListenAndServe(opts.RemoteAddr, mux); err != nil {
				logger.Errorf("remote preview server exited: %v", err)
			}
		}()
		go func() {
			pump := time.NewTicker(33 * time.Millisecond)
			defer pump.Stop()
			for range pump.C {
				sink.Pump()
			}
		}()
	}

	window, err := ui.NewWindow(ctrl, int(opts.Width), int(opts.Height))
	if err != nil {
		logger.Error(err)
		return err
	}

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for !window.ShouldClose() {
		<-ticker.C
		window.PollEvents()
		ctrl.Tick()
	}

	logger.Notice("shutting down")
	return nil
}
