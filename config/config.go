// Package config holds the render engine's startup parameters, populated
// from CLI flags.
package config

// RenderOptions configures a render.Engine and the UI role driving it.
type RenderOptions struct {
	Width, Height uint32
	ShaderPath    string
	EntryPoint    string
	VFovDeg       float32
	Remote        bool
	RemoteAddr    string
}

// DefaultRenderOptions returns the engine defaults used when no CLI flag
// overrides them.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:      1024,
		Height:     768,
		ShaderPath: "shaders/trace.comp.wgsl",
		EntryPoint: "main",
		VFovDeg:    60,
		RemoteAddr: ":8080",
	}
}
