package gpuapi

import (
	"fmt"
	"os"

	"github.com/openfluke/webgpu/wgpu"
)

// BindingKind tags what kind of resource a descriptor-set binding holds.
type BindingKind int

const (
	BindingStorageImage BindingKind = iota
	BindingStorageBufferReadOnly
	BindingUniform
)

// BindingSpec describes one binding of the descriptor set layout.
type BindingSpec struct {
	Binding uint32
	Kind    BindingKind
}

// Pipeline wraps a compute pipeline plus the bind group layout used to
// build every bind group (descriptor set) bound against it.
type Pipeline struct {
	Module   *wgpu.ShaderModule
	Layout   *wgpu.BindGroupLayout
	PLayout  *wgpu.PipelineLayout
	Compute  *wgpu.ComputePipeline
}

// LoadShaderModule reads a WGSL compute shader from path and compiles it.
func LoadShaderModule(ctx *Context, path string) (*wgpu.ShaderModule, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gpuapi: read shader %q: %w", path, err)
	}
	mod, err := ctx.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          path,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: string(src)},
	})
	if err != nil {
		return nil, fmt.Errorf("gpuapi: compile shader %q: %w", path, err)
	}
	return mod, nil
}

// CreateComputePipeline builds the bind group layout, pipeline layout and
// compute pipeline for a shader with the given binding layout and entry
// point name.
func CreateComputePipeline(ctx *Context, module *wgpu.ShaderModule, bindings []BindingSpec, entryPoint string) (*Pipeline, error) {
	entries := make([]wgpu.BindGroupLayoutEntry, 0, len(bindings))
	for _, b := range bindings {
		entry := wgpu.BindGroupLayoutEntry{
			Binding:    b.Binding,
			Visibility: wgpu.ShaderStageCompute,
		}
		switch b.Kind {
		case BindingStorageImage:
			entry.StorageTexture = wgpu.StorageTextureBindingLayout{
				Access:        wgpu.StorageTextureAccessReadWrite,
				Format:        wgpu.TextureFormatRGBA8Unorm,
				ViewDimension: wgpu.TextureViewDimension2D,
			}
		case BindingStorageBufferReadOnly:
			entry.Buffer = wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeReadOnlyStorage}
		case BindingUniform:
			entry.Buffer = wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}
		}
		entries = append(entries, entry)
	}

	layout, err := ctx.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "scene-bind-group-layout",
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("gpuapi: create bind group layout: %w", err)
	}

	plLayout, err := ctx.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "scene-pipeline-layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		layout.Release()
		return nil, fmt.Errorf("gpuapi: create pipeline layout: %w", err)
	}

	compute, err := ctx.Device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:  "trace-pipeline",
		Layout: plLayout,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     module,
			EntryPoint: entryPoint,
		},
	})
	if err != nil {
		plLayout.Release()
		layout.Release()
		return nil, fmt.Errorf("gpuapi: create compute pipeline: %w", err)
	}

	return &Pipeline{Module: module, Layout: layout, PLayout: plLayout, Compute: compute}, nil
}

// Release tears down the pipeline's owned handles. Module is owned by the
// caller and is not released here, since a single module may back
// multiple pipelines.
func (p *Pipeline) Release() {
	if p.Compute != nil {
		p.Compute.Release()
	}
	if p.PLayout != nil {
		p.PLayout.Release()
	}
	if p.Layout != nil {
		p.Layout.Release()
	}
}
