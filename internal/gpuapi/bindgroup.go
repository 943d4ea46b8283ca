package gpuapi

import (
	"fmt"

	"github.com/openfluke/webgpu/wgpu"
)

// BindGroupResource associates a binding slot with the concrete resource
// (view or buffer) that descriptor-set binding should point at.
type BindGroupResource struct {
	Binding uint32
	View    *wgpu.TextureView
	Buffer  *wgpu.Buffer
	Size    uint64
}

// CreateBindGroup builds a bind group (descriptor set) against layout
// using resources. Rebuilding a bind group is how the render engine
// rewrites its descriptor set after a scene hot-swap, since WebGPU bind
// groups are immutable once created.
func CreateBindGroup(ctx *Context, layout *wgpu.BindGroupLayout, label string, resources []BindGroupResource) (*wgpu.BindGroup, error) {
	entries := make([]wgpu.BindGroupEntry, 0, len(resources))
	for _, r := range resources {
		entry := wgpu.BindGroupEntry{Binding: r.Binding}
		if r.View != nil {
			entry.TextureView = r.View
		}
		if r.Buffer != nil {
			entry.Buffer = r.Buffer
			entry.Size = r.Size
		}
		entries = append(entries, entry)
	}

	bg, err := ctx.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   label,
		Layout:  layout,
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("gpuapi: create bind group %q: %w", label, err)
	}
	return bg, nil
}
