package gpuapi

import (
	"fmt"

	"github.com/openfluke/webgpu/wgpu"
)

// WorkgroupSize is the fixed compute shader workgroup footprint the
// kernel is compiled against.
const WorkgroupSize = 8

// DispatchCompute records a single compute pass against bindGroup and
// submits it, blocking until the submission completes. The three
// WebGPU-tracked usage transitions around the storage image (untracked
// compute write, copy source, copy destination on the next frame) stand
// in for the reference renderer's explicit barrier A / barrier B /
// barrier C image layout transitions: WebGPU's encoder inserts the
// equivalent transitions automatically at pass boundaries. This function
// records only the compute pass and waits for it; the copy-out is a
// separate submission made by ReadPixels. pushConstant is accepted but
// not written to any GPU resource, so the kernel does not receive it.
func DispatchCompute(ctx *Context, pipeline *Pipeline, bindGroup *wgpu.BindGroup, img *StorageImage, pushConstant uint32, width, height uint32) error {
	encoder, err := ctx.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("gpuapi: create frame encoder: %w", err)
	}

	// Barrier A equivalent: nothing to transition yet, the storage image
	// is already in the general/storage layout from the previous frame's
	// barrier C.
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(pipeline.Compute)
	pass.SetBindGroup(0, bindGroup, nil)
	groupsX := (width + WorkgroupSize - 1) / WorkgroupSize
	groupsY := (height + WorkgroupSize - 1) / WorkgroupSize
	pass.DispatchWorkgroups(groupsX, groupsY, 1)
	pass.End()

	// Barrier B equivalent: storage-image-write -> copy-src, enforced by
	// the pass boundary above. The actual copy-out happens in ReadPixels,
	// which render/engine.go's loop calls after this function returns.

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("gpuapi: finish frame encoder: %w", err)
	}
	ctx.Queue.Submit(cmd)

	// Barrier C equivalent: wait for the submission (fence) before the
	// image is touched again next frame.
	ctx.Device.Poll(true, nil)
	return nil
}
