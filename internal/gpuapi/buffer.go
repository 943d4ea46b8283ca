package gpuapi

import (
	"fmt"
	"time"

	"github.com/openfluke/webgpu/wgpu"
)

// mapPollTimeout bounds how long ReadBuffer waits for an asynchronous
// buffer mapping to complete before giving up.
const mapPollTimeout = 2 * time.Second

// CreateStorageBuffer allocates a device buffer usable as a compute
// shader storage binding, copy destination and copy source, sized for
// byteLen bytes. A zero byteLen is rounded up to 4 bytes, matching the
// render engine's dummy-buffer fallback for empty scenes (storage buffers
// cannot be zero-sized on most backends).
func CreateStorageBuffer(ctx *Context, label string, byteLen uint64) (*wgpu.Buffer, error) {
	if byteLen == 0 {
		byteLen = 4
	}
	buf, err := ctx.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  byteLen,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("gpuapi: create storage buffer %q: %w", label, err)
	}
	return buf, nil
}

// CreateUniformBuffer allocates a persistently-writable uniform buffer of
// byteLen bytes, used for the camera/accumulation uniform.
func CreateUniformBuffer(ctx *Context, label string, byteLen uint64) (*wgpu.Buffer, error) {
	buf, err := ctx.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  byteLen,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpuapi: create uniform buffer %q: %w", label, err)
	}
	return buf, nil
}

// WriteBuffer uploads data to dst starting at offset, via the context's
// queue.
func WriteBuffer(ctx *Context, dst *wgpu.Buffer, offset uint64, data []byte) {
	ctx.Queue.WriteBuffer(dst, offset, data)
}

// ReadBuffer copies byteLen bytes out of src (starting at offset 0) via a
// host-visible staging buffer and returns the mapped bytes. Grounded on
// the stage/copy/map/poll/unmap sequence used for GPU->host buffer
// readback.
func ReadBuffer(ctx *Context, src *wgpu.Buffer, byteLen uint64) ([]byte, error) {
	staging, err := ctx.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "readback-staging",
		Size:  byteLen,
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	if err != nil {
		return nil, fmt.Errorf("gpuapi: create staging buffer: %w", err)
	}
	defer staging.Release()

	encoder, err := ctx.Device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("gpuapi: create command encoder: %w", err)
	}
	encoder.CopyBufferToBuffer(src, 0, staging, 0, byteLen)
	cmd, err := encoder.Finish(nil)
	if err != nil {
		return nil, fmt.Errorf("gpuapi: finish readback encoder: %w", err)
	}
	ctx.Queue.Submit(cmd)

	done := make(chan error, 1)
	staging.MapAsync(wgpu.MapModeRead, 0, byteLen, func(status wgpu.BufferMapAsyncStatus) {
		if status != wgpu.BufferMapAsyncStatusSuccess {
			done <- fmt.Errorf("gpuapi: buffer map failed: status %v", status)
			return
		}
		done <- nil
	})

	deadline := time.Now().Add(mapPollTimeout)
	for {
		select {
		case err := <-done:
			if err != nil {
				return nil, err
			}
			view := staging.GetMappedRange(0, uint(byteLen))
			out := make([]byte, len(view))
			copy(out, view)
			staging.Unmap()
			return out, nil
		default:
			if time.Now().After(deadline) {
				return nil, fmt.Errorf("gpuapi: timed out waiting for buffer map")
			}
			ctx.Device.Poll(true, nil)
		}
	}
}
