package gpuapi

import (
	"fmt"

	"github.com/openfluke/webgpu/wgpu"
)

// StorageImage is the WIDTH x HEIGHT x RGBA8 accumulation target, bound
// both as a read-write compute storage image and as the source of the
// per-frame host readback copy.
type StorageImage struct {
	Texture *wgpu.Texture
	View    *wgpu.TextureView
	Width   uint32
	Height  uint32
}

// CreateStorageImage allocates an RGBA8Unorm texture usable as a compute
// storage binding and as a copy source for frame readback.
func CreateStorageImage(ctx *Context, width, height uint32) (*StorageImage, error) {
	tex, err := ctx.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "accumulation-image",
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageStorageBinding | wgpu.TextureUsageCopySrc | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpuapi: create storage image: %w", err)
	}

	view, err := tex.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("gpuapi: create storage image view: %w", err)
	}

	return &StorageImage{Texture: tex, View: view, Width: width, Height: height}, nil
}

// Release destroys the underlying texture and view.
func (s *StorageImage) Release() {
	if s.View != nil {
		s.View.Release()
	}
	if s.Texture != nil {
		s.Texture.Release()
	}
}

// ReadPixels copies the image's contents to a host-visible buffer and
// returns the raw RGBA8 bytes, row-major, top-to-bottom.
func ReadPixels(ctx *Context, img *StorageImage) ([]byte, error) {
	bytesPerRow := img.Width * 4
	byteLen := uint64(bytesPerRow) * uint64(img.Height)

	staging, err := ctx.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "frame-readback-staging",
		Size:  byteLen,
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	if err != nil {
		return nil, fmt.Errorf("gpuapi: create frame staging buffer: %w", err)
	}
	defer staging.Release()

	encoder, err := ctx.Device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("gpuapi: create readback encoder: %w", err)
	}
	encoder.CopyTextureToBuffer(
		&wgpu.ImageCopyTexture{Texture: img.Texture},
		&wgpu.ImageCopyBuffer{
			Buffer: staging,
			Layout: wgpu.TextureDataLayout{BytesPerRow: bytesPerRow, RowsPerImage: img.Height},
		},
		&wgpu.Extent3D{Width: img.Width, Height: img.Height, DepthOrArrayLayers: 1},
	)
	cmd, err := encoder.Finish(nil)
	if err != nil {
		return nil, fmt.Errorf("gpuapi: finish readback encoder: %w", err)
	}
	ctx.Queue.Submit(cmd)
	ctx.Device.Poll(true, nil)

	mapped := make(chan wgpu.BufferMapAsyncStatus, 1)
	staging.MapAsync(wgpu.MapModeRead, 0, byteLen, func(status wgpu.BufferMapAsyncStatus) {
		mapped <- status
	})
	ctx.Device.Poll(true, nil)
	select {
	case status := <-mapped:
		if status != wgpu.BufferMapAsyncStatusSuccess {
			return nil, fmt.Errorf("gpuapi: frame buffer map failed: status %v", status)
		}
	default:
		return nil, fmt.Errorf("gpuapi: frame buffer map did not complete")
	}

	view := staging.GetMappedRange(0, uint(byteLen))
	out := make([]byte, len(view))
	copy(out, view)
	staging.Unmap()
	return out, nil
}
