package render

import (
	"github.com/openfluke/webgpu/wgpu"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/builtscene"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/internal/gpuapi"
)

// sceneResources holds the three storage buffers backing one built
// scene's worth of GPU data, plus the bind group built against them.
// Empty scenes get 4-byte dummy buffers instead of zero-length ones, since
// zero-sized storage buffers are rejected by most backends.
type sceneResources struct {
	vertexBuf   *wgpu.Buffer
	materialBuf *wgpu.Buffer
	bvhBuf      *wgpu.Buffer
	triCount    uint32
	bindGroup   *wgpu.BindGroup
}

func (r *sceneResources) release() {
	if r.bindGroup != nil {
		r.bindGroup.Release()
	}
	if r.vertexBuf != nil {
		r.vertexBuf.Release()
	}
	if r.materialBuf != nil {
		r.materialBuf.Release()
	}
	if r.bvhBuf != nil {
		r.bvhBuf.Release()
	}
}

// uploadScenePackage allocates fresh GPU buffers for pkg and uploads its
// contents. A nil or empty pkg still produces valid (dummy) buffers, so
// the returned resources are always safe to bind.
func uploadScenePackage(ctx *gpuapi.Context, pkg *builtscene.Package) (*sceneResources, error) {
	if pkg == nil {
		pkg = builtscene.Empty()
	}

	vertexBytes := pkg.VertexBytes()
	materialBytes := pkg.MaterialBytes()
	bvhBytes := pkg.BvhNodes

	vertexBuf, err := gpuapi.CreateStorageBuffer(ctx, "scene-vertices", uint64(len(vertexBytes)))
	if err != nil {
		return nil, ErrGpuResourceFailure
	}
	materialBuf, err := gpuapi.CreateStorageBuffer(ctx, "scene-materials", uint64(len(materialBytes)))
	if err != nil {
		vertexBuf.Release()
		return nil, ErrGpuResourceFailure
	}
	bvhBuf, err := gpuapi.CreateStorageBuffer(ctx, "scene-bvh-nodes", uint64(len(bvhBytes)))
	if err != nil {
		vertexBuf.Release()
		materialBuf.Release()
		return nil, ErrGpuResourceFailure
	}

	if len(vertexBytes) > 0 {
		gpuapi.WriteBuffer(ctx, vertexBuf, 0, vertexBytes)
	}
	if len(materialBytes) > 0 {
		gpuapi.WriteBuffer(ctx, materialBuf, 0, materialBytes)
	}
	if len(bvhBytes) > 0 {
		gpuapi.WriteBuffer(ctx, bvhBuf, 0, bvhBytes)
	}

	return &sceneResources{
		vertexBuf:   vertexBuf,
		materialBuf: materialBuf,
		bvhBuf:      bvhBuf,
		triCount:    pkg.TriangleCount,
	}, nil
}
