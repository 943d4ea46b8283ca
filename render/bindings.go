package render

import "github.com/this-Demir/3D-Ray-Tracer-Vulkan/internal/gpuapi"

// Descriptor set bindings. The accumulation image is bound twice: once at
// binding 0 so the compute kernel can write into it directly, and again
// at binding 5, through the same texture view, for the kernel's read
// side, avoiding a read/write hazard within a single binding slot.
const (
	BindingImageOut        = 0
	BindingVertexBuffer     = 1
	BindingMaterialBuffer   = 2
	BindingBvhNodeBuffer    = 3
	BindingCameraUniform    = 4
	BindingImageIn          = 5
)

var bindingLayout = []gpuapi.BindingSpec{
	{Binding: BindingImageOut, Kind: gpuapi.BindingStorageImage},
	{Binding: BindingVertexBuffer, Kind: gpuapi.BindingStorageBufferReadOnly},
	{Binding: BindingMaterialBuffer, Kind: gpuapi.BindingStorageBufferReadOnly},
	{Binding: BindingBvhNodeBuffer, Kind: gpuapi.BindingStorageBufferReadOnly},
	{Binding: BindingCameraUniform, Kind: gpuapi.BindingUniform},
	{Binding: BindingImageIn, Kind: gpuapi.BindingStorageImage},
}

// cameraUniformSize is the fixed byte size of the per-frame camera and
// accumulation uniform (see accum.go): 4 Vec3 fields padded to 16 bytes
// each (64 bytes), then a uint32 frame counter at offset 64, a uint32
// sky-enabled flag at offset 68 and 8 bytes of padding.
const cameraUniformSize = 80
