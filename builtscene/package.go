// Package builtscene holds the flat, GPU-ready buffers produced by the
// scene-build role and consumed by the render engine.
package builtscene

import (
	"encoding/binary"
	"math"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/bvh"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
)

// Package is the complete, immutable output of one scene build: a
// flattened BVH plus the two flat per-triangle buffers the compute kernel
// indexes into. It is handed from the scene-build role to the render
// engine over the scene queue and never mutated afterwards.
type Package struct {
	// Vertices holds 12 float32s per triangle (V0,pad, V1,pad, V2,pad),
	// 16-byte aligned per vertex for std430-style GPU storage buffers.
	Vertices []float32
	// Materials holds 4 float32s per triangle: color.rgb + a material
	// tag packed into the w component.
	Materials []float32
	// BvhNodes is the flattened BVH node buffer (see package bvh).
	BvhNodes []byte
	// TriangleCount is len(Vertices)/12 == len(Materials)/4.
	TriangleCount uint32
}

// Empty returns a valid, zero-triangle package. The render engine treats
// this as a legal scene: the kernel simply has nothing to intersect.
func Empty() *Package {
	return &Package{}
}

// BuildFromTriangles flattens tris into a Package, building a BVH over
// them first. It is the single place that ties package bvh's output
// format to the buffer layout the render engine's descriptor set expects.
func BuildFromTriangles(tris []types.Triangle, opts bvh.BuildOptions) (*Package, error) {
	if len(tris) == 0 {
		return Empty(), nil
	}

	root, err := bvh.Build(tris, opts)
	if err != nil {
		return nil, err
	}

	nodes, flatTris := bvh.Flatten(root, tris)

	vertices := make([]float32, 0, len(flatTris)*12)
	materials := make([]float32, 0, len(flatTris)*4)
	for _, t := range flatTris {
		vertices = appendVec3Padded(vertices, t.V0)
		vertices = appendVec3Padded(vertices, t.V1)
		vertices = appendVec3Padded(vertices, t.V2)
		materials = append(materials, t.Color[0], t.Color[1], t.Color[2], float32(t.Material))
	}

	return &Package{
		Vertices:      vertices,
		Materials:     materials,
		BvhNodes:      nodes,
		TriangleCount: uint32(len(flatTris)),
	}, nil
}

func appendVec3Padded(dst []float32, v types.Vec3) []float32 {
	return append(dst, v[0], v[1], v[2], 0)
}

// VertexBytes returns Vertices as a little-endian byte slice ready for
// upload to a GPU buffer.
func (p *Package) VertexBytes() []byte {
	return float32sToBytes(p.Vertices)
}

// MaterialBytes returns Materials as a little-endian byte slice ready for
// upload to a GPU buffer.
func (p *Package) MaterialBytes() []byte {
	return float32sToBytes(p.Materials)
}

func float32sToBytes(vals []float32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:i*4+4], math.Float32bits(v))
	}
	return out
}
