// Package bvh builds and flattens bounding volume hierarchies over triangle
// soups. The builder produces a tagged-variant tree in memory; the
// flattener linearizes that tree into the fixed-stride, depth-first
// pre-order record format the compute kernel walks on the GPU.
package bvh

import (
	"math"
	"math/rand"
	"sort"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/log"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
)

var logger = log.New("bvh builder")

// AxisPolicy selects how the builder chooses the split axis at each
// internal node.
type AxisPolicy int

const (
	// LongestAxis always splits along the parent bounding box's longest
	// edge. Deterministic; the default.
	LongestAxis AxisPolicy = iota
	// RandomAxis picks a uniformly random axis at each node, matching
	// the reference implementation's use of a thread-local RNG.
	RandomAxis
)

// BuildOptions configures Build.
type BuildOptions struct {
	Axis AxisPolicy
	// Seed seeds the RNG used when Axis == RandomAxis. Zero is treated as
	// seed 1, so every RandomAxis build is reproducible.
	Seed int64
}

// Node is a tagged-variant BVH node: either an Internal node with two
// children, or a Leaf holding a single triangle index.
type Node struct {
	BBox types.AABB

	// Leaf fields. IsLeaf is true iff Left/Right are nil.
	TriIndex int

	Left, Right *Node
}

// IsLeaf reports whether n is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

type indexedTriangle struct {
	tri   *types.Triangle
	index int
	bbox  types.AABB
}

// Build constructs a BVH over tris. Every leaf holds exactly one triangle,
// matching the reference renderer's kernel contract (no per-leaf primitive
// ranges). tris must not be empty.
func Build(tris []types.Triangle, opts BuildOptions) (*Node, error) {
	if len(tris) == 0 {
		return nil, ErrEmptyScene
	}

	items := make([]indexedTriangle, len(tris))
	for i := range tris {
		items[i] = indexedTriangle{tri: &tris[i], index: i, bbox: tris[i].BBox()}
	}

	if degenerate(items) {
		return nil, ErrDegenerateGeometry
	}

	var rng *rand.Rand
	if opts.Axis == RandomAxis {
		if opts.Seed == 0 {
			rng = rand.New(rand.NewSource(1))
		} else {
			rng = rand.New(rand.NewSource(opts.Seed))
		}
	}

	root := build(items, opts, rng)
	logger.Debugf("built bvh over %d triangles", len(tris))
	return root, nil
}

// degenerate reports whether any triangle has a NaN or infinite vertex
// component. Zero-extent (coincident-vertex) triangles are not degenerate:
// AABB construction pads them (see types.AABB.Pad), and the builder's
// median-split fallback already handles ties among their centroids.
func degenerate(items []indexedTriangle) bool {
	for _, it := range items {
		for _, v := range [3]types.Vec3{it.tri.V0, it.tri.V1, it.tri.V2} {
			for _, c := range [3]float32{v[0], v[1], v[2]} {
				if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
					return true
				}
			}
		}
	}
	return false
}

func build(items []indexedTriangle, opts BuildOptions, rng *rand.Rand) *Node {
	bbox := boundsOf(items)

	if len(items) == 1 {
		return &Node{BBox: bbox, TriIndex: items[0].index}
	}

	axis := chooseAxis(bbox, opts, rng)
	left, right := partition(items, axis)

	// partition splits at the median index, so for two or more items both
	// halves are non-empty even when centroids tie. This guard keeps the
	// recursion terminating should a half ever come back empty.
	if len(left) == 0 || len(right) == 0 {
		mid := len(items) / 2
		left, right = items[:mid], items[mid:]
	}

	leftNode := build(left, opts, rng)
	rightNode := build(right, opts, rng)
	return &Node{BBox: bbox, Left: leftNode, Right: rightNode}
}

func chooseAxis(bbox types.AABB, opts BuildOptions, rng *rand.Rand) int {
	if opts.Axis == RandomAxis && rng != nil {
		return rng.Intn(3)
	}
	return bbox.LongestAxis()
}

func boundsOf(items []indexedTriangle) types.AABB {
	bbox := items[0].bbox
	for _, it := range items[1:] {
		bbox = types.Surround(bbox, it.bbox)
	}
	return bbox
}

// partition performs a median split of items along axis, using each
// triangle's centroid as the sort key.
func partition(items []indexedTriangle, axis int) (left, right []indexedTriangle) {
	sorted := make([]indexedTriangle, len(items))
	copy(sorted, items)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].tri.Centroid()[axis] < sorted[j].tri.Centroid()[axis]
	})

	mid := len(sorted) / 2
	return sorted[:mid], sorted[mid:]
}
