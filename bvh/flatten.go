package bvh

import (
	"encoding/binary"
	"math"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
)

// flatNodeSize is the byte size of a single flattened BVH record: a Vec3
// min + padding, a Vec3 max + padding, and two int32 payload fields "a"
// and "b", std430-style.
const flatNodeSize = 48

// Flatten linearizes root into a depth-first, pre-order byte buffer of
// flatNodeSize-byte records, and returns the triangle list reordered to
// match the leaves' visitation order. A leaf's "a" field is encoded as
// -(triangleIndex+1) (always <= -1) and its "b" field is always -1. An
// internal node's "a" field holds its left child's index and its "b"
// field holds its right child's index into the returned node buffer
// (both always >= 0).
func Flatten(root *Node, tris []types.Triangle) (nodes []byte, flatTris []types.Triangle) {
	var buf []byte
	flatTris = make([]types.Triangle, 0, len(tris))

	var visit func(n *Node) int
	visit = func(n *Node) int {
		nodeIndex := len(buf) / flatNodeSize
		buf = append(buf, make([]byte, flatNodeSize)...)

		rec := buf[nodeIndex*flatNodeSize : nodeIndex*flatNodeSize+flatNodeSize]
		putVec3Padded(rec[0:16], n.BBox.Min)
		putVec3Padded(rec[16:32], n.BBox.Max)

		if n.IsLeaf() {
			leafSlot := len(flatTris)
			flatTris = append(flatTris, tris[n.TriIndex])
			binary.LittleEndian.PutUint32(rec[32:36], uint32(int32(-(leafSlot + 1))))
			negOne := int32(-1)
			binary.LittleEndian.PutUint32(rec[36:40], uint32(negOne))
			// rec[40:48] stays zeroed padding, rounding the record up to
			// a 16-byte-aligned 48 bytes for std430-style GPU access.
			return nodeIndex
		}

		leftIndex := visit(n.Left)
		rightIndex := visit(n.Right)
		// The recursive appends above may have moved buf, so re-slice this
		// node's record before patching in its child indices.
		rec = buf[nodeIndex*flatNodeSize : nodeIndex*flatNodeSize+flatNodeSize]
		binary.LittleEndian.PutUint32(rec[32:36], uint32(int32(leftIndex)))
		binary.LittleEndian.PutUint32(rec[36:40], uint32(int32(rightIndex)))
		return nodeIndex
	}

	visit(root)
	return buf, flatTris
}

func putVec3Padded(dst []byte, v types.Vec3) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(v[2]))
	binary.LittleEndian.PutUint32(dst[12:16], 0)
}
