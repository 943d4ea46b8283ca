package bvh

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
)

func quad(v0, v1, v2 types.Vec3) types.Triangle {
	return types.Triangle{V0: v0, V1: v1, V2: v2}
}

func TestBuildEmptySceneFails(t *testing.T) {
	_, err := Build(nil, BuildOptions{})
	if err != ErrEmptyScene {
		t.Fatalf("expected ErrEmptyScene, got %v", err)
	}
}

func TestBuildDegenerateGeometryFails(t *testing.T) {
	nan := float32(math.NaN())
	tris := []types.Triangle{
		quad(types.Vec3{0, 0, 0}, types.Vec3{1, 0, 0}, types.Vec3{0, 1, 0}),
		quad(types.Vec3{nan, 0, 0}, types.Vec3{1, 0, 0}, types.Vec3{0, 1, 0}),
	}
	_, err := Build(tris, BuildOptions{})
	if err != ErrDegenerateGeometry {
		t.Fatalf("expected ErrDegenerateGeometry, got %v", err)
	}
}

func TestBuildCoincidentCentroidsAreNotDegenerate(t *testing.T) {
	p := types.Vec3{1, 1, 1}
	tris := []types.Triangle{quad(p, p, p), quad(p, p, p)}
	root, err := Build(tris, BuildOptions{})
	if err != nil {
		t.Fatalf("coincident (but finite) geometry should build, got error: %v", err)
	}
	var leafCount int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			leafCount++
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)
	if leafCount != 2 {
		t.Fatalf("expected 2 leaves, got %d", leafCount)
	}
}

func TestBuildSingleTriangleYieldsSingleLeaf(t *testing.T) {
	tris := []types.Triangle{quad(types.Vec3{0, 0, 0}, types.Vec3{1, 0, 0}, types.Vec3{0, 1, 0})}
	root, err := Build(tris, BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !root.IsLeaf() {
		t.Fatalf("expected single-triangle tree to be a single leaf")
	}
	if root.TriIndex != 0 {
		t.Fatalf("expected leaf to reference triangle 0, got %d", root.TriIndex)
	}

	nodes, _ := Flatten(root, tris)
	if len(nodes) != flatNodeSize {
		t.Fatalf("expected a single flattened node, got %d bytes", len(nodes))
	}
	a := int32(binary.LittleEndian.Uint32(nodes[32:36]))
	b := int32(binary.LittleEndian.Uint32(nodes[36:40]))
	if a != -1 || b != -1 {
		t.Fatalf("expected single-triangle leaf encoding a=-1, b=-1, got a=%d, b=%d", a, b)
	}
}

func TestBuildFourTrianglesProducesFullBinaryTree(t *testing.T) {
	tris := []types.Triangle{
		quad(types.Vec3{-2, 0, -2}, types.Vec3{-1, 0, -2}, types.Vec3{-2, 1, -2}),
		quad(types.Vec3{1, 0, -2}, types.Vec3{2, 0, -2}, types.Vec3{1, 1, -2}),
		quad(types.Vec3{-2, 0, 1}, types.Vec3{-1, 0, 1}, types.Vec3{-2, 1, 1}),
		quad(types.Vec3{1, 0, 1}, types.Vec3{2, 0, 1}, types.Vec3{1, 1, 1}),
	}

	root, err := Build(tris, BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var leafCount, internalCount int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			leafCount++
			return
		}
		internalCount++
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	if leafCount != 4 {
		t.Fatalf("expected 4 leaves, got %d", leafCount)
	}
	if internalCount != 3 {
		t.Fatalf("expected 3 internal nodes, got %d", internalCount)
	}
}

func TestFlattenRoundTripsAllTriangles(t *testing.T) {
	tris := []types.Triangle{
		quad(types.Vec3{-2, 0, -2}, types.Vec3{-1, 0, -2}, types.Vec3{-2, 1, -2}),
		quad(types.Vec3{1, 0, -2}, types.Vec3{2, 0, -2}, types.Vec3{1, 1, -2}),
		quad(types.Vec3{-2, 0, 1}, types.Vec3{-1, 0, 1}, types.Vec3{-2, 1, 1}),
		quad(types.Vec3{1, 0, 1}, types.Vec3{2, 0, 1}, types.Vec3{1, 1, 1}),
	}

	root, err := Build(tris, BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nodes, flatTris := Flatten(root, tris)

	if len(nodes)%flatNodeSize != 0 {
		t.Fatalf("expected node buffer to be a multiple of %d bytes, got %d", flatNodeSize, len(nodes))
	}
	if len(nodes)/flatNodeSize != 7 {
		t.Fatalf("expected 7 flattened nodes, got %d", len(nodes)/flatNodeSize)
	}
	if len(flatTris) != len(tris) {
		t.Fatalf("expected %d reordered triangles, got %d", len(tris), len(flatTris))
	}
}

func TestFlattenTwoTrianglesEncodesInternalChildIndices(t *testing.T) {
	tris := []types.Triangle{
		quad(types.Vec3{-2, 0, 0}, types.Vec3{-1, 0, 0}, types.Vec3{-2, 1, 0}),
		quad(types.Vec3{1, 0, 0}, types.Vec3{2, 0, 0}, types.Vec3{1, 1, 0}),
	}

	root, err := Build(tris, BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.IsLeaf() {
		t.Fatalf("expected two triangles to produce an internal root")
	}

	nodes, _ := Flatten(root, tris)
	if len(nodes)/flatNodeSize != 3 {
		t.Fatalf("expected 3 flattened nodes (1 internal + 2 leaves), got %d", len(nodes)/flatNodeSize)
	}

	rootA := int32(binary.LittleEndian.Uint32(nodes[32:36]))
	rootB := int32(binary.LittleEndian.Uint32(nodes[36:40]))
	if rootA != 1 {
		t.Fatalf("expected root's a (left child index) to be 1, got %d", rootA)
	}
	if rootB != 2 {
		t.Fatalf("expected root's b (right child index) to be 2, got %d", rootB)
	}

	for _, leafOffset := range []int{1, 2} {
		rec := nodes[leafOffset*flatNodeSize : leafOffset*flatNodeSize+flatNodeSize]
		a := int32(binary.LittleEndian.Uint32(rec[32:36]))
		b := int32(binary.LittleEndian.Uint32(rec[36:40]))
		if a > -1 {
			t.Fatalf("expected leaf node %d's a to be <= -1, got %d", leafOffset, a)
		}
		if b != -1 {
			t.Fatalf("expected leaf node %d's b to be -1, got %d", leafOffset, b)
		}
	}
}

func TestBuildWithRandomAxisIsDeterministicPerSeed(t *testing.T) {
	tris := []types.Triangle{
		quad(types.Vec3{-2, 0, -2}, types.Vec3{-1, 0, -2}, types.Vec3{-2, 1, -2}),
		quad(types.Vec3{1, 0, -2}, types.Vec3{2, 0, -2}, types.Vec3{1, 1, -2}),
		quad(types.Vec3{-2, 0, 1}, types.Vec3{-1, 0, 1}, types.Vec3{-2, 1, 1}),
		quad(types.Vec3{1, 0, 1}, types.Vec3{2, 0, 1}, types.Vec3{1, 1, 1}),
	}

	root1, err := Build(tris, BuildOptions{Axis: RandomAxis, Seed: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root2, err := Build(tris, BuildOptions{Axis: RandomAxis, Seed: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nodes1, _ := Flatten(root1, tris)
	nodes2, _ := Flatten(root2, tris)
	if string(nodes1) != string(nodes2) {
		t.Fatalf("expected identical seeds to produce identical trees")
	}
}
