package builtscene

import (
	"testing"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/bvh"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
)

func TestBuildFromTrianglesEmptyIsValid(t *testing.T) {
	pkg, err := BuildFromTriangles(nil, bvh.BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.TriangleCount != 0 {
		t.Fatalf("expected 0 triangles, got %d", pkg.TriangleCount)
	}
	if len(pkg.BvhNodes) != 0 {
		t.Fatalf("expected no bvh nodes for an empty package")
	}
}

func TestBuildFromTrianglesLayout(t *testing.T) {
	tris := []types.Triangle{
		{V0: types.Vec3{0, 0, 0}, V1: types.Vec3{1, 0, 0}, V2: types.Vec3{0, 1, 0}, Color: types.Vec3{1, 0, 0}, Material: types.MaterialMatte},
		{V0: types.Vec3{2, 0, 0}, V1: types.Vec3{3, 0, 0}, V2: types.Vec3{2, 1, 0}, Color: types.Vec3{0, 1, 0}, Material: types.MaterialEmissive},
	}

	pkg, err := BuildFromTriangles(tris, bvh.BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pkg.TriangleCount != 2 {
		t.Fatalf("expected 2 triangles, got %d", pkg.TriangleCount)
	}
	if len(pkg.Vertices) != int(pkg.TriangleCount)*12 {
		t.Fatalf("expected %d vertex floats, got %d", pkg.TriangleCount*12, len(pkg.Vertices))
	}
	if len(pkg.Materials) != int(pkg.TriangleCount)*4 {
		t.Fatalf("expected %d material floats, got %d", pkg.TriangleCount*4, len(pkg.Materials))
	}
	if len(pkg.BvhNodes)%48 != 0 {
		t.Fatalf("expected bvh node buffer to be a multiple of 48 bytes, got %d", len(pkg.BvhNodes))
	}
}

func TestVertexAndMaterialBytesRoundTripLength(t *testing.T) {
	pkg := &Package{Vertices: []float32{1, 2, 3, 0}, Materials: []float32{1, 0, 0, 3}}
	if len(pkg.VertexBytes()) != 16 {
		t.Fatalf("expected 16 vertex bytes, got %d", len(pkg.VertexBytes()))
	}
	if len(pkg.MaterialBytes()) != 16 {
		t.Fatalf("expected 16 material bytes, got %d", len(pkg.MaterialBytes()))
	}
}
