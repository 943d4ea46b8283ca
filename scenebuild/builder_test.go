package scenebuild

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/scenemodel"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
)

func writeTempObj(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write temp obj: %v", err)
	}
	return path
}

func TestBuildSkipsInstanceWithUnloadableMesh(t *testing.T) {
	good := writeTempObj(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")

	instances := []scenemodel.Instance{
		{MeshPath: good, Scale: types.Vec3{1, 1, 1}},
		{MeshPath: "does-not-exist.obj", Scale: types.Vec3{1, 1, 1}},
	}

	b := &Builder{}
	pkg, err := b.Build(context.Background(), instances)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.TriangleCount != 1 {
		t.Fatalf("expected the failing instance to be skipped, leaving 1 triangle; got %d", pkg.TriangleCount)
	}
}

func TestBuildEmptyInstanceListProducesEmptyPackage(t *testing.T) {
	b := &Builder{}
	pkg, err := b.Build(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.TriangleCount != 0 {
		t.Fatalf("expected an empty package, got %d triangles", pkg.TriangleCount)
	}
}

func TestBuildAppliesScaleThenPosition(t *testing.T) {
	path := writeTempObj(t, "v 1 0 0\nv 0 1 0\nv 0 0 1\nf 1 2 3\n")

	instances := []scenemodel.Instance{
		{MeshPath: path, Scale: types.Vec3{2, 2, 2}, Position: types.Vec3{10, 0, 0}},
	}

	b := &Builder{}
	pkg, err := b.Build(context.Background(), instances)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.TriangleCount != 1 {
		t.Fatalf("expected 1 triangle, got %d", pkg.TriangleCount)
	}
	// v0 = (1,0,0)*2 + (10,0,0) = (12,0,0)
	if pkg.Vertices[0] != 12 || pkg.Vertices[1] != 0 || pkg.Vertices[2] != 0 {
		t.Fatalf("expected scale-then-translate to produce (12,0,0), got (%f,%f,%f)", pkg.Vertices[0], pkg.Vertices[1], pkg.Vertices[2])
	}
}
