package meshio

import (
	"os"
	"path/filepath"
	"testing"
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

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("model.fbx")
	if err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestLoadSingleTriangle(t *testing.T) {
	path := writeTempObj(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	tris, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(tris))
	}
	if tris[0].V1 != [3]float32{1, 0, 0} {
		t.Fatalf("unexpected vertex: %v", tris[0].V1)
	}
}

func TestLoadFanTriangulatesQuad(t *testing.T) {
	path := writeTempObj(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")
	tris, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("expected a quad to fan-triangulate into 2 triangles, got %d", len(tris))
	}
}

func TestLoadNoTrianglesIsError(t *testing.T) {
	path := writeTempObj(t, "v 0 0 0\n")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error when mesh has no faces")
	}
}
