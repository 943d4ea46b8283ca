package scenemodel

import (
	"testing"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
)

func TestSnapshotIsIndependentOfLiveScene(t *testing.T) {
	s := NewScene()
	s.Add(Instance{MeshPath: "a.obj", Position: types.Vec3{1, 0, 0}})

	snap := s.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 instance in snapshot, got %d", len(snap))
	}

	s.Add(Instance{MeshPath: "b.obj"})
	if len(snap) != 1 {
		t.Fatalf("expected snapshot to stay at 1 instance after later mutation, got %d", len(snap))
	}
	if s.Len() != 2 {
		t.Fatalf("expected live scene to have 2 instances, got %d", s.Len())
	}
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	s := NewScene()
	s.Add(Instance{MeshPath: "a.obj"})
	s.Remove(5)
	if s.Len() != 1 {
		t.Fatalf("expected out-of-range remove to be a no-op, got len %d", s.Len())
	}
}

func TestClearEmptiesScene(t *testing.T) {
	s := NewScene()
	s.Add(Instance{MeshPath: "a.obj"})
	s.Add(Instance{MeshPath: "b.obj"})
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected 0 instances after Clear, got %d", s.Len())
	}
}
