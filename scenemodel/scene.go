// Package scenemodel holds the mutable scene graph edited by the UI role
// and the immutable snapshots handed to the scene-build role.
package scenemodel

import (
	"sync"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
)

// Instance places one mesh asset in the world.
type Instance struct {
	MeshPath     string
	DisplayName  string
	Position     types.Vec3
	Scale        types.Vec3
	Color        types.Vec3
	MaterialType types.MaterialType
}

// Scene is the mutable, thread-safe scene graph owned by the UI role. Go
// has no copy-on-write list primitive analogous to Java's
// CopyOnWriteArrayList, so a mutex-guarded slice plays the same role: every
// read the build role needs goes through Snapshot, which takes a deep copy
// under the lock and never hands out the live backing array.
type Scene struct {
	mu        sync.RWMutex
	instances []Instance
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends inst to the scene.
func (s *Scene) Add(inst Instance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instances = append(s.instances, inst)
}

// Remove deletes the instance at index i. It is a no-op if i is out of
// range.
func (s *Scene) Remove(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.instances) {
		return
	}
	s.instances = append(s.instances[:i], s.instances[i+1:]...)
}

// Clear removes every instance.
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instances = nil
}

// Len returns the number of instances currently in the scene.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.instances)
}

// Snapshot returns a deep copy of the scene's instance list, safe to hand
// to the scene-build role without further synchronization.
func (s *Scene) Snapshot() []Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Instance, len(s.instances))
	copy(out, s.instances)
	return out
}
