// Package ui implements the UI role: the single-threaded owner of the
// scene graph and camera, responsible for translating window input into
// scene edits and camera moves, kicking off scene rebuilds on the
// scene-build role, and enforcing the accumulation-reset protocol.
package ui

import (
	"context"
	"sync/atomic"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/bvh"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/camera"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/log"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/render"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/scenebuild"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/scenemodel"
)

var logger = log.New("ui controller")

const cameraMoveSpeed float32 = 0.05
const mouseSensitivity float32 = 0.005

// Controller owns the scene graph and camera and is the sole writer of
// Camera.FrameCount. It must be driven from a single goroutine (the
// window's event-pump thread); it performs no internal locking of its
// own scene/camera state because of that single-writer guarantee.
type Controller struct {
	Scene  *scenemodel.Scene
	Camera *camera.Camera
	Sky    bool

	engine *render.Engine

	buildInProgress atomic.Bool
}

// New returns a controller driving engine, with an empty scene and a
// default-positioned camera matching engine's configured aspect ratio.
func New(engine *render.Engine, aspect float32) *Controller {
	return &Controller{
		Scene:  scenemodel.NewScene(),
		Camera: camera.New(60, aspect),
		engine: engine,
	}
}

// AddInstance adds inst to the scene and kicks off an asynchronous
// rebuild. If a rebuild is already in flight, no new one is started (see
// RebuildScene), and the edit is not built until a later rebuild runs.
func (c *Controller) AddInstance(inst scenemodel.Instance) {
	c.Scene.Add(inst)
	c.Camera.FrameCount = 0
	c.RebuildScene()
}

// RemoveInstance removes the instance at index i and kicks off a rebuild.
func (c *Controller) RemoveInstance(i int) {
	c.Scene.Remove(i)
	c.Camera.FrameCount = 0
	c.RebuildScene()
}

// RebuildScene snapshots the current scene and hands it to the
// scene-build role on a fresh goroutine. At most one rebuild is ever in
// flight: a rebuild requested while one is already running is dropped.
// The in-flight build works on the snapshot taken when it started, so
// edits made after that are not built until RebuildScene is called again
// once it has finished; no follow-up rebuild is queued automatically.
func (c *Controller) RebuildScene() {
	if !c.buildInProgress.CompareAndSwap(false, true) {
		return
	}

	snap := c.Scene.Snapshot()
	go func() {
		defer c.buildInProgress.Store(false)

		builder := &scenebuild.Builder{BvhOptions: bvh.BuildOptions{Axis: bvh.LongestAxis}}
		pkg, err := builder.Build(context.Background(), snap)
		if err != nil {
			logger.Errorf("scene build failed: %v", err)
			return
		}

		c.engine.SubmitScene(pkg)
	}()
}

// BuildInProgress reports whether a scene rebuild is currently running.
func (c *Controller) BuildInProgress() bool {
	return c.buildInProgress.Load()
}

// Move translates the camera, resets the accumulation counter, and
// republishes the camera to the render engine.
func (c *Controller) Move(dir camera.MoveDirection) {
	c.Camera.Move(dir, cameraMoveSpeed)
	c.resetAndSubmitCamera()
}

// Look rotates the camera by a relative mouse delta, resets the
// accumulation counter, and republishes the camera.
func (c *Controller) Look(deltaX, deltaY float32) {
	c.Camera.Look(deltaY*mouseSensitivity, deltaX*mouseSensitivity)
	c.resetAndSubmitCamera()
}

// SetSky toggles the sky-enabled flag, resets accumulation, and publishes
// the change to the render engine.
func (c *Controller) SetSky(enabled bool) {
	c.Sky = enabled
	c.Camera.FrameCount = 0
	c.engine.SubmitSky(enabled)
	c.engine.SubmitCamera(c.Camera)
}

func (c *Controller) resetAndSubmitCamera() {
	c.Camera.Recalculate()
	c.Camera.FrameCount = 0
	c.engine.SubmitCamera(c.Camera)
}

// Tick increments the camera's frame counter and republishes it,
// advancing the accumulation. Accumulation is paused while a scene
// rebuild is in flight: the frame counter does not advance, since the
// triangles it would be accumulating against are about to change.
func (c *Controller) Tick() {
	if c.buildInProgress.Load() {
		return
	}
	c.Camera.FrameCount++
	c.engine.SubmitCamera(c.Camera)
}
