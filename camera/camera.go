// Package camera implements the pinhole camera the UI role owns and
// publishes to the render engine.
package camera

import (
	"math"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
)

// MoveDirection names the six camera translations the UI role's input
// handling understands.
type MoveDirection int

const (
	MoveForward MoveDirection = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// Camera is a pinhole camera owned by the UI role. FrameCount is the
// accumulation counter: the UI role is its only writer (it increments it
// per tick and resets it on every edit), and the render engine only reads
// it. Every other field must only change alongside a FrameCount reset
// (see package ui).
type Camera struct {
	Origin types.Vec3
	LookAt types.Vec3
	Up     types.Vec3

	VFovDeg float32
	Aspect  float32

	Pitch, Yaw float32

	LowerLeft  types.Vec3
	Horizontal types.Vec3
	Vertical   types.Vec3

	FrameCount uint32
}

// New returns a camera looking down -Z from the origin with the given
// vertical field of view (degrees) and aspect ratio.
func New(vfovDeg, aspect float32) *Camera {
	c := &Camera{
		Origin:  types.Vec3{0, 0, 0},
		LookAt:  types.Vec3{0, 0, -1},
		Up:      types.Vec3{0, 1, 0},
		VFovDeg: vfovDeg,
		Aspect:  aspect,
	}
	c.Recalculate()
	return c
}

// Recalculate rebuilds LowerLeft/Horizontal/Vertical from Origin, LookAt,
// Up, VFovDeg and Aspect. Callers must invoke this after changing any of
// those fields and before the camera is submitted to the render engine.
func (c *Camera) Recalculate() {
	theta := float64(c.VFovDeg) * math.Pi / 180
	halfHeight := float32(math.Tan(theta / 2))
	halfWidth := c.Aspect * halfHeight

	w := c.Origin.Sub(c.LookAt).Normalize()
	u := c.Up.Cross(w).Normalize()
	v := w.Cross(u)

	c.Horizontal = u.Mul(2 * halfWidth)
	c.Vertical = v.Mul(2 * halfHeight)
	c.LowerLeft = c.Origin.Sub(u.Mul(halfWidth)).Sub(v.Mul(halfHeight)).Sub(w)
}

// Move translates the camera's Origin (and LookAt, to preserve facing
// direction) along one of the six axes relative to the current view
// orientation, by amount units. Callers are responsible for resetting
// FrameCount after calling Move, per the accumulation-reset protocol.
func (c *Camera) Move(dir MoveDirection, amount float32) {
	forward := c.LookAt.Sub(c.Origin).Normalize()
	right := forward.Cross(c.Up).Normalize()

	var delta types.Vec3
	switch dir {
	case MoveForward:
		delta = forward.Mul(amount)
	case MoveBackward:
		delta = forward.Mul(-amount)
	case MoveLeft:
		delta = right.Mul(-amount)
	case MoveRight:
		delta = right.Mul(amount)
	case MoveUp:
		delta = c.Up.Mul(amount)
	case MoveDown:
		delta = c.Up.Mul(-amount)
	}

	c.Origin = c.Origin.Add(delta)
	c.LookAt = c.LookAt.Add(delta)
}

// Look applies a relative pitch/yaw rotation (radians) to the camera's
// facing direction around its current Origin, using the same
// quaternion-based orientation update as the reference renderer's
// interactive camera controller.
func (c *Camera) Look(deltaPitch, deltaYaw float32) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw

	dir := c.LookAt.Sub(c.Origin).Normalize()
	rightAxis := dir.Cross(c.Up)

	pitchQuat := types.QuatFromAxisAngle(rightAxis, c.Pitch)
	yawQuat := types.QuatFromAxisAngle(c.Up, c.Yaw)
	orient := pitchQuat.Mul(yawQuat).Normalize()

	dir = orient.Rotate(types.Vec3{0, 0, -1})
	c.LookAt = c.Origin.Add(dir)
}
