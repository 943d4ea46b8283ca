package camera

import (
	"math"
	"testing"
)

func TestNewCameraFacesNegativeZ(t *testing.T) {
	c := New(60, 1.0)
	if c.LookAt[2] >= c.Origin[2] {
		t.Fatalf("expected default camera to look down -Z")
	}
}

func TestMoveForwardDoesNotChangeFrameCount(t *testing.T) {
	c := New(60, 1.0)
	c.FrameCount = 5
	c.Move(MoveForward, 1.0)
	if c.FrameCount != 5 {
		t.Fatalf("Move must not touch FrameCount; that is the UI role's responsibility")
	}
}

func TestRecalculateProducesOrthogonalBasis(t *testing.T) {
	c := New(90, 1.0)
	c.Recalculate()

	dot := func(a, b [3]float32) float32 {
		return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
	}

	hv := dot(c.Horizontal, c.Vertical)
	if math.Abs(float64(hv)) > 1e-3 {
		t.Fatalf("expected Horizontal and Vertical to be orthogonal, dot=%f", hv)
	}
}

func TestLookUpdatesLookAt(t *testing.T) {
	c := New(60, 1.0)
	before := c.LookAt
	c.Look(0.5, 0.5)
	if before == c.LookAt {
		t.Fatalf("expected Look to change LookAt")
	}
}
