package render

import (
	"encoding/binary"
	"testing"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/camera"
)

func TestEncodeCameraUniformSize(t *testing.T) {
	cam := camera.New(60, 1.0)
	cam.FrameCount = 7

	buf := EncodeCameraUniform(cam, false)
	if len(buf) != cameraUniformSize {
		t.Fatalf("expected uniform buffer to be %d bytes, got %d", cameraUniformSize, len(buf))
	}

	got := binary.LittleEndian.Uint32(buf[64:68])
	if got != 7 {
		t.Fatalf("expected frame count 7 at byte offset 64, got %d", got)
	}
}

func TestEncodeCameraUniformSkyFlag(t *testing.T) {
	cam := camera.New(60, 1.0)

	off := EncodeCameraUniform(cam, false)
	if got := binary.LittleEndian.Uint32(off[68:72]); got != 0 {
		t.Fatalf("expected sky_enabled=0 at byte offset 68, got %d", got)
	}

	on := EncodeCameraUniform(cam, true)
	if got := binary.LittleEndian.Uint32(on[68:72]); got != 1 {
		t.Fatalf("expected sky_enabled=1 at byte offset 68, got %d", got)
	}
}
