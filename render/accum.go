package render

import (
	"encoding/binary"
	"math"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/camera"
)

// EncodeCameraUniform packs cam and the current sky-enabled flag into the
// fixed 80-byte, std140-style layout the compute kernel expects: Origin,
// LowerLeft, Horizontal and Vertical as Vec3+pad (16 bytes each), followed
// by FrameCount as a uint32 at offset 64 and the sky-enabled flag as a
// uint32 (0 or 1) at offset 68.
func EncodeCameraUniform(cam *camera.Camera, skyEnabled bool) [cameraUniformSize]byte {
	var buf [cameraUniformSize]byte
	putVec3(buf[0:16], cam.Origin)
	putVec3(buf[16:32], cam.LowerLeft)
	putVec3(buf[32:48], cam.Horizontal)
	putVec3(buf[48:64], cam.Vertical)
	binary.LittleEndian.PutUint32(buf[64:68], cam.FrameCount)
	var sky uint32
	if skyEnabled {
		sky = 1
	}
	binary.LittleEndian.PutUint32(buf[68:72], sky)
	return buf
}

func putVec3(dst []byte, v [3]float32) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(v[2]))
	binary.LittleEndian.PutUint32(dst[12:16], 0)
}
