// Package meshio loads triangle-soup mesh files referenced by scene
// instances. Only Wavefront OBJ is understood; any other extension, or
// any read/parse failure, is reported as an error so the scene-build role
// can skip the offending instance without aborting the whole build.
package meshio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
)

// RawTriangle is an untransformed triangle as it appears in the source
// mesh file, before any instance scale/position is applied.
type RawTriangle struct {
	V0, V1, V2 types.Vec3
}

// Load reads path and returns its triangle soup. Triangular faces are
// taken as they are; polygonal faces are fan-triangulated around their
// first vertex.
func Load(path string) ([]RawTriangle, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".obj") {
		return nil, fmt.Errorf("meshio: unsupported mesh format %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: open %q: %w", path, err)
	}
	defer f.Close()

	var verts []types.Vec3
	var tris []RawTriangle

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			v, err := parseVec3(fields[1], fields[2], fields[3])
			if err != nil {
				return nil, fmt.Errorf("meshio: %q: malformed vertex: %w", path, err)
			}
			verts = append(verts, v)
		case "f":
			if len(fields) < 4 {
				continue
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := parseFaceIndex(tok, len(verts))
				if err != nil {
					return nil, fmt.Errorf("meshio: %q: malformed face: %w", path, err)
				}
				idx = append(idx, i)
			}
			for i := 1; i < len(idx)-1; i++ {
				tris = append(tris, RawTriangle{V0: verts[idx[0]], V1: verts[idx[i]], V2: verts[idx[i+1]]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshio: read %q: %w", path, err)
	}

	if len(tris) == 0 {
		return nil, fmt.Errorf("meshio: %q contains no triangles", path)
	}
	return tris, nil
}

func parseVec3(xs, ys, zs string) (types.Vec3, error) {
	x, err := strconv.ParseFloat(xs, 32)
	if err != nil {
		return types.Vec3{}, err
	}
	y, err := strconv.ParseFloat(ys, 32)
	if err != nil {
		return types.Vec3{}, err
	}
	z, err := strconv.ParseFloat(zs, 32)
	if err != nil {
		return types.Vec3{}, err
	}
	return types.Vec3{float32(x), float32(y), float32(z)}, nil
}

// parseFaceIndex parses an OBJ face token of the form "v", "v/vt" or
// "v/vt/vn" and returns a zero-based vertex index, resolving OBJ's
// negative (relative-to-end) indexing against vertCount.
func parseFaceIndex(tok string, vertCount int) (int, error) {
	vpart := strings.SplitN(tok, "/", 2)[0]
	i, err := strconv.Atoi(vpart)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i = vertCount + i
	} else {
		i--
	}
	if i < 0 || i >= vertCount {
		return 0, fmt.Errorf("face index %d out of range (%d vertices)", i, vertCount)
	}
	return i, nil
}
