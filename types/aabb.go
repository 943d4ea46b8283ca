package types

// aabbPadding is added to any axis whose extent collapses to zero so a
// flat triangle still yields a non-degenerate volume for ray slab tests.
const aabbPadding = 1e-4

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// Surround returns the smallest AABB containing both a and b.
func Surround(a, b AABB) AABB {
	return AABB{
		Min: MinVec3(a.Min, b.Min),
		Max: MaxVec3(a.Max, b.Max),
	}
}

// Pad widens any axis whose extent is (near) zero by aabbPadding on each
// side so degenerate (axis-aligned) triangles still produce a valid box.
func (b AABB) Pad() AABB {
	out := b
	for i := 0; i < 3; i++ {
		if out.Max[i]-out.Min[i] < aabbPadding {
			out.Min[i] -= aabbPadding
			out.Max[i] += aabbPadding
		}
	}
	return out
}

// LongestAxis returns the index (0=x, 1=y, 2=z) of the box's longest edge.
func (b AABB) LongestAxis() int {
	extent := b.Max.Sub(b.Min)
	axis := 0
	longest := extent[0]
	for i := 1; i < 3; i++ {
		if extent[i] > longest {
			longest = extent[i]
			axis = i
		}
	}
	return axis
}

// Centroid returns the midpoint of the box.
func (b AABB) Centroid() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}
