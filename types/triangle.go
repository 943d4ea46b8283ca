package types

// Triangle is the only primitive the compute kernel understands. Color and
// material tag ride along with the geometry so the BVH flattener can emit a
// single, self-contained triangle buffer.
type Triangle struct {
	V0, V1, V2 Vec3
	Color      Vec3
	Material   MaterialType

	bbox    AABB
	bboxSet bool
}

// BBox lazily computes and caches the triangle's (padded) bounding box.
func (t *Triangle) BBox() AABB {
	if t.bboxSet {
		return t.bbox
	}
	min := MinVec3(MinVec3(t.V0, t.V1), t.V2)
	max := MaxVec3(MaxVec3(t.V0, t.V1), t.V2)
	t.bbox = AABB{Min: min, Max: max}.Pad()
	t.bboxSet = true
	return t.bbox
}

// Centroid returns the average of the triangle's three vertices, used by
// the BVH builder as the point a split plane partitions around.
func (t *Triangle) Centroid() Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Mul(1.0 / 3.0)
}
