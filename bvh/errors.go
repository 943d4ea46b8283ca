package bvh

import "errors"

// ErrEmptyScene is returned by Build when given zero triangles. An empty
// scene is not an error condition for the pipeline as a whole (see
// scenebuild), but it is for the builder itself: there is no tree to build.
var ErrEmptyScene = errors.New("bvh: cannot build a tree from zero triangles")

// ErrDegenerateGeometry is returned by Build when any supplied triangle has
// a NaN or infinite vertex component. Finite zero-extent triangles are not
// rejected.
var ErrDegenerateGeometry = errors.New("bvh: geometry is degenerate; a triangle has a non-finite vertex component")
