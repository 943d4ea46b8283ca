// Package scenebuild implements the ephemeral scene-build role: it turns
// a Scene snapshot into a builtscene.Package without ever touching the
// GPU, and is the only role allowed to have more than one instance race
// in flight briefly during a rebuild — though Controller (see package ui)
// guarantees at most one build runs at a time in practice.
package scenebuild

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/builtscene"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/bvh"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/log"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/meshio"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/scenemodel"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
)

var logger = log.New("scene builder")

// Builder turns scene snapshots into built packages.
type Builder struct {
	BvhOptions bvh.BuildOptions
}

// Build loads every instance's mesh, applies its transform, and produces
// a built package. A per-instance mesh load failure is logged and that
// instance is skipped; it never aborts the build. An instance list that
// yields zero loadable triangles still produces a valid, empty package.
func (b *Builder) Build(ctx context.Context, instances []scenemodel.Instance) (*builtscene.Package, error) {
	perInstance := make([][]types.Triangle, len(instances))

	g, gctx := errgroup.WithContext(ctx)
	for i, inst := range instances {
		i, inst := i, inst
		g.Go(func() error {
			tris, err := loadInstance(gctx, inst)
			if err != nil {
				logger.Warningf("skipping instance %q (%s): %v", inst.DisplayName, inst.MeshPath, err)
				return nil
			}
			perInstance[i] = tris
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []types.Triangle
	for _, tris := range perInstance {
		all = append(all, tris...)
	}

	pkg, err := builtscene.BuildFromTriangles(all, b.BvhOptions)
	if err != nil {
		return nil, err
	}
	logger.Debugf("built scene: %d instances, %d triangles", len(instances), pkg.TriangleCount)
	return pkg, nil
}

// loadInstance loads inst's mesh and applies v' = v⊙scale + position to
// every vertex, tagging the result with the instance's color and
// material type.
func loadInstance(ctx context.Context, inst scenemodel.Instance) ([]types.Triangle, error) {
	raw, err := meshio.Load(inst.MeshPath)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	scale := inst.Scale
	if scale == (types.Vec3{}) {
		scale = types.Vec3{1, 1, 1}
	}

	out := make([]types.Triangle, len(raw))
	for i, r := range raw {
		out[i] = types.Triangle{
			V0:       transform(r.V0, scale, inst.Position),
			V1:       transform(r.V1, scale, inst.Position),
			V2:       transform(r.V2, scale, inst.Position),
			Color:    inst.Color,
			Material: inst.MaterialType,
		}
	}
	return out, nil
}

func transform(v, scale, position types.Vec3) types.Vec3 {
	return types.Vec3{
		v[0]*scale[0] + position[0],
		v[1]*scale[1] + position[1],
		v[2]*scale[2] + position[2],
	}
}
