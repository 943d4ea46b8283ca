package cmd

import (
	"fmt"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/bvh"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/meshio"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
	"github.com/urfave/cli"
)

// Debug loads a single mesh file and prints BVH construction statistics
// useful when diagnosing a scene that fails to build.
func Debug(ctx *cli.Context) error {
	setupLogging(ctx)

	meshFile := ctx.Args().First()
	if meshFile == "" {
		return fmt.Errorf("usage: debug <mesh_file.obj>")
	}

	raw, err := meshio.Load(meshFile)
	if err != nil {
		logger.Error(err)
		return err
	}

	tris := make([]types.Triangle, len(raw))
	for i, r := range raw {
		tris[i] = types.Triangle{V0: r.V0, V1: r.V1, V2: r.V2}
	}

	root, err := bvh.Build(tris, bvh.BuildOptions{Axis: bvh.LongestAxis})
	if err != nil {
		logger.Error(err)
		return err
	}

	var maxDepth int
	var leafCount, internalCount int
	var walk func(n *bvh.Node, depth int)
	walk = func(n *bvh.Node, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
		if n.IsLeaf() {
			leafCount++
			return
		}
		internalCount++
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}
	walk(root, 0)

	logger.Noticef("%s: %d triangles, %d leaves, %d internal nodes, max depth %d", meshFile, len(tris), leafCount, internalCount, maxDepth)
	return nil
}
