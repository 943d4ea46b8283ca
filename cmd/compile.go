package cmd

import (
	"fmt"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/bvh"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/meshio"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/types"
	"github.com/urfave/cli"
)

// CompileScene parses each argument as a wavefront obj mesh, builds and
// flattens a BVH over it, and prints the resulting node/triangle counts.
// It exercises the BVH pipeline end to end without touching the GPU.
func CompileScene(ctx *cli.Context) error {
	setupLogging(ctx)

	for idx := 0; idx < ctx.NArg(); idx++ {
		meshFile := ctx.Args().Get(idx)

		raw, err := meshio.Load(meshFile)
		if err != nil {
			logger.Errorf("%s: %v", meshFile, err)
			continue
		}

		tris := make([]types.Triangle, len(raw))
		for i, r := range raw {
			tris[i] = types.Triangle{V0: r.V0, V1: r.V1, V2: r.V2}
		}

		root, err := bvh.Build(tris, bvh.BuildOptions{Axis: bvh.LongestAxis})
		if err != nil {
			logger.Errorf("%s: %v", meshFile, err)
			continue
		}

		nodes, flatTris := bvh.Flatten(root, tris)
		fmt.Printf("%s: %d triangles, %d bvh nodes (%d bytes)\n", meshFile, len(flatTris), len(nodes)/48, len(nodes))
	}

	return nil
}
