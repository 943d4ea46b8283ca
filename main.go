package main

import (
	"os"

	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "3d-ray-tracer-vulkan"
	app.Usage = "real-time GPU ray tracer"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "compile",
			Usage: "build and flatten a BVH over one or more mesh files",
			Description: `
Parse each wavefront obj file, build a BVH tree over its triangles and
flatten it into the depth-first record format the compute kernel expects,
printing node/triangle counts. Useful for sanity-checking a mesh before
adding it to a scene.`,
			ArgsUsage: "mesh_file1.obj mesh_file2.obj ...",
			Action:    cmd.CompileScene,
		},
		{
			Name:   "list-devices",
			Usage:  "list available compute-capable GPU adapters",
			Action: cmd.ListDevices,
		},
		{
			Name:  "render",
			Usage: "open an interactive window and render a scene in real time",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 1024,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 768,
					Usage: "frame height",
				},
				cli.BoolFlag{
					Name:  "remote",
					Usage: "also stream published frames over a websocket for headless preview",
				},
			},
			Action: cmd.RenderInteractive,
		},
		{
			Name:      "debug",
			Usage:     "print BVH construction statistics for a single mesh",
			ArgsUsage: "mesh_file.obj",
			Action:    cmd.Debug,
		},
	}

	app.Run(os.Args)
}
