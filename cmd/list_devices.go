package cmd

import (
	"fmt"

	"github.com/openfluke/webgpu/wgpu"
	"github.com/urfave/cli"
)

// ListDevices enumerates every GPU adapter the WebGPU backend can see,
// printing its name, backend type and adapter type.
func ListDevices(ctx *cli.Context) error {
	setupLogging(ctx)

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapters := instance.EnumerateAdapters(nil)
	fmt.Printf("\nSystem provides %d compute-capable adapter(s):\n\n", len(adapters))
	for i, adapter := range adapters {
		info := adapter.GetInfo()
		fmt.Printf("[Adapter %02d]\n  Name    %s\n  Backend %v\n  Type    %v\n\n", i, info.Name, info.BackendType, info.AdapterType)
	}

	return nil
}
