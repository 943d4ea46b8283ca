// Package gpuapi is a thin facade over github.com/openfluke/webgpu/wgpu
// that speaks in the descriptor-set/command-buffer/fence vocabulary the
// render engine is built against. WebGPU's bind groups stand in for
// descriptor sets, command encoders for command buffers, and
// Queue.Submit+Device.Poll for fence waits.
package gpuapi

import (
	"fmt"

	"github.com/openfluke/webgpu/wgpu"
)

// Context holds the process-wide GPU handles. A render engine acquires
// exactly one Context for its lifetime.
type Context struct {
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
}

// Acquire creates a new Instance/Adapter/Device/Queue chain, preferring a
// high-performance (discrete) adapter and falling back to whatever the
// platform offers.
func Acquire() (*Context, error) {
	instance := wgpu.CreateInstance(nil)

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil || adapter == nil {
		adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
			PowerPreference: wgpu.PowerPreferenceLowPower,
		})
	}
	if err != nil || adapter == nil {
		return nil, fmt.Errorf("gpuapi: no compute-capable adapter available: %w", err)
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		return nil, fmt.Errorf("gpuapi: device creation failed: %w", err)
	}

	return &Context{
		Instance: instance,
		Adapter:  adapter,
		Device:   device,
		Queue:    device.GetQueue(),
	}, nil
}

// Release tears down the context's device and adapter handles. Callers
// must ensure the device is idle (see WaitIdle) before calling Release.
func (c *Context) Release() {
	if c.Device != nil {
		c.Device.Release()
	}
	if c.Adapter != nil {
		c.Adapter.Release()
	}
	if c.Instance != nil {
		c.Instance.Release()
	}
}

// WaitIdle blocks until every previously submitted command on the
// context's queue has completed, the equivalent of vkDeviceWaitIdle.
func (c *Context) WaitIdle() {
	c.Device.Poll(true, nil)
}
