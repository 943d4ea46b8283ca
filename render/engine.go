// Package render owns every GPU API call in the process: device
// acquisition, pipeline and descriptor-set setup, the scene hot-swap
// sequence, and per-frame command recording. It is driven by a single
// dedicated worker goroutine; every other role talks to it only through
// the four public methods below and the published FrameSlot.
package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/openfluke/webgpu/wgpu"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/builtscene"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/camera"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/internal/gpuapi"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/log"
)

var logger = log.New("render engine")

// updateKind tags an entry in the engine's drain-to-last update buffer.
type updateKind int

const (
	updateCamera updateKind = iota
	updateSky
)

// Options configures a new Engine.
type Options struct {
	Width, Height uint32
	ShaderPath    string
	EntryPoint    string
}

// Engine is the render role. It owns the GPU context, pipeline and
// per-frame resources for its entire lifetime; nothing outside this
// package ever touches a gpuapi handle.
type Engine struct {
	opts Options

	ctx      *gpuapi.Context
	pipeline *gpuapi.Pipeline
	image    *gpuapi.StorageImage

	cameraUniform *wgpu.Buffer
	scene         *sceneResources

	Frames *FrameSlot

	sceneQueue chan *builtscene.Package

	mu           sync.Mutex
	updateBuffer map[updateKind]interface{}

	closeChan chan struct{}
	wg        sync.WaitGroup

	running bool
}

// New acquires GPU resources and builds the fixed pipeline, descriptor
// layout and accumulation image described by opts, but does not start the
// render loop; call Start for that.
func New(opts Options) (*Engine, error) {
	ctx, err := gpuapi.Acquire()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGpuResourceFailure, err)
	}

	module, err := gpuapi.LoadShaderModule(ctx, opts.ShaderPath)
	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("%w: %v", ErrShaderLoadFailure, err)
	}

	pipeline, err := gpuapi.CreateComputePipeline(ctx, module, bindingLayout, opts.EntryPoint)
	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("%w: %v", ErrGpuResourceFailure, err)
	}

	image, err := gpuapi.CreateStorageImage(ctx, opts.Width, opts.Height)
	if err != nil {
		pipeline.Release()
		ctx.Release()
		return nil, fmt.Errorf("%w: %v", ErrGpuResourceFailure, err)
	}

	cameraUniform, err := gpuapi.CreateUniformBuffer(ctx, "camera-uniform", cameraUniformSize)
	if err != nil {
		image.Release()
		pipeline.Release()
		ctx.Release()
		return nil, fmt.Errorf("%w: %v", ErrGpuResourceFailure, err)
	}

	e := &Engine{
		opts:          opts,
		ctx:           ctx,
		pipeline:      pipeline,
		image:         image,
		cameraUniform: cameraUniform,
		Frames:        &FrameSlot{},
		sceneQueue:    make(chan *builtscene.Package),
		updateBuffer:  make(map[updateKind]interface{}),
	}

	if err := e.swapScene(builtscene.Empty()); err != nil {
		e.releaseResources()
		return nil, err
	}

	return e, nil
}

// SubmitScene enqueues a freshly built scene package for hot-swap. The
// call blocks until the render loop accepts it, matching the lossless
// FIFO semantics of the scene queue.
func (e *Engine) SubmitScene(pkg *builtscene.Package) {
	e.sceneQueue <- pkg
}

// SubmitCamera records cam as the most recent camera state. Only the
// latest submission before the next frame is honored.
func (e *Engine) SubmitCamera(cam *camera.Camera) {
	e.mu.Lock()
	e.updateBuffer[updateCamera] = cam
	e.mu.Unlock()
}

// SubmitSky records flag as the most recent sky-enabled state. Only the
// latest submission before the next frame is honored.
func (e *Engine) SubmitSky(flag bool) {
	e.mu.Lock()
	e.updateBuffer[updateSky] = flag
	e.mu.Unlock()
}

// Start launches the render loop on a dedicated goroutine.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.closeChan = make(chan struct{})
	e.mu.Unlock()

	ready := make(chan struct{})
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		close(ready)
		e.loop()
	}()
	<-ready
}

// Stop signals the render loop to exit and blocks until it has released
// every GPU resource it owns.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	close(e.closeChan)
	e.mu.Unlock()

	e.wg.Wait()
	e.releaseResources()
}

func (e *Engine) releaseResources() {
	if e.scene != nil {
		e.scene.release()
	}
	if e.cameraUniform != nil {
		e.cameraUniform.Release()
	}
	if e.image != nil {
		e.image.Release()
	}
	if e.pipeline != nil {
		e.pipeline.Release()
	}
	if e.ctx != nil {
		e.ctx.Release()
	}
}

// loop is the render role's main loop: drain any pending scene swap
// (FIFO, one per iteration), commit any pending camera/sky updates
// (drain-to-last), record and submit one frame, publish it, repeat.
func (e *Engine) loop() {
	var currentCam *camera.Camera
	var currentSky bool
	var frameCount uint32

	for {
		select {
		case <-e.closeChan:
			return
		case pkg := <-e.sceneQueue:
			if err := e.swapScene(pkg); err != nil {
				logger.Errorf("scene swap failed: %v", err)
			}
			continue
		default:
		}

		e.mu.Lock()
		if v, ok := e.updateBuffer[updateCamera]; ok {
			currentCam = v.(*camera.Camera)
			delete(e.updateBuffer, updateCamera)
		}
		if v, ok := e.updateBuffer[updateSky]; ok {
			currentSky = v.(bool)
			delete(e.updateBuffer, updateSky)
		}
		e.mu.Unlock()

		if currentCam == nil {
			// No camera has been submitted yet; there is nothing to
			// render. Idle briefly instead of spinning the CPU while
			// still staying responsive to the next scene swap.
			time.Sleep(time.Millisecond)
			continue
		}

		frameCount = currentCam.FrameCount
		uniform := EncodeCameraUniform(currentCam, currentSky)
		gpuapi.WriteBuffer(e.ctx, e.cameraUniform, 0, uniform[:])

		if e.scene != nil && e.scene.bindGroup != nil {
			if err := gpuapi.DispatchCompute(e.ctx, e.pipeline, e.scene.bindGroup, e.image, frameCount, e.opts.Width, e.opts.Height); err != nil {
				logger.Errorf("frame dispatch failed: %v", err)
				continue
			}
		}

		pixels, err := gpuapi.ReadPixels(e.ctx, e.image)
		if err != nil {
			logger.Errorf("frame readback failed: %v", err)
			continue
		}

		e.Frames.Publish(&Frame{Width: e.opts.Width, Height: e.opts.Height, Pixels: pixels})
	}
}

// swapScene performs the device-idle-gated scene hot-swap: wait for the
// device to go idle, destroy the previous scene's buffers, upload the new
// one (falling back to dummy buffers for an empty package), and rebuild
// the bind group against the fresh buffers.
func (e *Engine) swapScene(pkg *builtscene.Package) error {
	e.ctx.WaitIdle()

	if e.scene != nil {
		e.scene.release()
		e.scene = nil
	}

	resources, err := uploadScenePackage(e.ctx, pkg)
	if err != nil {
		return err
	}

	bindGroup, err := gpuapi.CreateBindGroup(e.ctx, e.pipeline.Layout, "scene-bind-group", []gpuapi.BindGroupResource{
		{Binding: BindingImageOut, View: e.image.View},
		{Binding: BindingVertexBuffer, Buffer: resources.vertexBuf},
		{Binding: BindingMaterialBuffer, Buffer: resources.materialBuf},
		{Binding: BindingBvhNodeBuffer, Buffer: resources.bvhBuf},
		{Binding: BindingCameraUniform, Buffer: e.cameraUniform, Size: cameraUniformSize},
		{Binding: BindingImageIn, View: e.image.View},
	})
	if err != nil {
		resources.release()
		return ErrGpuResourceFailure
	}
	resources.bindGroup = bindGroup

	e.scene = resources
	logger.Debugf("scene swapped in: %d triangles", resources.triCount)
	return nil
}
