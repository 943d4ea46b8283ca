package ui

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/camera"
)

const (
	leftMouseButton = glfw.MouseButtonLeft
)

// Window pumps glfw input events into a Controller. It does not display
// rendered frames and does not read the engine's FrameSlot; published
// frames are only consumed by package ui/remote. It owns the only
// glfw.Window in the process.
type Window struct {
	ctrl   *Controller
	window *glfw.Window

	mousePressed  bool
	lastCursorX   float64
	lastCursorY   float64
}

// NewWindow creates a width x height glfw window driving ctrl.
func NewWindow(ctrl *Controller, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("ui: glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	win, err := glfw.CreateWindow(width, height, "3D Ray Tracer", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("ui: create window failed: %w", err)
	}
	win.MakeContextCurrent()

	w := &Window{ctrl: ctrl, window: win}
	win.SetKeyCallback(w.onKeyEvent)
	win.SetMouseButtonCallback(w.onMouseButtonEvent)
	win.SetCursorPosCallback(w.onCursorPosEvent)
	return w, nil
}

// ShouldClose reports whether the user has requested the window close.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// PollEvents processes pending input events. Call once per UI tick.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) onKeyEvent(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	switch key {
	case glfw.KeyEscape:
		w.window.SetShouldClose(true)
	case glfw.KeyW:
		w.ctrl.Move(camera.MoveForward)
	case glfw.KeyS:
		w.ctrl.Move(camera.MoveBackward)
	case glfw.KeyA:
		w.ctrl.Move(camera.MoveLeft)
	case glfw.KeyD:
		w.ctrl.Move(camera.MoveRight)
	case glfw.KeyQ:
		w.ctrl.Move(camera.MoveDown)
	case glfw.KeyE:
		w.ctrl.Move(camera.MoveUp)
	}
}

func (w *Window) onMouseButtonEvent(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != leftMouseButton {
		return
	}
	w.mousePressed = action == glfw.Press
	if w.mousePressed {
		w.lastCursorX, w.lastCursorY = win.GetCursorPos()
	}
}

func (w *Window) onCursorPosEvent(win *glfw.Window, xPos, yPos float64) {
	if !w.mousePressed {
		return
	}

	deltaX := float32(xPos - w.lastCursorX)
	deltaY := float32(yPos - w.lastCursorY)
	w.lastCursorX, w.lastCursorY = xPos, yPos

	w.ctrl.Look(deltaX, deltaY)
}
