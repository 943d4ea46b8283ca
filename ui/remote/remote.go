// Package remote streams published frames to browser clients over a
// websocket, as a headless alternative to package ui's glfw window —
// useful for smoke-testing the render engine without a display attached.
package remote

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/log"
	"github.com/this-Demir/3D-Ray-Tracer-Vulkan/render"
)

var logger = log.New("ui remote")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1 << 20,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Sink serves the render engine's published frames as raw RGBA8 binary
// websocket messages to any number of connected clients.
type Sink struct {
	frames *render.FrameSlot

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewSink returns a Sink reading from frames.
func NewSink(frames *render.FrameSlot) *Sink {
	return &Sink{frames: frames, clients: make(map[*websocket.Conn]struct{})}
}

// ServeHTTP upgrades the request to a websocket and registers the
// connection as a frame subscriber until it disconnects.
func (s *Sink) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warningf("websocket upgrade failed: %v", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

// Pump drains the latest published frame and broadcasts it to every
// connected client once per call. cmd.RenderInteractive calls it from its
// own ticker goroutine, separate from the loop that drives Controller.Tick.
func (s *Sink) Pump() {
	frame := s.frames.TakeLatest()
	if frame == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.BinaryMessage, frame.Pixels); err != nil {
			logger.Warningf("dropping client after write error: %v", err)
			conn.Close()
			delete(s.clients, conn)
		}
	}
}
