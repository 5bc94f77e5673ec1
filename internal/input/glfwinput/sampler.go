// Package glfwinput samples a glfw window into input snapshots. It is the
// only part of input handling that needs cgo.
package glfwinput

import (
	"zeecraft/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Sampler polls a glfw window and turns its state into an input.Snapshot.
// Physical keys map to logical keys; several physical keys may share one
// logical key.
type Sampler struct {
	keyBindings    map[glfw.Key]input.Key
	buttonBindings map[glfw.MouseButton]input.Button

	// When set, the cursor is warped back to the window centre after every
	// sample so the next delta is measured from there.
	recenter bool
}

// NewSampler creates a sampler with the default bindings.
func NewSampler() *Sampler {
	s := &Sampler{
		keyBindings:    make(map[glfw.Key]input.Key),
		buttonBindings: make(map[glfw.MouseButton]input.Button),
		recenter:       true,
	}

	s.BindKey(glfw.KeyEscape, input.KeyEscape)
	s.BindKey(glfw.Key0, input.Key0)
	s.BindKey(glfw.Key1, input.Key1)
	s.BindKey(glfw.Key2, input.Key2)
	s.BindKey(glfw.Key3, input.Key3)
	s.BindKey(glfw.Key4, input.Key4)
	s.BindKey(glfw.Key5, input.Key5)
	s.BindKey(glfw.Key6, input.Key6)
	s.BindKey(glfw.Key7, input.Key7)
	s.BindKey(glfw.KeyW, input.KeyW)
	s.BindKey(glfw.KeyA, input.KeyA)
	s.BindKey(glfw.KeyS, input.KeyS)
	s.BindKey(glfw.KeyD, input.KeyD)
	s.BindKey(glfw.KeyQ, input.KeyQ)
	s.BindKey(glfw.KeyE, input.KeyE)
	s.BindKey(glfw.KeySpace, input.KeySpace)

	s.BindMouseButton(glfw.MouseButtonLeft, input.ButtonLeft)
	s.BindMouseButton(glfw.MouseButtonRight, input.ButtonRight)

	return s
}

// BindKey binds a physical key to a logical key.
func (s *Sampler) BindKey(key glfw.Key, k input.Key) {
	if k < 0 || k >= input.KeyCount {
		return
	}
	s.keyBindings[key] = k
}

// BindMouseButton binds a mouse button to a bit of the button mask.
func (s *Sampler) BindMouseButton(button glfw.MouseButton, b input.Button) {
	s.buttonBindings[button] = b
}

// SetRecenter toggles cursor warping after each sample.
func (s *Sampler) SetRecenter(on bool) {
	s.recenter = on
}

// Sample reads the current key, button and cursor state of w. Must be
// called on the main thread after glfw.PollEvents.
func (s *Sampler) Sample(w *glfw.Window) input.Snapshot {
	var snap input.Snapshot

	for key, k := range s.keyBindings {
		if w.GetKey(key) == glfw.Press {
			snap.Keys[k] = true
		}
	}
	for button, b := range s.buttonBindings {
		if w.GetMouseButton(button) == glfw.Press {
			snap.Buttons |= b
		}
	}

	width, height := w.GetSize()
	cx, cy := float64(width/2), float64(height/2)
	x, y := w.GetCursorPos()
	snap.DX = int(x - cx)
	snap.DY = int(y - cy)

	if s.recenter {
		w.SetCursorPos(cx, cy)
	}

	return snap
}

// Center warps the cursor to the middle of w, discarding any pending delta.
func Center(w *glfw.Window) {
	width, height := w.GetSize()
	w.SetCursorPos(float64(width/2), float64(height/2))
}
