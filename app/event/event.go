// Package event defines the window events reported by app.Window.
//
package event

import "github.com/db47h/nucleus"

type Interface interface{}

type WindowClose struct{}

type FrameBufferSize struct {
	Width, Height int
}

// KeyUp and KeyDown carry GLFW key codes and modifier bits.
//
type KeyUp struct {
	Key      int
	Scancode int
	Mods     int
}

type KeyDown struct {
	Key      int
	Scancode int
	Mods     int
	Repeat   bool
}

type MouseButton struct {
	Button  int
	Pressed bool
	Mods    int
	Pos     nucleus.Point // framebuffer coordinates
}

type Scroll struct {
	DX, DY float64
}
