package nucleus

import (
	"image"
)

// FrameBuffer represents a render target framebuffer.
//
type FrameBuffer interface {
	Size() image.Point
	View() *View
}

// FbToGL converts framebuffer pixel coordinates to normalized device
// coordinates in range [-1, 1].
//
func FbToGL(fb FrameBuffer, p Point) Point {
	sz := fb.Size()
	return Point{
		X: 2*p.X/float32(sz.X) - 1,
		Y: 1 - 2*p.Y/float32(sz.Y),
	}
}

// GLToFb converts normalized device coordinates to framebuffer pixel
// coordinates.
//
func GLToFb(fb FrameBuffer, p Point) Point {
	sz := fb.Size()
	return Point{(p.X + 1) * float32(sz.X) / 2, (1 - p.Y) * float32(sz.Y) / 2}
}

// A Screen is the FrameBuffer of a window's default framebuffer. Its size
// must be kept in sync with the window framebuffer size.
//
type Screen struct {
	v View
}

// NewScreen returns a new screen of the requested size, with a full screen
// view centered on the world origin.
//
func NewScreen(sz image.Point) *Screen {
	return &Screen{v: View{Rect: image.Rectangle{Max: sz}, Scale: 1}}
}

// SetSize sets the Screen size to sz. The view rectangle is resized
// accordingly.
//
func (s *Screen) SetSize(sz image.Point) {
	s.v.Rect.Max = s.v.Rect.Min.Add(sz)
}

// Size returns the screen size.
//
func (s *Screen) Size() image.Point {
	return s.v.Size()
}

// View returns the full screen view. Client code is free to adjust its
// Center, Angle and Scale.
//
func (s *Screen) View() *View {
	return &s.v
}
