// Package nucleus holds the types shared by the rendering packages: the
// render Context passed to every component, views and colors.
//
// There is no global state. A Context is created once per GL context and
// threaded through constructors.
//
package nucleus

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// A View maps world coordinates to a viewport in the framebuffer. World
// coordinates are orientated upwards: +Y goes up on screen.
//
type View struct {
	Rect   image.Rectangle // viewport in framebuffer pixels, (0,0) is the top left corner of the framebuffer
	Center Point           // world coordinates of the center of the view
	Scale  float32         // zoom factor
	Angle  float32         // view rotation in radians
}

// Size returns the size of the viewport.
//
func (v *View) Size() image.Point {
	return v.Rect.Size()
}

// ProjectionMatrix returns an orthographic projection matrix for the viewport
// with the origin at its center.
//
func (v *View) ProjectionMatrix() mgl32.Mat4 {
	w, h := float32(v.Rect.Dx())/2, float32(v.Rect.Dy())/2
	return mgl32.Ortho(-w, w, -h, h, -1, 1)
}

// ModelViewMatrix returns the world to view transform.
//
func (v *View) ModelViewMatrix() mgl32.Mat4 {
	s := v.scale()
	return mgl32.Scale3D(s, s, 1).
		Mul4(mgl32.HomogRotate3DZ(-v.Angle)).
		Mul4(mgl32.Translate3D(-v.Center.X, -v.Center.Y, 0))
}

// ScreenToWorld converts framebuffer pixel coordinates to world coordinates.
//
func (v *View) ScreenToWorld(p image.Point) Point {
	s := v.scale()
	c := v.Rect.Min.Add(v.Rect.Max).Div(2)
	pv := mgl32.Vec2{float32(p.X - c.X), float32(c.Y - p.Y)}.Mul(1 / s)
	pv = mgl32.Rotate2D(v.Angle).Mul2x1(pv)
	return Point{pv[0] + v.Center.X, pv[1] + v.Center.Y}
}

func (v *View) scale() float32 {
	if v.Scale == 0 {
		return 1
	}
	return v.Scale
}
