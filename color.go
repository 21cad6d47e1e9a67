package nucleus

import (
	"image/color"
)

// Color implements color.Color. It stores alpha premultiplied color components in
// the range [0, 1].
//
type Color struct {
	R, G, B, A float32
}

// RGBA implements color.Color.
//
func (c Color) RGBA() (r, g, b, a uint32) {
	return clamp16(c.R), clamp16(c.G), clamp16(c.B), clamp16(c.A)
}

// Vec4 returns the color components as a [4]float32 in RGBA order, the form
// expected by color attributes and uniforms.
//
func (c Color) Vec4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

func clamp16(v float32) uint32 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}

// ColorModel converts any color.Color to a Color; i.e. the result can safely be
// type asserted to a Color.
//
var ColorModel = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	return Color{R: float32(r) / 0xffff, G: float32(g) / 0xffff, B: float32(b) / 0xffff, A: float32(a) / 0xffff}
}
