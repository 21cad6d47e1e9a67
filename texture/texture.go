// Package texture wraps GL 2D textures sampled by sprite and glTF shaders.
//
package texture

import (
	"image"
	"image/color"
	"image/draw"

	gogl "github.com/go-gl/gl/v4.1-core/gl"
)

// FilterMode selects how to filter textures.
//
type FilterMode int32

// FilterMode values map directly to their OpenGL equivalents.
//
const (
	Nearest              FilterMode = gogl.NEAREST
	Linear               FilterMode = gogl.LINEAR
	NearestMipmapNearest FilterMode = gogl.NEAREST_MIPMAP_NEAREST
	NearestMipmapLinear  FilterMode = gogl.NEAREST_MIPMAP_LINEAR
	LinearMipmapNearest  FilterMode = gogl.LINEAR_MIPMAP_NEAREST
	LinearMipmapLinear   FilterMode = gogl.LINEAR_MIPMAP_LINEAR
)

func (m FilterMode) mipmap() bool {
	switch m {
	case NearestMipmapNearest, NearestMipmapLinear, LinearMipmapNearest, LinearMipmapLinear:
		return true
	}
	return false
}

// WrapMode selects how textures wrap when texture coordinates get outside of
// the range [0, 1]. Atlas frames should use ClampToEdge, the default.
//
type WrapMode int32

const (
	Repeat         WrapMode = gogl.REPEAT
	MirroredRepeat WrapMode = gogl.MIRRORED_REPEAT
	ClampToEdge    WrapMode = gogl.CLAMP_TO_EDGE
	ClampToBorder  WrapMode = gogl.CLAMP_TO_BORDER
)

// A Texture is a GL 2D RGBA texture.
//
type Texture struct {
	width  int
	height int
	id     uint32
	mipmap bool
	dirty  bool
}

type params struct {
	wrapS, wrapT         WrapMode
	minFilter, magFilter FilterMode
	border               color.Color
}

// Parameter is implemented by functions setting texture parameters. See New.
//
type Parameter interface {
	set(*params)
}

type pfn func(*params)

func (f pfn) set(p *params) {
	f(p)
}

// Wrap sets the GL_TEXTURE_WRAP_S and GL_TEXTURE_WRAP_T texture parameters.
//
func Wrap(wrapS, wrapT WrapMode) Parameter {
	return pfn(func(p *params) {
		p.wrapS = wrapS
		p.wrapT = wrapT
	})
}

// Filter sets the GL_TEXTURE_MIN_FILTER and GL_TEXTURE_MAG_FILTER texture parameters.
//
func Filter(min, mag FilterMode) Parameter {
	return pfn(func(p *params) {
		p.minFilter = min
		p.magFilter = mag
	})
}

// BorderColor sets the GL_TEXTURE_BORDER_COLOR texture parameter.
//
func BorderColor(c color.Color) Parameter {
	return pfn(func(p *params) {
		p.border = c
	})
}

// New returns a new uninitialized texture of the given width and height.
//
func New(width, height int, ps ...Parameter) *Texture {
	return newTexture(width, height, nil, ps...)
}

// FromImage creates a new texture of the same dimensions as the source image.
// Regardless of the source image type, the resulting texture is always in RGBA
// format.
//
func FromImage(src image.Image, ps ...Parameter) *Texture {
	rgba := toRGBA(src)
	sz := rgba.Bounds().Size()
	return newTexture(sz.X, sz.Y, rgba.Pix, ps...)
}

func toRGBA(src image.Image) *image.RGBA {
	sr := src.Bounds()
	if i, ok := src.(*image.RGBA); ok && sr.Min == (image.Point{}) && i.Stride == 4*sr.Dx() {
		return i
	}
	dr := image.Rectangle{Max: sr.Size()}
	dst := image.NewRGBA(dr)
	draw.Draw(dst, dr, src, sr.Min, draw.Src)
	return dst
}

func newTexture(width, height int, pix []uint8, ps ...Parameter) *Texture {
	t := &Texture{width: width, height: height}
	gogl.GenTextures(1, &t.id)
	gogl.BindTexture(gogl.TEXTURE_2D, t.id)

	t.setParams(ps...)

	gogl.PixelStorei(gogl.UNPACK_ALIGNMENT, 4)
	if len(pix) > 0 {
		gogl.TexImage2D(gogl.TEXTURE_2D, 0, gogl.RGBA, int32(width), int32(height), 0, gogl.RGBA, gogl.UNSIGNED_BYTE, gogl.Ptr(pix))
	} else {
		gogl.TexImage2D(gogl.TEXTURE_2D, 0, gogl.RGBA, int32(width), int32(height), 0, gogl.RGBA, gogl.UNSIGNED_BYTE, nil)
	}
	if t.dirty && pix != nil {
		gogl.GenerateMipmap(gogl.TEXTURE_2D)
		t.dirty = false
	}
	return t
}

// Parameters sets the given texture parameters.
//
func (t *Texture) Parameters(ps ...Parameter) {
	if len(ps) == 0 {
		return
	}
	gogl.BindTexture(gogl.TEXTURE_2D, t.id)
	t.setParams(ps...)
}

func (t *Texture) setParams(ps ...Parameter) {
	var p params
	for _, o := range ps {
		o.set(&p)
	}
	if p.wrapS != 0 {
		gogl.TexParameteri(gogl.TEXTURE_2D, gogl.TEXTURE_WRAP_S, int32(p.wrapS))
	}
	if p.wrapT != 0 {
		gogl.TexParameteri(gogl.TEXTURE_2D, gogl.TEXTURE_WRAP_T, int32(p.wrapT))
	}
	if p.minFilter != 0 {
		gogl.TexParameteri(gogl.TEXTURE_2D, gogl.TEXTURE_MIN_FILTER, int32(p.minFilter))
		t.mipmap = p.minFilter.mipmap()
		t.dirty = t.mipmap
	}
	if p.magFilter != 0 {
		gogl.TexParameteri(gogl.TEXTURE_2D, gogl.TEXTURE_MAG_FILTER, int32(p.magFilter))
	}
	if p.border != nil {
		c := color.NRGBAModel.Convert(p.border).(color.NRGBA)
		bc := [...]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
		gogl.TexParameterfv(gogl.TEXTURE_2D, gogl.TEXTURE_BORDER_COLOR, &bc[0])
	}
}

// Bind binds the texture to the given texture unit and regenerates mipmaps if
// needed. The unit must match the sampler value uploaded for the shader's
// texture uniform.
//
func (t *Texture) Bind(unit int) {
	gogl.ActiveTexture(gogl.TEXTURE0 + uint32(unit))
	gogl.BindTexture(gogl.TEXTURE_2D, t.id)
	if t.dirty {
		gogl.GenerateMipmap(gogl.TEXTURE_2D)
		t.dirty = false
	}
}

// SetSubImage draws src to the texture. It works identically to draw.Draw with op set to draw.Src.
//
func (t *Texture) SetSubImage(dr image.Rectangle, src image.Image, sp image.Point) {
	sz := dr.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	r := image.Rectangle{Max: sz}
	dst := image.NewRGBA(r)
	draw.Draw(dst, r, src, sp, draw.Src)

	gogl.BindTexture(gogl.TEXTURE_2D, t.id)
	gogl.PixelStorei(gogl.UNPACK_ALIGNMENT, 4)
	gogl.TexSubImage2D(gogl.TEXTURE_2D, 0, int32(dr.Min.X), int32(dr.Min.Y), int32(sz.X), int32(sz.Y), gogl.RGBA, gogl.UNSIGNED_BYTE, gogl.Ptr(dst.Pix))
	if t.mipmap {
		t.dirty = true
	}
}

// Size returns the size of the texture.
//
func (t *Texture) Size() image.Point {
	return image.Point{t.width, t.height}
}

// ID returns the GL name of the texture.
//
func (t *Texture) ID() uint32 {
	return t.id
}

func (t *Texture) Delete() {
	gogl.DeleteTextures(1, &t.id)
}
