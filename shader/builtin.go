package shader

import (
	"github.com/db47h/nucleus"
	"github.com/db47h/nucleus/atlas"
	"go.uber.org/zap"
)

func matrices() []Mapping {
	return []Mapping{
		{Name: "uMVMatrix", Property: ModelView, Class: Uniform, Offset: 0, Size: 16},
		{Name: "uProjectionMatrix", Property: Projection, Class: Uniform, Offset: 16, Size: 16},
	}
}

// SpriteCategory returns the category of sprite programs. Per sprite data is
// interleaved and laid out for quad expansion; quad corners and base texture
// coordinates are in the static buffer. Atlas UVs are read from the UVData
// uniform block when available.
//
func SpriteCategory() *Category {
	return &Category{
		Name: "sprite",
		Mappings: append([]Mapping{
			{Name: "aTranslate", Property: Translate, Class: Attribute, Buffer: Interleaved, Offset: 0, Size: 3},
			{Name: "aRotate", Property: Rotate, Class: Attribute, Buffer: Interleaved, Offset: 3, Size: 3},
			{Name: "aScale", Property: Scale, Class: Attribute, Buffer: Interleaved, Offset: 6, Size: 3},
			{Name: "aColor", Property: Albedo, Class: Attribute, Buffer: Interleaved, Offset: 9, Size: 4},
			{Name: "aFrameData", Property: Frame, Class: Attribute, Buffer: Interleaved, Offset: 13, Size: 2},
			{Name: "aVertex", Property: Vertex, Class: Attribute, Buffer: StaticBuffer, Offset: 0, Size: 3},
			{Name: "aTexCoord", Property: TexCoord, Class: Attribute, Buffer: StaticBuffer, Offset: 3, Size: 2},
		}, append(matrices(),
			Mapping{Name: "uScreenSize", Property: ScreenSize, Class: Uniform, Offset: 32, Size: 2},
			Mapping{Name: "uTextureData", Property: TextureData, Class: Uniform, Offset: 34, Size: 4},
			Mapping{Name: "uTexture0", Property: Texture0, Class: Uniform, Offset: 0, Size: 1},
			Mapping{Name: "uFrames", Property: UVData, Class: UniformBlock, Buffer: BlockBacked, Offset: 0},
		)...),
		SizePerVertex: [NumBufferIndex]int{15, 5, 0},
	}
}

// TranslateCategory returns the category of programs drawing textured quads
// that only move and change color.
//
func TranslateCategory() *Category {
	return &Category{
		Name: "translate",
		Mappings: append([]Mapping{
			{Name: "aVertex", Property: Vertex, Class: Attribute, Buffer: StaticBuffer, Offset: 0, Size: 3},
			{Name: "aTexCoord", Property: TexCoord, Class: Attribute, Buffer: StaticBuffer, Offset: 3, Size: 2},
			{Name: "aTranslate", Property: Translate, Class: Attribute, Buffer: Interleaved, Offset: 0, Size: 3},
			{Name: "aColor", Property: Albedo, Class: Attribute, Buffer: Interleaved, Offset: 3, Size: 4},
		}, append(matrices(),
			Mapping{Name: "uTexture0", Property: Texture0, Class: Uniform, Offset: 0, Size: 1},
		)...),
		SizePerVertex: [NumBufferIndex]int{7, 5, 0},
	}
}

// LineCategory returns the category of colored line programs.
//
func LineCategory() *Category {
	return &Category{
		Name: "line",
		Mappings: append([]Mapping{
			{Name: "aVertex", Property: Vertex, Class: Attribute, Buffer: Interleaved, Offset: 0, Size: 3},
			{Name: "aColor", Property: Albedo, Class: Attribute, Buffer: Interleaved, Offset: 3, Size: 4},
		}, matrices()...),
		SizePerVertex: [NumBufferIndex]int{7, 0, 0},
	}
}

// GLTFCategory returns the category of programs drawing glTF mesh
// primitives.
//
func GLTFCategory() *Category {
	return &Category{
		Name: "gltf",
		Mappings: append([]Mapping{
			{Name: "aVertex", Property: Vertex, Class: Attribute, Buffer: StaticBuffer, Offset: 0, Size: 3},
			{Name: "aNormal", Property: Normal, Class: Attribute, Buffer: StaticBuffer, Offset: 3, Size: 3},
			{Name: "aTexCoord", Property: TexCoord, Class: Attribute, Buffer: StaticBuffer, Offset: 6, Size: 2},
		}, append(matrices(),
			Mapping{Name: "uAlbedo", Property: Albedo, Class: Uniform, Offset: 32, Size: 4},
			Mapping{Name: "uAmbient", Property: Ambient, Class: Uniform, Offset: 36, Size: 4},
			Mapping{Name: "uLight0", Property: Light0, Class: Uniform, Offset: 40, Size: 8},
			Mapping{Name: "uPBRData", Property: PBRData, Class: Uniform, Offset: 48, Size: 4},
			Mapping{Name: "uViewPos", Property: ViewPos, Class: Uniform, Offset: 52, Size: 3},
			Mapping{Name: "uTexture0", Property: Texture0, Class: Uniform, Offset: 0, Size: 1},
		)...),
		SizePerVertex: [NumBufferIndex]int{0, 8, 0},
		Passes:        []Pass{PassShadow1},
	}
}

// SpriteHooks returns the hooks of sprite programs: the atlas frames are
// copied to the UVData block and the TextureData uniform is set to the
// frame count.
//
func SpriteHooks(ctx *nucleus.Context, a *atlas.Atlas) Hooks {
	return Hooks{
		Init: func(u *Uniforms) {
			if a == nil {
				return
			}
			u.Set(TextureData, float32(a.FrameCount()))
			if d := u.Slice(UVData); d != nil {
				n := a.CopyTo(d)
				ctx.Log.Debug("atlas uploaded to uniform block", zap.Int("frames", n))
			}
		},
	}
}

// GLTFHooks returns the hooks of glTF programs. The global light of ctx is
// uploaded on every update.
//
func GLTFHooks(ctx *nucleus.Context) Hooks {
	return Hooks{
		Init: func(u *Uniforms) {
			u.Set(Ambient, 0.2, 0.2, 0.2, 1)
			u.Set(Albedo, 1, 1, 1, 1)
		},
		Update: func(u *Uniforms) {
			l := ctx.Light.Values()
			u.Set(Light0, l[:]...)
		},
	}
}
