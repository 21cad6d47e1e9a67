package shader

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func attr(name string, typ DataType, loc int32) Variable {
	return Variable{Name: name, Class: Attribute, Type: typ, Count: 1, Location: loc, Block: NoBlock}
}

func unif(name string, typ DataType, count int, loc int32) Variable {
	return Variable{Name: name, Class: Uniform, Type: typ, Count: count, Location: loc, Block: NoBlock}
}

func member(name string, typ DataType, count int, block int) Variable {
	return Variable{Name: name, Class: Uniform, Type: typ, Count: count, Location: -1, Block: block}
}

func spriteInfo() ProgramInfo {
	return ProgramInfo{
		Attributes: []Variable{
			attr("aTranslate", FloatVec3, 0),
			attr("aRotate", FloatVec3, 1),
			attr("aScale", FloatVec3, 2),
			attr("aColor", FloatVec4, 3),
			attr("aFrameData", FloatVec2, 4),
			attr("aVertex", FloatVec3, 5),
			attr("aTexCoord", FloatVec2, 6),
		},
		Uniforms: []Variable{
			unif("uMVMatrix", FloatMat4, 1, 0),
			unif("uProjectionMatrix", FloatMat4, 1, 1),
			unif("uScreenSize", FloatVec2, 1, 2),
			unif("uTextureData", FloatVec4, 1, 3),
			unif("uTexture0", Sampler2D, 1, 4),
			member("uFrames[0]", FloatVec4, 16, 0),
		},
		Blocks: []Block{{Index: 0, Name: "UVData", Binding: 0, Buffer: 7}},
	}
}

func resolved(t *testing.T, cat *Category, vs []Variable, mode OffsetMode) *Table {
	t.Helper()
	tbl, err := Resolve(cat, vs, Logger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	require.NoError(t, tbl.AssignOffsets(mode))
	return tbl
}

func TestVariableName(t *testing.T) {
	for in, want := range map[string]string{
		"aVertex":      "aVertex",
		"uFrames[0]":   "uFrames",
		"uLight.color": "uLight",
		"uL[2].pos":    "uL",
	} {
		assert.Equal(t, want, VariableName(in), in)
	}
}

func TestResolve_unmapped(t *testing.T) {
	_, err := Resolve(SpriteCategory(), []Variable{attr("aTranslate", FloatVec3, 0), attr("aBogus", Float, 1)})
	var ue *UnmappedVariableError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "sprite", ue.Category)
	assert.Equal(t, "aBogus", ue.Name)
	assert.Contains(t, err.Error(), "aBogus")

	// attributes and uniforms are matched in separate groups
	_, err = Resolve(SpriteCategory(), []Variable{unif("aTranslate", FloatVec3, 1, 0)})
	assert.True(t, errors.As(err, &ue))
}

func TestResolve_sizeMismatch(t *testing.T) {
	_, err := Resolve(SpriteCategory(), []Variable{attr("aColor", FloatVec3, 0)})
	var se *SizeMismatchError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "aColor", se.Name)
	assert.Equal(t, 4, se.Declared)
	assert.Equal(t, 3, se.Compiled)
}

func TestResolve_inactiveDropped(t *testing.T) {
	tbl := resolved(t, SpriteCategory(), []Variable{attr("aColor", FloatVec4, 3)}, Dynamic)
	assert.Len(t, tbl.Variables(), 1)
	assert.Nil(t, tbl.Attribute("aTranslate"))
	assert.Equal(t, NoOffset, tbl.PropertyOffset(Frame))
	assert.Equal(t, 0, tbl.PropertyOffset(Albedo))
}

func TestResolve_blockMemberWins(t *testing.T) {
	vs := []Variable{
		unif("uFrames[0]", FloatVec4, 16, 3),
		member("uFrames[0]", FloatVec4, 16, 0),
		unif("uFrames", FloatVec4, 16, 3),
	}
	tbl := resolved(t, SpriteCategory(), vs, Dynamic)
	require.Len(t, tbl.Variables(), 1)
	v := tbl.Uniform("uFrames")
	require.NotNil(t, v)
	assert.Equal(t, 0, v.Block)
	assert.Equal(t, UniformBlock, v.Class)
	assert.Equal(t, 64, tbl.BlockSize(0))
	assert.Equal(t, 0, tbl.UniformSize())
}

func TestResolve_declarationOrder(t *testing.T) {
	info := spriteInfo()
	vs := info.Variables()
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
	tbl := resolved(t, SpriteCategory(), vs, Dynamic)
	var names []string
	for _, v := range tbl.Attributes() {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"aTranslate", "aRotate", "aScale", "aColor", "aFrameData", "aVertex", "aTexCoord"}, names)
	assert.Equal(t, 13, tbl.PropertyOffset(Frame))
}

func TestAssignOffsets_twice(t *testing.T) {
	tbl := resolved(t, SpriteCategory(), spriteInfo().Variables(), Dynamic)
	assert.Equal(t, ErrOffsetsAssigned, tbl.AssignOffsets(Static))
	assert.Equal(t, Dynamic, tbl.Mode())
}

func TestAssignOffsets_dynamicScenario(t *testing.T) {
	cat := &Category{
		Name: "scenario",
		Mappings: []Mapping{
			{Name: "aTranslate", Property: Translate, Class: Attribute, Offset: 20, Size: 3},
			{Name: "aColor", Property: Albedo, Class: Attribute, Offset: 40, Size: 4},
		},
	}
	tbl := resolved(t, cat, []Variable{attr("aColor", FloatVec4, 1), attr("aTranslate", FloatVec3, 0)}, Dynamic)
	assert.Equal(t, 0, tbl.PropertyOffset(Translate))
	assert.Equal(t, 3, tbl.PropertyOffset(Albedo))
	assert.Equal(t, 7, NewLayout(tbl).VertexStride(Interleaved))
}

func TestAssignOffsets_packing(t *testing.T) {
	active := []Variable{
		attr("aTranslate", FloatVec3, 0),
		attr("aColor", FloatVec4, 1),
		attr("aFrameData", FloatVec2, 2),
		attr("aVertex", FloatVec3, 3),
	}
	tests := []struct {
		mode    OffsetMode
		offsets map[string]int
		stride  [NumBufferIndex]int
	}{
		{Dynamic, map[string]int{"aTranslate": 0, "aColor": 3, "aFrameData": 7, "aVertex": 0}, [NumBufferIndex]int{9, 3, 0}},
		{Static, map[string]int{"aTranslate": 0, "aColor": 9, "aFrameData": 13, "aVertex": 0}, [NumBufferIndex]int{15, 5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			tbl := resolved(t, SpriteCategory(), active, tt.mode)
			for name, off := range tt.offsets {
				assert.Equal(t, off, tbl.Attribute(name).Offset, name)
			}
			l := NewLayout(tbl)
			for b := 0; b < NumBufferIndex; b++ {
				assert.Equal(t, tt.stride[b], l.VertexStride(BufferIndex(b)), BufferIndex(b).String())
			}
		})
	}
}

func TestAssignOffsets_tight(t *testing.T) {
	tbl := resolved(t, SpriteCategory(), spriteInfo().Attributes, Dynamic)
	l := NewLayout(tbl)
	for b := 0; b < NumBufferIndex; b++ {
		used := make([]bool, l.VertexStride(BufferIndex(b)))
		sum := 0
		for _, v := range l.Variables(BufferIndex(b)) {
			sum += v.Size()
			for i := v.Offset; i < v.Offset+v.Size(); i++ {
				require.False(t, used[i], "overlap at %d in %v", i, BufferIndex(b))
				used[i] = true
			}
		}
		assert.Equal(t, sum, l.VertexStride(BufferIndex(b)))
	}
}

func TestAssignOffsets_samplers(t *testing.T) {
	cat := &Category{
		Name: "samplers",
		Mappings: []Mapping{
			{Name: "uA", Property: Ambient, Class: Uniform, Size: 4},
			{Name: "uTex", Property: Texture0, Class: Uniform},
			{Name: "uShadow", Class: Uniform},
			{Name: "uB", Property: ViewPos, Class: Uniform, Size: 3},
		},
	}
	tbl := resolved(t, cat, []Variable{
		unif("uA", FloatVec4, 1, 0),
		unif("uTex", Sampler2D, 2, 1),
		unif("uShadow", Sampler2DShadow, 1, 2),
		unif("uB", FloatVec3, 1, 3),
	}, Dynamic)
	assert.Equal(t, 0, tbl.Uniform("uA").Offset)
	assert.Equal(t, 4, tbl.Uniform("uB").Offset)
	assert.Equal(t, 0, tbl.Uniform("uTex").Offset)
	assert.Equal(t, 2, tbl.Uniform("uShadow").Offset)
	assert.Equal(t, 7, tbl.UniformSize())
	assert.Equal(t, 3, tbl.SamplerSize())
	assert.Len(t, tbl.Samplers(), 2)
}

func TestLayout_unusedBuffer(t *testing.T) {
	tbl := resolved(t, LineCategory(), []Variable{attr("aVertex", FloatVec3, 0), attr("aColor", FloatVec4, 1)}, Static)
	l := NewLayout(tbl)
	assert.Equal(t, 7, l.VertexStride(Interleaved))
	assert.Equal(t, 0, l.VertexStride(StaticBuffer))
	assert.Equal(t, 1, l.BufferCount())
	bufs := l.CreateAttributeBuffers(8)
	assert.Len(t, bufs[Interleaved], 56)
	assert.Nil(t, bufs[StaticBuffer])
	assert.Nil(t, bufs[BlockBacked])
	assert.Equal(t, 3, l.PropertyOffset(Interleaved, Albedo))
	assert.Equal(t, NoOffset, l.PropertyOffset(StaticBuffer, Albedo))
	assert.Contains(t, tbl.String(), "aColor")
}

type call struct {
	fn     string
	loc    int32
	n      int32
	floats []float32
	ints   []int32
	args   [3]uint32
}

type recorder struct {
	calls []call
}

func (r *recorder) f(fn string, loc, n int32, v []float32) {
	r.calls = append(r.calls, call{fn: fn, loc: loc, n: n, floats: append([]float32(nil), v...)})
}

func (r *recorder) Uniform1fv(l, n int32, v []float32)       { r.f("1fv", l, n, v) }
func (r *recorder) Uniform2fv(l, n int32, v []float32)       { r.f("2fv", l, n, v) }
func (r *recorder) Uniform3fv(l, n int32, v []float32)       { r.f("3fv", l, n, v) }
func (r *recorder) Uniform4fv(l, n int32, v []float32)       { r.f("4fv", l, n, v) }
func (r *recorder) UniformMatrix2fv(l, n int32, v []float32) { r.f("m2fv", l, n, v) }
func (r *recorder) UniformMatrix3fv(l, n int32, v []float32) { r.f("m3fv", l, n, v) }
func (r *recorder) UniformMatrix4fv(l, n int32, v []float32) { r.f("m4fv", l, n, v) }
func (r *recorder) Uniform1iv(l, n int32, v []int32) {
	r.calls = append(r.calls, call{fn: "1iv", loc: l, n: n, ints: append([]int32(nil), v...)})
}
func (r *recorder) UniformBlockBinding(p, idx, binding uint32) {
	r.calls = append(r.calls, call{fn: "blockBinding", args: [3]uint32{p, idx, binding}})
}
func (r *recorder) UniformBlockData(buffer uint32, data []float32) {
	r.calls = append(r.calls, call{fn: "blockData", args: [3]uint32{buffer}, floats: append([]float32(nil), data...)})
}
func (r *recorder) BindBufferBase(binding, buffer uint32) {
	r.calls = append(r.calls, call{fn: "bindBase", args: [3]uint32{binding, buffer}})
}

func (r *recorder) fns() []string {
	var s []string
	for _, c := range r.calls {
		s = append(s, c.fn)
	}
	return s
}

func TestUniforms_Update(t *testing.T) {
	updates := 0
	p, err := Link(42, SpriteCategory(), spriteInfo(),
		WithHooks(Hooks{Update: func(u *Uniforms) {
			updates++
			u.Set(ScreenSize, 640, 480)
		}}))
	require.NoError(t, err)
	u := p.Uniforms()
	assert.Len(t, u.Data(), 38)
	assert.Equal(t, []int32{0}, u.Samplers())
	assert.Len(t, u.BlockData(0), 64)

	mv := mgl32.Translate3D(1, 2, 3)
	proj := mgl32.Ortho2D(0, 640, 0, 480)
	u.SetMatrices(mv, proj)

	var r recorder
	require.NoError(t, u.Update(&r))
	assert.Equal(t, 1, updates)
	assert.Equal(t, []string{"m4fv", "m4fv", "2fv", "4fv", "1iv", "blockBinding", "blockData", "bindBase"}, r.fns())
	assert.Equal(t, mv[:], r.calls[0].floats)
	assert.Equal(t, proj[:], r.calls[1].floats)
	assert.Equal(t, int32(1), r.calls[1].loc)
	assert.Equal(t, []float32{640, 480}, r.calls[2].floats)
	assert.Equal(t, [3]uint32{42, 0, 0}, r.calls[5].args)
	assert.Equal(t, uint32(7), r.calls[6].args[0])
	assert.Equal(t, [3]uint32{0, 7, 0}, r.calls[7].args)

	r.calls = nil
	require.NoError(t, u.Update(&r))
	assert.Equal(t, []string{"m4fv", "m4fv", "2fv", "4fv", "1iv", "blockData", "bindBase"}, r.fns())
}

type nopUploader struct{}

func (nopUploader) Uniform1fv(int32, int32, []float32)         {}
func (nopUploader) Uniform2fv(int32, int32, []float32)         {}
func (nopUploader) Uniform3fv(int32, int32, []float32)         {}
func (nopUploader) Uniform4fv(int32, int32, []float32)         {}
func (nopUploader) UniformMatrix2fv(int32, int32, []float32)   {}
func (nopUploader) UniformMatrix3fv(int32, int32, []float32)   {}
func (nopUploader) UniformMatrix4fv(int32, int32, []float32)   {}
func (nopUploader) Uniform1iv(int32, int32, []int32)           {}
func (nopUploader) UniformBlockBinding(uint32, uint32, uint32) {}
func (nopUploader) UniformBlockData(uint32, []float32)         {}
func (nopUploader) BindBufferBase(uint32, uint32)              {}

func TestUniforms_frameUpdateAllocs(t *testing.T) {
	p, err := Link(42, SpriteCategory(), spriteInfo())
	require.NoError(t, err)
	u := p.Uniforms()
	var up Uploader = nopUploader{}
	require.NoError(t, u.Update(up))

	mv := mgl32.Translate3D(1, 2, 3)
	proj := mgl32.Ortho2D(0, 640, 0, 480)
	allocs := testing.AllocsPerRun(100, func() {
		u.SetMatrices(mv, proj)
		u.Set(ScreenSize, 640, 480)
		_ = u.Slice(TextureData)
		if err := u.Update(up); err != nil {
			panic(err)
		}
	})
	assert.Zero(t, allocs)
	assert.Equal(t, []float32{640, 480}, u.Slice(ScreenSize))
}

func TestUniforms_unknownProperty(t *testing.T) {
	p, err := Link(42, SpriteCategory(), spriteInfo())
	require.NoError(t, err)
	u := p.Uniforms()
	assert.NotPanics(t, func() {
		u.Set(Property(-1), 1)
		u.Set(Property(1000), 1)
	})
	assert.Nil(t, u.Slice(Property(1000)))
	assert.Nil(t, u.Slice(NoProperty))
}

func TestUniforms_unsupportedType(t *testing.T) {
	cat := &Category{
		Name: "odd",
		Mappings: []Mapping{
			{Name: "uA", Property: Ambient, Class: Uniform},
			{Name: "uFlags", Class: Uniform},
			{Name: "uB", Property: ViewPos, Class: Uniform},
		},
	}
	p, err := Link(1, cat, ProgramInfo{Uniforms: []Variable{
		unif("uA", Float, 1, 0),
		unif("uFlags", DataType(0x1405), 1, 1),
		unif("uB", Float, 1, 2),
	}})
	require.NoError(t, err)
	var r recorder
	err = p.Uniforms().Update(&r)
	var ue *UnsupportedUniformTypeError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "uFlags", ue.Name)
	assert.Equal(t, "odd", ue.Category)
	assert.Equal(t, []string{"1fv"}, r.fns())
}

func TestUniforms_Set(t *testing.T) {
	p, err := Link(1, GLTFCategory(), ProgramInfo{Uniforms: []Variable{
		unif("uAmbient", FloatVec4, 1, 0),
		unif("uLight0[0]", FloatVec4, 2, 1),
		unif("uTexture0", Sampler2D, 1, 2),
		unif("uCount", Int, 1, 3),
	}})
	require.Error(t, err)
	assert.Nil(t, p)

	p, err = Link(1, GLTFCategory(), ProgramInfo{Uniforms: []Variable{
		unif("uAmbient", FloatVec4, 1, 0),
		unif("uLight0[0]", FloatVec4, 2, 1),
		unif("uTexture0", Sampler2D, 1, 2),
	}}, Offsets(Static))
	require.NoError(t, err)
	u := p.Uniforms()
	u.Set(Ambient, 1, 2, 3, 4, 5, 6)
	u.Set(Emissive, 9) // not active
	u.SetSampler(Texture0, 3)
	assert.Equal(t, []float32{1, 2, 3, 4}, u.Slice(Ambient))
	assert.Equal(t, []float32{1, 2, 3, 4}, u.Data()[36:40])
	assert.Len(t, u.Data(), 48)
	assert.Equal(t, []int32{3}, u.Samplers())
	assert.Nil(t, u.Slice(Texture0))
	assert.Nil(t, u.Slice(Emissive))
}

func TestLink_hooks(t *testing.T) {
	var initialized *Uniforms
	p, err := Link(3, LineCategory(), ProgramInfo{
		Attributes: []Variable{attr("aVertex", FloatVec3, 0), attr("aColor", FloatVec4, 1)},
		Uniforms:   []Variable{unif("uMVMatrix", FloatMat4, 1, 0)},
	}, WithHooks(Hooks{Init: func(u *Uniforms) { initialized = u }}))
	require.NoError(t, err)
	assert.Same(t, p.Uniforms(), initialized)
	assert.Same(t, p, initialized.Program())
	assert.Equal(t, "line", p.Category().Name)
	assert.Equal(t, 7, p.Layout().VertexStride(Interleaved))
	assert.Equal(t, uint32(3), p.Handle)
}

func TestLink_unknownBlock(t *testing.T) {
	_, err := Link(1, SpriteCategory(), ProgramInfo{Uniforms: []Variable{member("uFrames[0]", FloatVec4, 4, 2)}})
	assert.Error(t, err)
}

func TestLink_blockLayout(t *testing.T) {
	info := spriteInfo()
	info.Uniforms[5].Member = &MemberLayout{Offset: 0, ArrayStride: 16}
	_, err := Link(1, SpriteCategory(), info)
	require.NoError(t, err)

	var le *BlockLayoutError
	info = spriteInfo()
	info.Uniforms[5].Member = &MemberLayout{Offset: 0, ArrayStride: 32}
	_, err = Link(1, SpriteCategory(), info)
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "array stride", le.Field)
	assert.Equal(t, 16, le.Packed)
	assert.Equal(t, 32, le.Reported)
	assert.Equal(t, "uFrames", le.Name)

	info = spriteInfo()
	info.Uniforms[5].Member = &MemberLayout{Offset: 16, ArrayStride: 16}
	_, err = Link(1, SpriteCategory(), info)
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "offset", le.Field)

	// std140 pads mat3 columns to vec4
	cat := &Category{
		Name:     "bones",
		Mappings: []Mapping{{Name: "uBones", Property: ModelView, Class: UniformBlock, Buffer: BlockBacked}},
	}
	m3 := member("uBones[0]", FloatMat3, 2, 0)
	m3.Member = &MemberLayout{Offset: 0, ArrayStride: 36, MatrixStride: 16}
	_, err = Link(1, cat, ProgramInfo{
		Uniforms: []Variable{m3},
		Blocks:   []Block{{Index: 0, Name: "Bones"}},
	}, Offsets(Dynamic))
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "matrix stride", le.Field)
	assert.Equal(t, 12, le.Packed)
	assert.Contains(t, le.Error(), "bones")

	m4 := member("uBones[0]", FloatMat4, 2, 0)
	m4.Member = &MemberLayout{Offset: 0, ArrayStride: 64, MatrixStride: 16}
	_, err = Link(1, cat, ProgramInfo{
		Uniforms: []Variable{m4},
		Blocks:   []Block{{Index: 0, Name: "Bones"}},
	}, Offsets(Dynamic))
	assert.NoError(t, err)
}

func TestSelectVariant(t *testing.T) {
	cat := GLTFCategory()
	for _, pass := range []Pass{PassUndefined, PassAll, PassMain} {
		v, err := SelectVariant(cat, pass, PBR)
		require.NoError(t, err)
		assert.Equal(t, Variant{Pass: PassMain, Shading: PBR, Category: "gltf"}, v)
		assert.Equal(t, "pbrgltfvertex", v.SourceName(VertexStage))
	}
	v, err := SelectVariant(cat, PassShadow1, Flat)
	require.NoError(t, err)
	assert.Equal(t, "shadow1flatgltffragment", v.SourceName(FragmentStage))

	_, err = SelectVariant(cat, PassShadow2, Flat)
	assert.Error(t, err)

	v, err = SelectVariant(SpriteCategory(), PassMain, Textured)
	require.NoError(t, err)
	assert.Equal(t, "texturedspritevertex", v.SourceName(VertexStage))
	assert.Equal(t, "texturedsprite", v.Key())
}

const categoryYAML = `
name: custom
sizePerVertex: [7, 0, 0]
passes: [shadow1]
mappings:
  - {name: aPos, property: translate, class: attribute, buffer: interleaved, offset: 0, size: 3}
  - {name: aColor, property: albedo, class: attribute, buffer: interleaved, offset: 3, size: 4}
  - {name: uMVMatrix, property: modelView, class: uniform, size: 16}
  - {name: uFrames, property: uvData, class: uniformBlock, buffer: block}
`

func TestLoadCategory(t *testing.T) {
	cat, err := LoadCategory(strings.NewReader(categoryYAML))
	require.NoError(t, err)
	assert.Equal(t, "custom", cat.Name)
	assert.Equal(t, [NumBufferIndex]int{7, 0, 0}, cat.SizePerVertex)
	assert.Equal(t, []Pass{PassShadow1}, cat.Passes)
	require.Len(t, cat.Mappings, 4)
	assert.Equal(t, Mapping{Name: "aColor", Property: Albedo, Class: Attribute, Buffer: Interleaved, Offset: 3, Size: 4}, cat.Mappings[1])
	assert.Equal(t, UniformBlock, cat.Mappings[3].Class)
	assert.Equal(t, BlockBacked, cat.Mappings[3].Buffer)
	assert.NotNil(t, cat.Mapping("uFrames", Uniform))
	assert.Nil(t, cat.Mapping("uFrames", Attribute))

	_, err = LoadCategory(strings.NewReader("name: x\nmappings:\n  - {name: a, property: bogus}\n"))
	assert.Error(t, err)
	_, err = LoadCategory(strings.NewReader("mappings: []\n"))
	assert.Error(t, err)
	_, err = LoadCategory(strings.NewReader("name: x\nmappings:\n  - {name: a, class: attribute}\n  - {name: a, class: attribute}\n"))
	assert.Error(t, err)
}

func TestDataType(t *testing.T) {
	assert.Equal(t, 16, FloatMat4.Components())
	assert.Equal(t, 9, FloatMat3.Components())
	assert.Equal(t, 1, SamplerCubeShadow.Components())
	assert.True(t, Sampler2DArray.IsSampler())
	assert.False(t, FloatVec4.IsSampler())
	assert.Equal(t, 0, DataType(0x1405).Components())
	assert.Equal(t, "DataType(0x1405)", DataType(0x1405).String())
	assert.Equal(t, "sampler2D", Sampler2D.String())
}
