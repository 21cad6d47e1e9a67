package quad

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/db47h/nucleus"
	"github.com/db47h/nucleus/atlas"
	"github.com/db47h/nucleus/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var vecTypes = map[int]shader.DataType{1: shader.Float, 2: shader.FloatVec2, 3: shader.FloatVec3, 4: shader.FloatVec4}

// table resolves the named attributes of cat as if they were the only active
// variables of a linked program. All attributes are active if no name is
// given.
func table(t *testing.T, cat *shader.Category, mode shader.OffsetMode, names ...string) *shader.Table {
	t.Helper()
	active := make(map[string]bool)
	for _, n := range names {
		active[n] = true
	}
	var vs []shader.Variable
	for i, m := range cat.Mappings {
		if m.Class != shader.Attribute || len(names) > 0 && !active[m.Name] {
			continue
		}
		vs = append(vs, shader.Variable{Name: m.Name, Class: shader.Attribute, Type: vecTypes[m.Size],
			Count: 1, Location: int32(i), Block: shader.NoBlock})
	}
	tbl, err := shader.Resolve(cat, vs)
	require.NoError(t, err)
	require.NoError(t, tbl.AssignOffsets(mode))
	return tbl
}

func expander(t *testing.T, tbl *shader.Table, count, extra int, opts ...Option) *Expander {
	t.Helper()
	spv := shader.NewLayout(tbl).VertexStride(shader.Interleaved)
	e, err := NewExpander(NewStore(count, spv+extra, spv), tbl, append(opts, Logger(zaptest.NewLogger(t)))...)
	require.NoError(t, err)
	return e
}

func fillRandom(r *rand.Rand, s []float32) {
	for i := range s {
		s[i] = r.Float32()
	}
}

func snapshot(s *Store) (src, dst []float32) {
	return append([]float32(nil), s.Source...), append([]float32(nil), s.Destination...)
}

func TestOffsetCompatibility(t *testing.T) {
	props := []shader.Property{shader.Translate, shader.Rotate, shader.Scale, shader.Albedo, shader.Frame}
	for _, mode := range []shader.OffsetMode{shader.Dynamic, shader.Static} {
		for _, names := range [][]string{nil, {"aColor", "aFrameData"}, {"aTranslate", "aScale"}} {
			if mode == shader.Static && names != nil {
				// static strides keep the full layout
				continue
			}
			tbl := table(t, shader.SpriteCategory(), mode, names...)
			e := expander(t, tbl, 3, 4)
			s := e.Store()
			for _, p := range props {
				off := e.Offset(p)
				assert.Equal(t, tbl.PropertyOffset(p), off, "%v %v", mode, p)
				if off == shader.NoOffset {
					continue
				}
				v := tbl.ByProperty(p)
				require.LessOrEqual(t, off+v.Size(), s.SizePerVertex)
				vals := make([]float32, v.Size())
				for i := range vals {
					vals[i] = float32(int(p)*10 + i)
				}
				e.SetField(1, off, vals)
				assert.Equal(t, vals, s.SourceRecord(1)[off:off+v.Size()])
				for c := 0; c < Multiplier; c++ {
					assert.Equal(t, vals, s.VertexRecord(1, c)[off:off+v.Size()])
				}
			}
		}
	}
}

func TestExpand(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	e := expander(t, table(t, shader.SpriteCategory(), shader.Dynamic), 5, 3)
	s := e.Store()
	fillRandom(r, s.Source)
	for i := 0; i < s.Count; i++ {
		e.Expand(i)
	}
	for i := 0; i < s.Count; i++ {
		for c := 0; c < Multiplier; c++ {
			assert.Equal(t, s.SourceRecord(i)[:s.SizePerVertex], s.VertexRecord(i, c))
		}
	}
}

func TestIdempotence(t *testing.T) {
	e := expander(t, table(t, shader.SpriteCategory(), shader.Dynamic), 4, 0)
	s := e.Store()
	e.SetColor(2, [4]float32{0.5, 0.25, 1, 1})
	e.SetFrame(3, 7)
	src, dst := snapshot(s)
	e.SetColor(2, [4]float32{0.5, 0.25, 1, 1})
	e.SetFrame(3, 7)
	assert.Equal(t, src, s.Source)
	assert.Equal(t, dst, s.Destination)
}

func TestScenario_colorThenExpand(t *testing.T) {
	cat := &shader.Category{
		Name: "scenario",
		Mappings: []shader.Mapping{
			{Name: "aTranslate", Property: shader.Translate, Class: shader.Attribute, Offset: 12, Size: 3},
			{Name: "aColor", Property: shader.Albedo, Class: shader.Attribute, Offset: 30, Size: 4},
		},
	}
	tbl := table(t, cat, shader.Dynamic)
	e := expander(t, tbl, 4, 0)
	assert.Equal(t, 7, e.Store().SizePerVertex)
	e.SetColor(2, [4]float32{1, 0, 0, 1})
	e.Expand(2)
	assert.Equal(t, []float32{1, 0, 0, 1}, e.Store().VertexRecord(2, 3)[3:7])
}

func TestSetFrame_absent(t *testing.T) {
	tbl := table(t, shader.SpriteCategory(), shader.Dynamic, "aTranslate", "aColor")
	e := expander(t, tbl, 2, 0)
	s := e.Store()
	fillRandom(rand.New(rand.NewSource(2)), s.Source)
	src, dst := snapshot(s)
	assert.Equal(t, shader.NoOffset, e.Offset(shader.Frame))
	assert.NotPanics(t, func() { e.SetFrame(1, 5) })
	assert.Equal(t, src, s.Source)
	assert.Equal(t, dst, s.Destination)
}

func TestSetTransform_matrixMode(t *testing.T) {
	e := expander(t, table(t, shader.SpriteCategory(), shader.Dynamic), 2, 0)
	s := e.Store()
	fillRandom(rand.New(rand.NewSource(3)), s.Source)
	src, dst := snapshot(s)
	m := mgl32.Ident4()
	tr := mgl32.Vec3{1, 2, 3}
	err := e.SetTransform(1, Transform{Translate: &tr, Matrix: &m})
	assert.True(t, errors.Is(err, ErrUnsupportedTransformMode))
	assert.Equal(t, src, s.Source)
	assert.Equal(t, dst, s.Destination)
}

func TestSetTransform(t *testing.T) {
	e := expander(t, table(t, shader.SpriteCategory(), shader.Dynamic), 2, 2)
	s := e.Store()
	tr := mgl32.Vec3{1, 2, 3}
	require.NoError(t, e.SetTransform(1, Transform{Translate: &tr, Rotation: &AxisAngle{Axis: mgl32.Vec3{0, 1, 0}, Angle: 2}}))
	want := []float32{1, 2, 3, 0, 2, 0, 1, 1, 1}
	assert.Equal(t, want, s.SourceRecord(1)[:9])
	for c := 0; c < Multiplier; c++ {
		assert.Equal(t, want, s.VertexRecord(1, c)[:9])
	}

	sc := mgl32.Vec3{2, 3, 4}
	require.NoError(t, e.SetTransform(1, Transform{Rotation: RotationZ(0.5), Scale: &sc}))
	assert.Equal(t, []float32{1, 2, 3, 0, 0, 0.5, 2, 3, 4}, s.VertexRecord(1, 2)[:9])
	// entity 0 untouched
	assert.Equal(t, make([]float32, s.SizePerVertex), s.VertexRecord(0, 0))
}

func TestSetField_sourceOnly(t *testing.T) {
	e := expander(t, table(t, shader.SpriteCategory(), shader.Dynamic), 2, 4)
	s := e.Store()
	spv := s.SizePerVertex
	// straddles the end of the vertex record
	e.SetField(0, spv-1, []float32{7, 8, 9})
	assert.Equal(t, []float32{7, 8, 9}, s.SourceRecord(0)[spv-1:spv+2])
	for c := 0; c < Multiplier; c++ {
		assert.Equal(t, float32(7), s.VertexRecord(0, c)[spv-1])
	}
	assert.Equal(t, make([]float32, Multiplier*spv), s.Destination[Multiplier*spv:])
	e.SetField(0, spv+1, []float32{5})
	assert.Equal(t, float32(5), s.SourceRecord(0)[spv+1])
}

func TestSetColorModel(t *testing.T) {
	e := expander(t, table(t, shader.SpriteCategory(), shader.Dynamic), 1, 0)
	e.SetColorModel(0, color.NRGBA{R: 0, G: 0xff, B: 0, A: 0xff})
	off := e.Offset(shader.Albedo)
	assert.Equal(t, []float32{0, 1, 0, 1}, e.Store().VertexRecord(0, 1)[off:off+4])
}

func TestUpdateAttributeData(t *testing.T) {
	a, err := atlas.Grid(4, 4, 0)
	require.NoError(t, err)
	tbl := table(t, shader.SpriteCategory(), shader.Dynamic)
	gles2 := nucleus.Profile{GLESMajor: 2}

	simple := expander(t, tbl, 6, 0)
	perFrame := expander(t, tbl, 6, 0, UVAtlas(a, gles2))
	blocks := expander(t, tbl, 6, 0, UVAtlas(a, nucleus.DefaultProfile))
	assert.False(t, simple.PerFrameUV())
	assert.True(t, perFrame.PerFrameUV())
	assert.False(t, blocks.PerFrameUV())

	r := rand.New(rand.NewSource(4))
	for i := 0; i < 6; i++ {
		col := [4]float32{r.Float32(), r.Float32(), r.Float32(), 1}
		tr := mgl32.Vec3{r.Float32(), r.Float32(), 0}
		for _, e := range []*Expander{simple, perFrame} {
			require.NoError(t, e.SetTransform(i, Transform{Translate: &tr, Rotation: RotationZ(float32(i))}))
			e.SetColor(i, col)
			e.SetFrame(i, i*3)
		}
	}
	s := simple.Store()
	bulk := make([]float32, len(s.Destination))
	uv := make([]float32, len(s.Destination))
	simple.UpdateAttributeData(bulk)
	perFrame.UpdateAttributeData(uv)
	assert.Equal(t, s.Destination, bulk)

	fo := simple.Offset(shader.Frame)
	spv := s.SizePerVertex
	for i := 0; i < s.Count; i++ {
		f := a.Frame(i * 3)
		for c := 0; c < Multiplier; c++ {
			o := (i*Multiplier + c) * spv
			b, u := bulk[o:o+spv], uv[o:o+spv]
			assert.Equal(t, b[:fo], u[:fo])
			assert.Equal(t, b[fo+2:], u[fo+2:])
			assert.Equal(t, []float32{f[2*c], f[2*c+1]}, u[fo:fo+2])
			assert.Equal(t, float32(i*3), b[fo])
		}
	}
	// destination records keep the frame index
	assert.Equal(t, s.Destination, perFrame.Store().Destination)
}

func TestUpdateAttributeData_noFrame(t *testing.T) {
	a, err := atlas.Grid(2, 2, 0)
	require.NoError(t, err)
	tbl := table(t, shader.SpriteCategory(), shader.Dynamic, "aTranslate", "aColor")
	e := expander(t, tbl, 2, 0, UVAtlas(a, nucleus.Profile{GLESMajor: 2}))
	assert.False(t, e.PerFrameUV())
}

func TestUpdateAttributeData_staticFrame(t *testing.T) {
	a, err := atlas.Grid(2, 2, 0)
	require.NoError(t, err)
	cat := shader.SpriteCategory()
	for i := range cat.Mappings {
		if cat.Mappings[i].Property == shader.Frame {
			cat.Mappings[i].Buffer = shader.StaticBuffer
		}
	}
	tbl := table(t, cat, shader.Dynamic)
	e := expander(t, tbl, 2, 0, UVAtlas(a, nucleus.Profile{GLESMajor: 2}))
	assert.False(t, e.PerFrameUV())
	assert.Equal(t, shader.NoOffset, e.Offset(shader.Frame))

	e.SetFrame(1, 3)
	dst := make([]float32, len(e.Store().Destination))
	assert.NotPanics(t, func() { e.UpdateAttributeData(dst) })
	assert.Equal(t, e.Store().Destination, dst)
}

func TestNewExpander_mismatch(t *testing.T) {
	tbl := table(t, shader.SpriteCategory(), shader.Dynamic)
	_, err := NewExpander(NewStore(1, 20, 14), tbl)
	assert.Error(t, err)
	_, err = NewExpander(NewStore(1, 10, 15), tbl)
	assert.Error(t, err)
}

func TestIndices(t *testing.T) {
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3, 4, 5, 6, 6, 5, 7}, Indices(2))
	assert.Empty(t, Indices(0))
}

func TestFillStatic(t *testing.T) {
	tbl := table(t, shader.SpriteCategory(), shader.Static)
	l := shader.NewLayout(tbl)
	require.Equal(t, 5, l.VertexStride(shader.StaticBuffer))
	dst := make([]float32, 2*Multiplier*5)
	FillStatic(l, dst, 2, 32, 16)
	assert.Equal(t, []float32{
		-16, 8, 0, 0, 0,
		16, 8, 0, 1, 0,
		-16, -8, 0, 0, 1,
		16, -8, 0, 1, 1,
	}, dst[20:])
	assert.Equal(t, dst[:20], dst[20:])

	// no static attributes
	FillStatic(shader.NewLayout(table(t, shader.LineCategory(), shader.Dynamic)), nil, 4, 1, 1)
}
