package quad

import (
	"image/color"

	"github.com/db47h/nucleus"
	"github.com/db47h/nucleus/atlas"
	"github.com/db47h/nucleus/shader"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// An Option configures an Expander.
//
type Option interface {
	set(*config)
}

type config struct {
	log     *zap.Logger
	atlas   *atlas.Atlas
	profile nucleus.Profile
}

type cfn func(*config)

func (f cfn) set(c *config) { f(c) }

// Logger sets the logger. The default is a no-op logger.
//
func Logger(l *zap.Logger) Option {
	return cfn(func(c *config) {
		if l != nil {
			c.log = l
		}
	})
}

// UVAtlas sets the atlas used to resolve frame indices to texture coordinates
// on GPUs without uniform block support. When the profile lacks uniform block
// support and the program has a frame attribute of at least two floats,
// UpdateAttributeData replaces each vertex' frame attribute with the corner
// UV of the entity's current frame.
//
func UVAtlas(a *atlas.Atlas, profile nucleus.Profile) Option {
	return cfn(func(c *config) {
		c.atlas = a
		c.profile = profile
	})
}

// Expander updates the records of a Store at the offsets of a program's
// interleaved attributes.
//
type Expander struct {
	s *Store

	translate int
	rotate    int
	scale     int
	albedo    int
	frame     int

	atlas   *atlas.Atlas
	scratch []float32
	log     *zap.Logger
}

// NewExpander returns an expander for store using the interleaved attribute
// layout of table, whose offsets must be assigned. The interleaved stride of
// the table must equal the store's SizePerVertex.
//
func NewExpander(store *Store, table *shader.Table, opts ...Option) (*Expander, error) {
	cfg := &config{log: zap.NewNop()}
	for _, o := range opts {
		o.set(cfg)
	}
	l := shader.NewLayout(table)
	if stride := l.VertexStride(shader.Interleaved); stride != store.SizePerVertex {
		return nil, errors.Errorf("shader category %s: interleaved stride %d does not match vertex size %d",
			table.Category().Name, stride, store.SizePerVertex)
	}
	if store.SizePerEntity < store.SizePerVertex {
		return nil, errors.Errorf("entity size %d smaller than vertex size %d", store.SizePerEntity, store.SizePerVertex)
	}
	e := &Expander{
		s:         store,
		translate: l.PropertyOffset(shader.Interleaved, shader.Translate),
		rotate:    l.PropertyOffset(shader.Interleaved, shader.Rotate),
		scale:     l.PropertyOffset(shader.Interleaved, shader.Scale),
		albedo:    l.PropertyOffset(shader.Interleaved, shader.Albedo),
		frame:     l.PropertyOffset(shader.Interleaved, shader.Frame),
		log:       cfg.log,
	}
	if cfg.atlas != nil && !cfg.profile.SupportsUniformBlocks() {
		if v := table.ByProperty(shader.Frame); v != nil && v.Class == shader.Attribute && v.Size() >= 2 && e.frame != shader.NoOffset {
			e.atlas = cfg.atlas
			e.scratch = make([]float32, store.SizePerVertex)
			e.log.Debug("GLES version < 3, not using uniform block for UV data",
				zap.Int("glesMajor", cfg.profile.GLESMajor),
				zap.Int("frames", cfg.atlas.FrameCount()))
		}
	}
	return e, nil
}

// Store returns the store updated by e.
//
func (e *Expander) Store() *Store { return e.s }

// PerFrameUV returns true if frame indices are resolved to texture
// coordinates by UpdateAttributeData.
//
func (e *Expander) PerFrameUV() bool { return e.atlas != nil }

// Offset returns the offset of the interleaved attribute bound to p, or
// shader.NoOffset.
//
func (e *Expander) Offset(p shader.Property) int {
	switch p {
	case shader.Translate:
		return e.translate
	case shader.Rotate:
		return e.rotate
	case shader.Scale:
		return e.scale
	case shader.Albedo:
		return e.albedo
	case shader.Frame:
		return e.frame
	}
	return shader.NoOffset
}

// SetField writes values at offset in the source record of entity i and in
// its four destination records. Values that land past SizePerVertex are only
// written to the source record.
//
func (e *Expander) SetField(i, offset int, values []float32) {
	s := e.s
	copy(s.Source[i*s.SizePerEntity+offset:], values)
	n := min(len(values), s.SizePerVertex-offset)
	if n <= 0 {
		return
	}
	for c := 0; c < s.Multiplier; c++ {
		o := (i*s.Multiplier+c)*s.SizePerVertex + offset
		copy(s.Destination[o:o+n], values)
	}
}

// SetTransform writes the decomposed transform t to the source record of
// entity i, then expands it. Rotation is written as Axis * Angle and Scale
// defaults to {1, 1, 1}. Fields without a matching attribute are skipped.
//
// A transform in matrix mode fails with ErrUnsupportedTransformMode and
// leaves the records unchanged.
//
func (e *Expander) SetTransform(i int, t Transform) error {
	if t.MatrixMode() {
		return errors.Wrapf(ErrUnsupportedTransformMode, "entity %d", i)
	}
	src := e.s.SourceRecord(i)
	if t.Translate != nil && e.translate != shader.NoOffset {
		copy(src[e.translate:], t.Translate[:])
	}
	if t.Rotation != nil && e.rotate != shader.NoOffset {
		r := t.Rotation.Vec3()
		copy(src[e.rotate:], r[:])
	}
	if e.scale != shader.NoOffset {
		s := [3]float32{1, 1, 1}
		if t.Scale != nil {
			s = *t.Scale
		}
		copy(src[e.scale:], s[:])
	}
	e.Expand(i)
	return nil
}

// SetColor sets the color of entity i. It does nothing if the program has no
// albedo attribute.
//
func (e *Expander) SetColor(i int, rgba [4]float32) {
	if e.albedo == shader.NoOffset {
		return
	}
	e.SetField(i, e.albedo, rgba[:])
}

// SetColorModel sets the color of entity i from any color.Color.
//
func (e *Expander) SetColorModel(i int, c color.Color) {
	e.SetColor(i, nucleus.ColorModel.Convert(c).(nucleus.Color).Vec4())
}

// SetFrame sets the animation frame of entity i. It does nothing if the
// program has no frame attribute.
//
func (e *Expander) SetFrame(i int, frame int) {
	if e.frame == shader.NoOffset {
		return
	}
	v := [1]float32{float32(frame)}
	e.SetField(i, e.frame, v[:])
}

// Expand copies the first SizePerVertex floats of the source record of
// entity i to its four destination records.
//
func (e *Expander) Expand(i int) {
	s := e.s
	src := s.Source[i*s.SizePerEntity : i*s.SizePerEntity+s.SizePerVertex]
	for c := 0; c < s.Multiplier; c++ {
		o := (i*s.Multiplier + c) * s.SizePerVertex
		copy(s.Destination[o:o+s.SizePerVertex], src)
	}
}

// UpdateAttributeData copies the destination records to dst, the GPU visible
// attribute buffer, which must hold at least as many floats.
//
// In per-frame UV mode, the two frame floats of each vertex are replaced by
// the texture coordinates of that corner in the entity's current frame. The
// output is otherwise identical.
//
func (e *Expander) UpdateAttributeData(dst []float32) {
	s := e.s
	if e.atlas == nil {
		copy(dst, s.Destination)
		return
	}
	spv := s.SizePerVertex
	for i := 0; i < s.Count; i++ {
		var uv [atlas.FrameSize]float32
		for c := 0; c < s.Multiplier; c++ {
			o := (i*s.Multiplier + c) * spv
			copy(e.scratch, s.Destination[o:o+spv])
			if c == 0 {
				uv = e.atlas.Frame(int(e.scratch[e.frame]))
			}
			e.scratch[e.frame] = uv[2*c]
			e.scratch[e.frame+1] = uv[2*c+1]
			copy(dst[o:o+spv], e.scratch)
		}
	}
}
