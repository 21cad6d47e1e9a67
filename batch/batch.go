// Package batch uploads vertex data laid out by the shader package to GL
// buffers and draws it.
//
// A Batch draws the quads produced by a quad.Expander. A Mesh draws static
// indexed geometry, such as a glTF primitive.
//
package batch

import (
	"github.com/db47h/nucleus/gl"
	"github.com/db47h/nucleus/quad"
	"github.com/db47h/nucleus/shader"
	gogl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type config struct {
	width, height float32
	workers       int
	log           *zap.Logger
}

// Option configures a Batch.
//
type Option interface {
	set(*config)
}

type cfn func(*config)

func (f cfn) set(c *config) { f(c) }

// QuadSize sets the size in world units of the static quad geometry. The
// default is 1x1.
//
func QuadSize(width, height float32) Option {
	return cfn(func(c *config) {
		c.width, c.height = width, height
	})
}

// Workers sets the number of goroutines expanding entities in Flush. The
// default is 1.
//
func Workers(n int) Option {
	return cfn(func(c *config) {
		if n > 0 {
			c.workers = n
		}
	})
}

func Logger(l *zap.Logger) Option {
	return cfn(func(c *config) {
		c.log = l
	})
}

// A Batch draws all the entities of a quad.Expander in a single call.
//
type Batch struct {
	prog   *shader.Program
	exp    *quad.Expander
	vao    uint32
	vbo    [shader.NumBufferIndex]*gl.Buffer
	ebo    *gl.Buffer
	data   [shader.NumBufferIndex][]float32
	quads  int
	expand *Expander
	log    *zap.Logger
}

// New creates the vertex array and buffers for the entities of exp, drawn
// with prog. The static buffer is filled once; the interleaved buffer is
// refreshed by Flush.
//
func New(prog *shader.Program, exp *quad.Expander, opts ...Option) (*Batch, error) {
	cfg := &config{width: 1, height: 1, workers: 1, log: zap.NewNop()}
	for _, o := range opts {
		o.set(cfg)
	}
	l := prog.Layout()
	quads := exp.Store().Count
	b := &Batch{
		prog:   prog,
		exp:    exp,
		quads:  quads,
		data:   l.CreateAttributeBuffers(quads * quad.Multiplier),
		expand: NewExpander(exp, cfg.workers),
		log:    cfg.log,
	}
	if b.data[shader.Interleaved] == nil {
		return nil, errors.Errorf("shader category %s: no interleaved attributes", prog.Category().Name)
	}
	quad.FillStatic(l, b.data[shader.StaticBuffer], quads, cfg.width, cfg.height)

	gogl.GenVertexArrays(1, &b.vao)
	gogl.BindVertexArray(b.vao)
	defer gogl.BindVertexArray(0)
	for _, bi := range []shader.BufferIndex{shader.Interleaved, shader.StaticBuffer} {
		d := b.data[bi]
		if d == nil {
			continue
		}
		usage := uint32(gogl.STATIC_DRAW)
		if bi == shader.Interleaved {
			usage = gogl.DYNAMIC_DRAW
		}
		b.vbo[bi] = gl.NewBuffer(gogl.ARRAY_BUFFER, len(d)*4, d, usage)
		if err := enable(l, bi); err != nil {
			b.Delete()
			return nil, err
		}
	}
	idx := quad.Indices(quads)
	b.ebo = gl.NewBuffer(gogl.ELEMENT_ARRAY_BUFFER, len(idx)*4, idx, gogl.STATIC_DRAW)

	b.log.Debug("batch created",
		zap.String("category", prog.Category().Name),
		zap.Int("quads", quads),
		zap.Int("workers", cfg.workers))
	return b, nil
}

func enable(l *shader.Layout, bi shader.BufferIndex) error {
	ps, err := pointers(l, bi)
	if err != nil {
		return err
	}
	for _, p := range ps {
		gogl.EnableVertexAttribArray(p.location)
		gogl.VertexAttribPointerWithOffset(p.location, p.components, gogl.FLOAT, false, p.stride, p.offset)
	}
	return nil
}

// Expand expands all entities into the destination records. It is safe to
// call from the logic goroutine while no Flush is in progress.
//
func (b *Batch) Expand() {
	b.expand.All()
}

// Flush uploads the expanded vertex data and the uniforms, then draws all
// quads. It must be called from the GL thread.
//
func (b *Batch) Flush(up shader.Uploader) error {
	gogl.UseProgram(b.prog.Handle)
	if err := b.prog.Uniforms().Update(up); err != nil {
		return err
	}
	d := b.data[shader.Interleaved]
	b.exp.UpdateAttributeData(d)
	b.vbo[shader.Interleaved].SubData(d)

	gogl.BindVertexArray(b.vao)
	gogl.DrawElementsWithOffset(gogl.TRIANGLES, int32(b.quads*quad.IndicesPerQuad), gogl.UNSIGNED_INT, 0)
	gogl.BindVertexArray(0)
	return nil
}

func (b *Batch) Delete() {
	for _, v := range b.vbo {
		if v != nil {
			v.Delete()
		}
	}
	if b.ebo != nil {
		b.ebo.Delete()
	}
	gogl.DeleteVertexArrays(1, &b.vao)
}

// A Mesh draws static indexed geometry stored in the static buffer of a
// program layout.
//
type Mesh struct {
	prog  *shader.Program
	vao   uint32
	vbo   *gl.Buffer
	ebo   *gl.Buffer
	count int32
}

// NewMesh uploads vertices, laid out as the static buffer of prog, and
// indices.
//
func NewMesh(prog *shader.Program, vertices []float32, indices []uint32) (*Mesh, error) {
	l := prog.Layout()
	stride := l.VertexStride(shader.StaticBuffer)
	if stride == 0 || len(vertices)%stride != 0 {
		return nil, errors.Errorf("shader category %s: %d floats is not a multiple of the vertex stride %d",
			prog.Category().Name, len(vertices), stride)
	}
	if len(indices) == 0 {
		return nil, errors.New("empty index buffer")
	}
	m := &Mesh{prog: prog, count: int32(len(indices))}
	gogl.GenVertexArrays(1, &m.vao)
	gogl.BindVertexArray(m.vao)
	defer gogl.BindVertexArray(0)
	m.vbo = gl.NewBuffer(gogl.ARRAY_BUFFER, len(vertices)*4, vertices, gogl.STATIC_DRAW)
	if err := enable(l, shader.StaticBuffer); err != nil {
		m.Delete()
		return nil, err
	}
	m.ebo = gl.NewBuffer(gogl.ELEMENT_ARRAY_BUFFER, len(indices)*4, indices, gogl.STATIC_DRAW)
	return m, nil
}

// Draw uploads the uniforms of the mesh program and draws the mesh.
//
func (m *Mesh) Draw(up shader.Uploader) error {
	gogl.UseProgram(m.prog.Handle)
	if err := m.prog.Uniforms().Update(up); err != nil {
		return err
	}
	gogl.BindVertexArray(m.vao)
	gogl.DrawElementsWithOffset(gogl.TRIANGLES, m.count, gogl.UNSIGNED_INT, 0)
	gogl.BindVertexArray(0)
	return nil
}

func (m *Mesh) Delete() {
	if m.vbo != nil {
		m.vbo.Delete()
	}
	if m.ebo != nil {
		m.ebo.Delete()
	}
	gogl.DeleteVertexArrays(1, &m.vao)
}
