package shader

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uploader issues uniform upload calls to the GPU. Method signatures follow
// the corresponding GL calls. The gl package provides the implementation for
// a live GL context.
//
type Uploader interface {
	Uniform1fv(location int32, count int32, v []float32)
	Uniform2fv(location int32, count int32, v []float32)
	Uniform3fv(location int32, count int32, v []float32)
	Uniform4fv(location int32, count int32, v []float32)
	UniformMatrix2fv(location int32, count int32, v []float32)
	UniformMatrix3fv(location int32, count int32, v []float32)
	UniformMatrix4fv(location int32, count int32, v []float32)
	Uniform1iv(location int32, count int32, v []int32)
	UniformBlockBinding(program uint32, blockIndex uint32, binding uint32)
	// UniformBlockData uploads the contents of a uniform block to its
	// backing buffer. Members are packed at their float offsets with no
	// padding; Link rejects blocks whose reported layout differs.
	UniformBlockData(buffer uint32, data []float32)
	BindBufferBase(binding uint32, buffer uint32)
}

// Uniforms holds the uniform data of a program, packed at the offsets
// assigned to its variables.
//
type Uniforms struct {
	p        *Program
	vars     []*Variable // active uniforms, in table order
	byProp   [numProperties]*Variable
	data     []float32
	samplers []int32
	blocks   map[int][]float32
	bound    map[int]bool
	seen     map[int]bool
	ints     []int32
}

func newUniforms(p *Program) *Uniforms {
	t := p.table
	u := &Uniforms{
		p:        p,
		data:     make([]float32, t.UniformSize()),
		samplers: make([]int32, t.SamplerSize()),
		blocks:   make(map[int][]float32),
		bound:    make(map[int]bool),
		seen:     make(map[int]bool),
	}
	u.vars = t.Uniforms()
	for _, v := range u.vars {
		if prop := v.Property(); prop != NoProperty && u.byProp[prop] == nil {
			u.byProp[prop] = v
		}
		if v.Block != NoBlock && u.blocks[v.Block] == nil {
			u.blocks[v.Block] = make([]float32, t.BlockSize(v.Block))
		}
	}
	// default texture unit of a sampler is its offset
	for _, v := range t.Samplers() {
		for i := 0; i < v.Size(); i++ {
			u.samplers[v.Offset+i] = int32(v.Offset + i)
		}
	}
	return u
}

// Program returns the program u belongs to.
//
func (u *Uniforms) Program() *Program { return u.p }

// Data returns the plain uniform data.
//
func (u *Uniforms) Data() []float32 { return u.data }

// Samplers returns the texture units of samplers.
//
func (u *Uniforms) Samplers() []int32 { return u.samplers }

// BlockData returns the data of the given uniform block, or nil if the
// program has no active member in that block.
//
func (u *Uniforms) BlockData(block int) []float32 { return u.blocks[block] }

// Set copies values to the storage of the uniform bound to p. It does nothing
// if no active uniform is bound to p. Values beyond the size of the uniform
// are ignored.
//
func (u *Uniforms) Set(p Property, values ...float32) {
	v := u.uniform(p)
	if v == nil || v.Type.IsSampler() {
		return
	}
	dst := u.data
	if v.Block != NoBlock {
		dst = u.blocks[v.Block]
	}
	copy(dst[v.Offset:v.Offset+v.Size()], values)
}

// SetSampler sets the texture units of the sampler bound to p.
//
func (u *Uniforms) SetSampler(p Property, units ...int32) {
	v := u.uniform(p)
	if v == nil || !v.Type.IsSampler() {
		return
	}
	copy(u.samplers[v.Offset:v.Offset+v.Size()], units)
}

// SetMatrices copies the model-view and projection matrices to their
// uniforms. It does not touch GPU state.
//
func (u *Uniforms) SetMatrices(modelView, projection mgl32.Mat4) {
	u.Set(ModelView, modelView[:]...)
	u.Set(Projection, projection[:]...)
}

func (u *Uniforms) uniform(p Property) *Variable {
	if p < 0 || int(p) >= len(u.byProp) {
		return nil
	}
	return u.byProp[p]
}

// Update refreshes uniform data through the program's update hook then
// uploads all active uniforms.
//
// Members of a uniform block are uploaded once per block: the block data is
// copied to its buffer and the buffer bound to the block binding point. The
// block binding itself is set on the first call only. Other uniforms are
// uploaded with the function matching their data type. An unsupported data
// type fails with an *UnsupportedUniformTypeError and no further uniforms
// are uploaded.
//
func (u *Uniforms) Update(up Uploader) error {
	if h := u.p.hooks.Update; h != nil {
		h(u)
	}
	for k := range u.seen {
		delete(u.seen, k)
	}
	for _, v := range u.vars {
		if v.Block != NoBlock {
			if u.seen[v.Block] {
				continue
			}
			u.seen[v.Block] = true
			blk := u.p.Block(v.Block)
			if !u.bound[v.Block] {
				up.UniformBlockBinding(u.p.Handle, uint32(blk.Index), blk.Binding)
				u.bound[v.Block] = true
			}
			up.UniformBlockData(blk.Buffer, u.blocks[v.Block])
			up.BindBufferBase(blk.Binding, blk.Buffer)
			continue
		}
		if err := u.upload(up, v); err != nil {
			return err
		}
	}
	return nil
}

func (u *Uniforms) upload(up Uploader, v *Variable) error {
	loc, n := v.Location, int32(max(v.Count, 1))
	if v.Type.IsSampler() {
		up.Uniform1iv(loc, n, u.samplers[v.Offset:v.Offset+v.Size()])
		return nil
	}
	d := u.data[v.Offset : v.Offset+v.Size()]
	switch v.Type {
	case Float:
		up.Uniform1fv(loc, n, d)
	case FloatVec2:
		up.Uniform2fv(loc, n, d)
	case FloatVec3:
		up.Uniform3fv(loc, n, d)
	case FloatVec4:
		up.Uniform4fv(loc, n, d)
	case FloatMat2:
		up.UniformMatrix2fv(loc, n, d)
	case FloatMat3:
		up.UniformMatrix3fv(loc, n, d)
	case FloatMat4:
		up.UniformMatrix4fv(loc, n, d)
	case Int:
		u.ints = u.ints[:0]
		for _, f := range d {
			u.ints = append(u.ints, int32(f))
		}
		up.Uniform1iv(loc, n, u.ints)
	default:
		return &UnsupportedUniformTypeError{Category: u.p.table.cat.Name, Name: v.Name, Type: v.Type}
	}
	return nil
}

// Slice returns the storage of the uniform bound to p, or nil if there is no
// such uniform or it is a sampler.
//
func (u *Uniforms) Slice(p Property) []float32 {
	v := u.uniform(p)
	if v == nil || v.Type.IsSampler() {
		return nil
	}
	if v.Block != NoBlock {
		return u.blocks[v.Block][v.Offset : v.Offset+v.Size()]
	}
	return u.data[v.Offset : v.Offset+v.Size()]
}
