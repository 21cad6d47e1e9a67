package shader

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Hooks are the per category callbacks of a program.
//
type Hooks struct {
	// Init is called once after the program is linked.
	Init func(*Uniforms)
	// Update is called by Uniforms.Update before uploading.
	Update func(*Uniforms)
}

// Program is a linked GPU program bound to a shader category.
//
type Program struct {
	Handle uint32 // GPU program name, owned by the renderer

	table    *Table
	layout   *Layout
	uniforms *Uniforms
	blocks   []Block
	hooks    Hooks
	log      *zap.Logger
}

// Link builds the variable table, attribute layout and uniform storage of a
// linked program from what the program linker reports in info.
//
func Link(handle uint32, cat *Category, info ProgramInfo, opts ...Option) (*Program, error) {
	cfg := newConfig(opts)
	t, err := Resolve(cat, info.Variables(), opts...)
	if err != nil {
		return nil, err
	}
	if err = t.AssignOffsets(cfg.mode); err != nil {
		return nil, err
	}
	if err = checkBlockLayout(t); err != nil {
		return nil, err
	}
	p := &Program{
		Handle: handle,
		table:  t,
		layout: NewLayout(t),
		blocks: info.Blocks,
		hooks:  cfg.hooks,
		log:    cfg.log,
	}
	for _, v := range t.Uniforms() {
		if v.Block != NoBlock && p.Block(v.Block) == nil {
			return nil, errors.Errorf("shader category %s: uniform %s refers to unknown block %d", cat.Name, v.Name, v.Block)
		}
	}
	p.uniforms = newUniforms(p)
	if p.hooks.Init != nil {
		p.hooks.Init(p.uniforms)
	}
	p.log.Debug("program linked", zap.Uint32("handle", handle), zap.String("category", cat.Name))
	return p, nil
}

// checkBlockLayout verifies that block members reported with a layout can be
// uploaded from packed float data.
func checkBlockLayout(t *Table) error {
	for _, v := range t.Uniforms() {
		m := v.Member
		if v.Block == NoBlock || m == nil {
			continue
		}
		err := &BlockLayoutError{Category: t.cat.Name, Name: v.Name}
		switch {
		case m.Offset != v.Offset*4:
			err.Field, err.Packed, err.Reported = "offset", v.Offset*4, m.Offset
		case v.Count > 1 && m.ArrayStride != v.Type.Components()*4:
			err.Field, err.Packed, err.Reported = "array stride", v.Type.Components()*4, m.ArrayStride
		case matrixColumns(v.Type) > 0 && m.MatrixStride != matrixColumns(v.Type)*4:
			err.Field, err.Packed, err.Reported = "matrix stride", matrixColumns(v.Type)*4, m.MatrixStride
		default:
			continue
		}
		return err
	}
	return nil
}

func matrixColumns(t DataType) int {
	switch t {
	case FloatMat2:
		return 2
	case FloatMat3:
		return 3
	case FloatMat4:
		return 4
	}
	return 0
}

// Table returns the variable table of p.
//
func (p *Program) Table() *Table { return p.table }

// Layout returns the attribute layout of p.
//
func (p *Program) Layout() *Layout { return p.layout }

// Uniforms returns the uniform storage of p.
//
func (p *Program) Uniforms() *Uniforms { return p.uniforms }

// Category returns the category of p.
//
func (p *Program) Category() *Category { return p.table.cat }

// Block returns the interface block with the given index or nil.
//
func (p *Program) Block(index int) *Block {
	for i := range p.blocks {
		if p.blocks[i].Index == index {
			return &p.blocks[i]
		}
	}
	return nil
}

// Blocks returns the interface blocks of p.
//
func (p *Program) Blocks() []Block { return p.blocks }
