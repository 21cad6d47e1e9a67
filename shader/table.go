package shader

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Table is the variable table of a linked program: the active variables
// resolved against their category mappings.
//
type Table struct {
	cat      *Category
	vars     []*Variable
	byName   map[string]*Variable
	mode     OffsetMode
	assigned bool

	uniformSize int
	samplerSize int
	blockSize   map[int]int
	log         *zap.Logger
}

// Resolve matches the active variables of a linked program against the
// mappings of cat.
//
// Every active variable must have a mapping or Resolve fails with an
// *UnmappedVariableError; a variable whose mapping declares a size different
// from its compiled size fails with a *SizeMismatchError. Mappings without an
// active variable are dropped. A variable reported both as a block member and
// as a plain uniform is kept once, as the block member.
//
// The variables of the returned table are in mapping declaration order.
//
func Resolve(cat *Category, compiled []Variable, opts ...Option) (*Table, error) {
	cfg := newConfig(opts)
	found := make(map[*Mapping]*Variable, len(compiled))
	for i := range compiled {
		v := compiled[i]
		name := VariableName(v.Name)
		m := cat.Mapping(name, v.Class)
		if m == nil {
			return nil, &UnmappedVariableError{Category: cat.Name, Name: name, Class: v.Class}
		}
		if prev := found[m]; prev != nil && (prev.Block != NoBlock || v.Block == NoBlock) {
			continue
		}
		if m.Size != 0 && m.Size != v.Size() {
			return nil, &SizeMismatchError{Category: cat.Name, Name: name, Declared: m.Size, Compiled: v.Size()}
		}
		v.Name = name
		v.Offset = NoOffset
		v.mapping = m
		if v.Block != NoBlock {
			v.Class = UniformBlock
		}
		found[m] = &v
	}

	t := &Table{
		cat:       cat,
		vars:      make([]*Variable, 0, len(found)),
		byName:    make(map[string]*Variable, len(found)),
		blockSize: make(map[int]int),
		log:       cfg.log,
	}
	for i := range cat.Mappings {
		m := &cat.Mappings[i]
		v := found[m]
		if v == nil {
			t.log.Debug("inactive variable dropped",
				zap.String("category", cat.Name), zap.String("name", m.Name), zap.Stringer("class", m.Class))
			continue
		}
		t.vars = append(t.vars, v)
		t.byName[key(v.Name, v.Class)] = v
	}
	return t, nil
}

func key(name string, class StorageClass) string {
	if class == Attribute {
		return "a:" + name
	}
	return "u:" + name
}

// Category returns the category t was resolved against.
//
func (t *Table) Category() *Category { return t.cat }

// Mode returns the offset mode. It is only meaningful after AssignOffsets.
//
func (t *Table) Mode() OffsetMode { return t.mode }

// Variables returns all variables in declaration order. The returned slice
// must not be modified.
//
func (t *Table) Variables() []*Variable { return t.vars }

// Attribute returns the attribute with the given symbolic name or nil.
//
func (t *Table) Attribute(name string) *Variable { return t.byName[key(name, Attribute)] }

// Uniform returns the uniform or block member with the given symbolic name or
// nil.
//
func (t *Table) Uniform(name string) *Variable { return t.byName[key(name, Uniform)] }

// Variable returns the variable with the given symbolic name, looking up
// attributes first.
//
func (t *Table) Variable(name string) *Variable {
	if v := t.Attribute(name); v != nil {
		return v
	}
	return t.Uniform(name)
}

// ByProperty returns the first variable bound to p or nil.
//
func (t *Table) ByProperty(p Property) *Variable {
	for _, v := range t.vars {
		if v.Property() == p {
			return v
		}
	}
	return nil
}

// PropertyOffset returns the offset of the variable bound to p, or NoOffset if
// there is no such variable.
//
func (t *Table) PropertyOffset(p Property) int {
	if v := t.ByProperty(p); v != nil {
		return v.Offset
	}
	return NoOffset
}

// Attributes returns the attributes in declaration order.
//
func (t *Table) Attributes() []*Variable {
	return t.filter(func(v *Variable) bool { return v.Class == Attribute })
}

// Uniforms returns the uniforms, samplers and block members in declaration
// order.
//
func (t *Table) Uniforms() []*Variable {
	return t.filter(func(v *Variable) bool { return v.Class != Attribute })
}

// Samplers returns the sampler uniforms in declaration order.
//
func (t *Table) Samplers() []*Variable {
	return t.filter(func(v *Variable) bool { return v.Class == Uniform && v.Type.IsSampler() })
}

func (t *Table) filter(f func(*Variable) bool) []*Variable {
	var vs []*Variable
	for _, v := range t.vars {
		if f(v) {
			vs = append(vs, v)
		}
	}
	return vs
}

// UniformSize returns the size in floats of the plain uniform data.
//
func (t *Table) UniformSize() int { return t.uniformSize }

// SamplerSize returns the number of texture units used by samplers.
//
func (t *Table) SamplerSize() int { return t.samplerSize }

// BlockSize returns the size in floats of the data for the given block.
//
func (t *Table) BlockSize(block int) int { return t.blockSize[block] }

func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "category %s, %v offsets\n", t.cat.Name, t.mode)
	for _, v := range t.vars {
		fmt.Fprintf(&b, "  %-12s %-20s %-8v x%d loc=%d", v.Class, v.Name, v.Type, v.Count, v.Location)
		if v.Class == Attribute {
			fmt.Fprintf(&b, " buffer=%v", v.Buffer())
		}
		if v.Block != NoBlock {
			fmt.Fprintf(&b, " block=%d", v.Block)
		}
		fmt.Fprintf(&b, " offset=%d property=%v\n", v.Offset, v.Property())
	}
	return b.String()
}
