package shader

import (
	"strings"
)

const (
	// NoOffset is the offset of a variable or property that has no storage.
	NoOffset = -1
	// NoBlock is the block index of variables outside interface blocks.
	NoBlock = -1
)

// Variable is an active variable of a linked program, as reported by the
// program linker.
//
// Name, Class, Type, Count, Location and Block are set by the linker. Offset
// is NoOffset until assigned by Table.AssignOffsets.
//
type Variable struct {
	Name     string
	Class    StorageClass
	Type     DataType
	Count    int   // number of array elements, 1 for non-arrays
	Location int32 // attribute slot or uniform location
	Block    int   // index of the owning interface block or NoBlock
	Offset   int
	Member   *MemberLayout // block member layout, nil if not reported

	mapping *Mapping
}

// MemberLayout is the layout of a uniform block member as reported by the
// linker, in bytes. Strides are 0 for non-arrays and non-matrices.
//
// Block data is uploaded as packed floats, so a member is only usable if its
// reported layout matches the packed one: vec4 and mat4 members (and arrays
// thereof) under the std140 rules, or any layout the linker packs tightly.
//
type MemberLayout struct {
	Offset       int
	ArrayStride  int
	MatrixStride int
}

// Size returns the size of v in floats, or in texture units for samplers.
//
func (v *Variable) Size() int {
	n := v.Count
	if n < 1 {
		n = 1
	}
	return v.Type.Components() * n
}

// Mapping returns the mapping v has been resolved against. It returns nil
// for variables that did not go through Resolve.
//
func (v *Variable) Mapping() *Mapping {
	return v.mapping
}

// Property returns the property v is bound to.
//
func (v *Variable) Property() Property {
	if v.mapping == nil {
		return NoProperty
	}
	return v.mapping.Property
}

// Buffer returns the buffer index of v's mapping.
//
func (v *Variable) Buffer() BufferIndex {
	if v.mapping == nil {
		return Interleaved
	}
	return v.mapping.Buffer
}

// Block is an interface block of a linked program.
//
type Block struct {
	Index   int    // block index in the program
	Name    string // block name
	Binding uint32 // binding point
	Buffer  uint32 // GPU buffer backing the block, owned by the renderer
	Size    int    // data size in bytes as reported by the linker
}

// ProgramInfo is what the program linker reports after a successful link.
//
type ProgramInfo struct {
	Attributes []Variable
	Uniforms   []Variable // plain uniforms and block members
	Blocks     []Block
}

// Variables returns attributes and uniforms as a single list.
//
func (pi ProgramInfo) Variables() []Variable {
	vs := make([]Variable, 0, len(pi.Attributes)+len(pi.Uniforms))
	vs = append(vs, pi.Attributes...)
	return append(vs, pi.Uniforms...)
}

// VariableName returns the symbolic name of a variable as reported by the
// linker: the array suffix and struct field access are removed, so that
// "uLight[0]" and "uLight.color" both return "uLight".
//
func VariableName(name string) string {
	if i := strings.IndexAny(name, "[."); i >= 0 {
		return name[:i]
	}
	return name
}
