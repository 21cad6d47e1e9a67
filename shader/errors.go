package shader

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOffsetsAssigned is returned when offsets are assigned twice on the
// same Table.
//
var ErrOffsetsAssigned = errors.New("offsets already assigned")

// UnmappedVariableError is returned by Resolve when an active variable has
// no mapping in the shader category. The program and the engine disagree on
// the buffer layout.
//
type UnmappedVariableError struct {
	Category string
	Name     string
	Class    StorageClass
}

func (e *UnmappedVariableError) Error() string {
	return fmt.Sprintf("shader category %s: no mapping for active %s %s", e.Category, e.Class, e.Name)
}

// SizeMismatchError is returned by Resolve when the declared size of a
// variable differs from the size reported by the linker.
//
type SizeMismatchError struct {
	Category string
	Name     string
	Declared int
	Compiled int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("shader category %s: variable %s declared with size %d, compiled size is %d",
		e.Category, e.Name, e.Declared, e.Compiled)
}

// UnsupportedUniformTypeError is returned by Uniforms.Update for a uniform
// whose data type has no upload function.
//
type UnsupportedUniformTypeError struct {
	Category string
	Name     string
	Type     DataType
}

func (e *UnsupportedUniformTypeError) Error() string {
	return fmt.Sprintf("shader category %s: unsupported type %v for uniform %s", e.Category, e.Type, e.Name)
}

// BlockLayoutError is returned by Link when the layout of a block member
// reported by the linker differs from the packed layout of the block data.
//
type BlockLayoutError struct {
	Category string
	Name     string
	Field    string // "offset", "array stride" or "matrix stride"
	Packed   int    // in bytes
	Reported int    // in bytes
}

func (e *BlockLayoutError) Error() string {
	return fmt.Sprintf("shader category %s: block member %s has %s %d, packed data needs %d",
		e.Category, e.Name, e.Field, e.Reported, e.Packed)
}
