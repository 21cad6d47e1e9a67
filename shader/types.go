// Package shader binds the variables of a linked GPU program to engine
// properties.
//
// A Category declares, once per kind of shader, which symbolic variable names
// map to which Property and which destination buffer. After a program is
// linked, Resolve matches the variables reported active by the linker against
// those declarations and AssignOffsets computes their float offsets, either
// from the declared static layout or by tightly packing the active variables.
// A Layout then gives per buffer strides for attribute data and Uniforms packs
// and uploads uniform data.
//
package shader

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StorageClass is the storage class of a shader variable.
//
type StorageClass int

const (
	Attribute StorageClass = iota
	Uniform
	UniformBlock
)

var classNames = [...]string{"attribute", "uniform", "uniformBlock"}

func (c StorageClass) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "StorageClass(" + strconv.Itoa(int(c)) + ")"
	}
	return classNames[c]
}

func (c StorageClass) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *StorageClass) UnmarshalText(text []byte) error {
	i, err := parseName(classNames[:], "storage class", text)
	*c = StorageClass(i)
	return err
}

// BufferIndex selects the physical buffer an attribute's data lands in.
//
type BufferIndex int

const (
	// Interleaved per vertex data, updated at runtime.
	Interleaved BufferIndex = iota
	// StaticBuffer holds per vertex data set once, like quad corners.
	StaticBuffer
	// BlockBacked data lives in a uniform block.
	BlockBacked

	NumBufferIndex = int(BlockBacked) + 1
)

var bufferNames = [...]string{"interleaved", "static", "block"}

func (b BufferIndex) String() string {
	if b < 0 || int(b) >= len(bufferNames) {
		return "BufferIndex(" + strconv.Itoa(int(b)) + ")"
	}
	return bufferNames[b]
}

func (b BufferIndex) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BufferIndex) UnmarshalText(text []byte) error {
	i, err := parseName(bufferNames[:], "buffer index", text)
	*b = BufferIndex(i)
	return err
}

// DataType is the GPU data type of a variable. Values are the GL enums
// reported by glGetActiveAttrib and glGetActiveUniform.
//
type DataType uint32

const (
	Int                  DataType = 0x1404
	Float                DataType = 0x1406
	FloatVec2            DataType = 0x8B50
	FloatVec3            DataType = 0x8B51
	FloatVec4            DataType = 0x8B52
	FloatMat2            DataType = 0x8B5A
	FloatMat3            DataType = 0x8B5B
	FloatMat4            DataType = 0x8B5C
	Sampler2D            DataType = 0x8B5E
	Sampler3D            DataType = 0x8B5F
	SamplerCube          DataType = 0x8B60
	Sampler2DShadow      DataType = 0x8B62
	Sampler2DArray       DataType = 0x8DC1
	Sampler2DArrayShadow DataType = 0x8DC4
	SamplerCubeShadow    DataType = 0x8DC5
)

// Components returns the number of floats (or texture units for samplers)
// occupied by one element of type t. It returns 0 for unknown types.
//
func (t DataType) Components() int {
	switch t {
	case Int, Float:
		return 1
	case FloatVec2:
		return 2
	case FloatVec3:
		return 3
	case FloatVec4, FloatMat2:
		return 4
	case FloatMat3:
		return 9
	case FloatMat4:
		return 16
	}
	if t.IsSampler() {
		return 1
	}
	return 0
}

// IsSampler returns true if t is a sampler type.
//
func (t DataType) IsSampler() bool {
	switch t {
	case Sampler2D, Sampler3D, SamplerCube, Sampler2DShadow,
		Sampler2DArray, Sampler2DArrayShadow, SamplerCubeShadow:
		return true
	}
	return false
}

func (t DataType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case FloatVec2:
		return "vec2"
	case FloatVec3:
		return "vec3"
	case FloatVec4:
		return "vec4"
	case FloatMat2:
		return "mat2"
	case FloatMat3:
		return "mat3"
	case FloatMat4:
		return "mat4"
	case Sampler2D:
		return "sampler2D"
	case Sampler3D:
		return "sampler3D"
	case SamplerCube:
		return "samplerCube"
	case Sampler2DShadow:
		return "sampler2DShadow"
	case Sampler2DArray:
		return "sampler2DArray"
	case Sampler2DArrayShadow:
		return "sampler2DArrayShadow"
	case SamplerCubeShadow:
		return "samplerCubeShadow"
	}
	return "DataType(0x" + strings.ToUpper(strconv.FormatUint(uint64(t), 16)) + ")"
}

// Property is the engine level meaning of a shader variable.
//
type Property int

const (
	NoProperty Property = iota
	Vertex
	Normal
	TexCoord
	Translate
	Rotate
	Scale
	Albedo
	Frame
	Emissive
	ModelView
	Projection
	ScreenSize
	TextureData
	Ambient
	Light0
	PBRData
	ViewPos
	Texture0
	UVData

	numProperties = iota
)

var propNames = [...]string{
	"none", "vertex", "normal", "texCoord", "translate", "rotate", "scale",
	"albedo", "frame", "emissive", "modelView", "projection", "screenSize",
	"textureData", "ambient", "light0", "pbrData", "viewPos", "texture0",
	"uvData",
}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propNames) {
		return "Property(" + strconv.Itoa(int(p)) + ")"
	}
	return propNames[p]
}

func (p Property) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Property) UnmarshalText(text []byte) error {
	i, err := parseName(propNames[:], "property", text)
	*p = Property(i)
	return err
}

func parseName(names []string, kind string, text []byte) (int, error) {
	s := string(text)
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, nil
		}
	}
	return 0, errors.Errorf("unknown %s %q", kind, s)
}
