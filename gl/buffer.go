package gl

import (
	gogl "github.com/go-gl/gl/v4.1-core/gl"
)

// Buffer is a GPU buffer object bound to a fixed target.
//
type Buffer struct {
	Name   uint32
	Target uint32
	Size   int // size in bytes
}

// NewBuffer creates a buffer of the given size in bytes for target, like
// gogl.ARRAY_BUFFER or gogl.ELEMENT_ARRAY_BUFFER. If data is not nil, it must
// be a slice of at least size bytes.
//
func NewBuffer(target uint32, size int, data interface{}, usage uint32) *Buffer {
	b := &Buffer{Target: target, Size: size}
	gogl.GenBuffers(1, &b.Name)
	gogl.BindBuffer(target, b.Name)
	if data != nil {
		gogl.BufferData(target, size, gogl.Ptr(data), usage)
	} else {
		gogl.BufferData(target, size, nil, usage)
	}
	return b
}

func (b *Buffer) Bind() {
	gogl.BindBuffer(b.Target, b.Name)
}

// SubData binds b and uploads data at the start of the buffer.
//
func (b *Buffer) SubData(data []float32) {
	if len(data) == 0 {
		return
	}
	b.Bind()
	gogl.BufferSubData(b.Target, 0, len(data)*4, gogl.Ptr(data))
}

func (b *Buffer) Delete() {
	gogl.DeleteBuffers(1, &b.Name)
}
