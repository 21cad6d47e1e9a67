package shader

import (
	"go.uber.org/zap"
)

// Layout groups the attributes of a table by buffer index and gives the per
// vertex stride of each buffer. A Layout is immutable; relinking a program
// creates a new one.
//
type Layout struct {
	vars   [NumBufferIndex][]*Variable
	stride [NumBufferIndex]int
	mode   OffsetMode
}

// NewLayout returns the attribute layout of t. Offsets must have been
// assigned.
//
// In Dynamic mode, the stride of a buffer is the sum of the sizes of its
// attributes. In Static mode, it is the category's SizePerVertex for that
// buffer when set, or the end of the last attribute otherwise.
//
func NewLayout(t *Table) *Layout {
	l := &Layout{mode: t.mode}
	for _, v := range t.vars {
		if v.Class != Attribute {
			continue
		}
		b := v.Buffer()
		l.vars[b] = append(l.vars[b], v)
		if t.mode == Dynamic {
			l.stride[b] += v.Size()
		} else {
			l.stride[b] = max(l.stride[b], v.Offset+v.Size())
		}
	}
	if t.mode == Static {
		for b, sz := range t.cat.SizePerVertex {
			if sz > 0 && len(l.vars[b]) > 0 {
				l.stride[b] = sz
			}
		}
	}
	t.log.Debug("attribute layout",
		zap.String("category", t.cat.Name),
		zap.Ints("strides", l.stride[:]))
	return l
}

// VertexStride returns the size in floats of one vertex in buffer b. It
// returns 0 if no attribute uses b.
//
func (l *Layout) VertexStride(b BufferIndex) int {
	return l.stride[b]
}

// Variables returns the attributes stored in buffer b, in declaration order.
//
func (l *Layout) Variables(b BufferIndex) []*Variable {
	return l.vars[b]
}

// BufferCount returns the highest used buffer index + 1.
//
func (l *Layout) BufferCount() int {
	for b := NumBufferIndex - 1; b >= 0; b-- {
		if l.stride[b] > 0 {
			return b + 1
		}
	}
	return 0
}

// CreateAttributeBuffers allocates one buffer per buffer index, sized for
// vertexCount vertices. Unused buffer indices get a nil buffer.
//
func (l *Layout) CreateAttributeBuffers(vertexCount int) [NumBufferIndex][]float32 {
	var bufs [NumBufferIndex][]float32
	for b, s := range l.stride {
		if s > 0 {
			bufs[b] = make([]float32, s*vertexCount)
		}
	}
	return bufs
}

// PropertyOffset returns the offset of the attribute bound to p in buffer b,
// or NoOffset.
//
func (l *Layout) PropertyOffset(b BufferIndex, p Property) int {
	for _, v := range l.vars[b] {
		if v.Property() == p {
			return v.Offset
		}
	}
	return NoOffset
}
