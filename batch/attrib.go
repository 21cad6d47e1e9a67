package batch

import (
	"github.com/db47h/nucleus/shader"
	"github.com/pkg/errors"
)

// pointer describes one vertex attribute pointer in a buffer.
//
type pointer struct {
	location   uint32
	components int32
	stride     int32 // bytes
	offset     uintptr
}

// pointers returns the attribute pointers of buffer b in l. Attributes
// without a location are skipped.
//
func pointers(l *shader.Layout, b shader.BufferIndex) ([]pointer, error) {
	stride := l.VertexStride(b)
	var ps []pointer
	for _, v := range l.Variables(b) {
		if v.Location < 0 {
			continue
		}
		c := v.Type.Components()
		if c < 1 || c > 4 {
			return nil, errors.Errorf("attribute %s: unsupported type %v", v.Name, v.Type)
		}
		if v.Count > 1 {
			return nil, errors.Errorf("attribute %s: arrays are not supported", v.Name)
		}
		ps = append(ps, pointer{
			location:   uint32(v.Location),
			components: int32(c),
			stride:     int32(stride * 4),
			offset:     uintptr(v.Offset * 4),
		})
	}
	return ps, nil
}
