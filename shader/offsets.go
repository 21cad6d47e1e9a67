package shader

import (
	"go.uber.org/zap"
)

// AssignOffsets computes the offset of every variable in t.
//
// In Static mode, offsets are copied from the mappings. In Dynamic mode,
// variables are packed in declaration order with one counter per attribute
// buffer index, one for plain uniforms, one per uniform block and a separate
// one for samplers: sampler offsets index the texture unit array, not the
// uniform float buffer.
//
// AssignOffsets returns ErrOffsetsAssigned if called more than once.
//
func (t *Table) AssignOffsets(mode OffsetMode) error {
	if t.assigned {
		return ErrOffsetsAssigned
	}
	t.assigned = true
	t.mode = mode

	var attr [NumBufferIndex]int
	for _, v := range t.vars {
		sz := v.Size()
		switch {
		case v.Class == Attribute:
			b := v.Buffer()
			if mode == Static {
				v.Offset = v.mapping.Offset
			} else {
				v.Offset = attr[b]
			}
			attr[b] = max(attr[b], v.Offset+sz)
		case v.Block != NoBlock:
			if mode == Static {
				v.Offset = v.mapping.Offset
			} else {
				v.Offset = t.blockSize[v.Block]
			}
			t.blockSize[v.Block] = max(t.blockSize[v.Block], v.Offset+sz)
		case v.Type.IsSampler():
			if mode == Static {
				v.Offset = v.mapping.Offset
			} else {
				v.Offset = t.samplerSize
			}
			t.samplerSize = max(t.samplerSize, v.Offset+sz)
		default:
			if mode == Static {
				v.Offset = v.mapping.Offset
			} else {
				v.Offset = t.uniformSize
			}
			t.uniformSize = max(t.uniformSize, v.Offset+sz)
		}
	}
	t.log.Debug("offsets assigned",
		zap.String("category", t.cat.Name),
		zap.Stringer("mode", mode),
		zap.Int("uniforms", t.uniformSize),
		zap.Int("samplers", t.samplerSize))
	return nil
}
