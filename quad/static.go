package quad

import (
	"github.com/db47h/nucleus/shader"
)

// IndicesPerQuad is the number of element indices per quad.
//
const IndicesPerQuad = 6

// Indices returns the element indices of quads quads: two triangles per quad,
// top-left, top-right, bottom-left then bottom-left, top-right, bottom-right.
//
func Indices(quads int) []uint32 {
	indices := make([]uint32, quads*IndicesPerQuad)
	for i, j := 0, uint32(0); i < len(indices); i, j = i+IndicesPerQuad, j+Multiplier {
		indices[i+0] = j + 0
		indices[i+1] = j + 1
		indices[i+2] = j + 2
		indices[i+3] = j + 2
		indices[i+4] = j + 1
		indices[i+5] = j + 3
	}
	return indices
}

var (
	cornerPos = [Multiplier][2]float32{{-0.5, 0.5}, {0.5, 0.5}, {-0.5, -0.5}, {0.5, -0.5}}
	cornerUV  = [Multiplier][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
)

// FillStatic writes the static vertex data of quads quads to dst: corner
// positions of a width x height quad centered on the origin to the Vertex
// attribute and base texture coordinates to the TexCoord attribute. Corners
// are in the same order as atlas frames.
//
func FillStatic(l *shader.Layout, dst []float32, quads int, width, height float32) {
	stride := l.VertexStride(shader.StaticBuffer)
	if stride == 0 {
		return
	}
	var pos, uv *shader.Variable
	for _, v := range l.Variables(shader.StaticBuffer) {
		switch v.Property() {
		case shader.Vertex:
			pos = v
		case shader.TexCoord:
			uv = v
		}
	}
	for q := 0; q < quads; q++ {
		for c := 0; c < Multiplier; c++ {
			rec := dst[(q*Multiplier+c)*stride:]
			if pos != nil {
				p := [3]float32{cornerPos[c][0] * width, cornerPos[c][1] * height, 0}
				copy(rec[pos.Offset:pos.Offset+min(pos.Size(), 3)], p[:])
			}
			if uv != nil {
				copy(rec[uv.Offset:uv.Offset+min(uv.Size(), 2)], cornerUV[c][:])
			}
		}
	}
}
