// Package gltfmesh converts glTF mesh primitives to static vertex buffers laid
// out for a linked program.
//
package gltfmesh

import (
	"github.com/db47h/nucleus/shader"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Mesh is the vertex and index data of a glTF primitive.
//
type Mesh struct {
	Vertices    []float32 // static buffer data
	Indices     []uint32
	Stride      int // floats per vertex
	VertexCount int
	BaseColor   [4]float32
	Metallic    float32
	Roughness   float32
}

// Build reads the positions, normals and first texture coordinates of prim
// into a static buffer laid out by l. Attributes missing from the primitive
// are left zero; attributes missing from the layout are skipped. Primitives
// without indices get sequential indices.
//
func Build(doc *gltf.Document, prim *gltf.Primitive, l *shader.Layout) (*Mesh, error) {
	stride := l.VertexStride(shader.StaticBuffer)
	if stride == 0 {
		return nil, errors.New("layout has no static attributes")
	}
	pi, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, errors.New("primitive has no POSITION attribute")
	}
	pos, err := modeler.ReadPosition(doc, doc.Accessors[pi], nil)
	if err != nil {
		return nil, errors.Wrap(err, "read positions")
	}
	m := &Mesh{
		Vertices:    make([]float32, len(pos)*stride),
		Stride:      stride,
		VertexCount: len(pos),
	}
	if off := l.PropertyOffset(shader.StaticBuffer, shader.Vertex); off != shader.NoOffset {
		for i, p := range pos {
			copy(m.Vertices[i*stride+off:], p[:])
		}
	}

	if ni, ok := prim.Attributes[gltf.NORMAL]; ok {
		if off := l.PropertyOffset(shader.StaticBuffer, shader.Normal); off != shader.NoOffset {
			ns, err := modeler.ReadNormal(doc, doc.Accessors[ni], nil)
			if err != nil {
				return nil, errors.Wrap(err, "read normals")
			}
			for i := 0; i < len(ns) && i < len(pos); i++ {
				copy(m.Vertices[i*stride+off:], ns[i][:])
			}
		}
	}

	if ti, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if off := l.PropertyOffset(shader.StaticBuffer, shader.TexCoord); off != shader.NoOffset {
			uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[ti], nil)
			if err != nil {
				return nil, errors.Wrap(err, "read texture coordinates")
			}
			for i := 0; i < len(uvs) && i < len(pos); i++ {
				copy(m.Vertices[i*stride+off:], uvs[i][:])
			}
		}
	}

	if prim.Indices != nil {
		m.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, errors.Wrap(err, "read indices")
		}
	} else {
		m.Indices = make([]uint32, len(pos))
		for i := range m.Indices {
			m.Indices[i] = uint32(i)
		}
	}

	m.BaseColor = BaseColor(doc, prim)
	m.Metallic, m.Roughness = 1, 1
	if pbr := material(doc, prim); pbr != nil {
		m.Metallic = pbr.MetallicFactorOrDefault()
		m.Roughness = pbr.RoughnessFactorOrDefault()
	}
	return m, nil
}

func material(doc *gltf.Document, prim *gltf.Primitive) *gltf.PBRMetallicRoughness {
	if prim.Material == nil || int(*prim.Material) >= len(doc.Materials) {
		return nil
	}
	return doc.Materials[*prim.Material].PBRMetallicRoughness
}

// BaseColor returns the PBR base color factor of the material of prim, or
// opaque white if it has none.
//
func BaseColor(doc *gltf.Document, prim *gltf.Primitive) [4]float32 {
	pbr := material(doc, prim)
	if pbr == nil {
		return [4]float32{1, 1, 1, 1}
	}
	return pbr.BaseColorFactorOrDefault()
}

// Apply sets the material uniforms of a glTF program.
//
func (m *Mesh) Apply(u *shader.Uniforms) {
	u.Set(shader.Albedo, m.BaseColor[:]...)
	u.Set(shader.PBRData, m.Metallic, m.Roughness, 0, 0)
}
