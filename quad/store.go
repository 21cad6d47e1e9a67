// Package quad expands per entity records into per vertex records for quad
// based rendering.
//
// An entity, typically a sprite, owns one source record of SizePerEntity
// floats. Each entity is rendered as a quad of four vertices, each one with a
// destination record of SizePerVertex floats. Fields shared by all corners
// are duplicated in the four destination records and live at the same offset
// in source and destination records, so that a source record can be copied
// verbatim to each corner. Source records may be larger than destination
// records: fields past SizePerVertex are never uploaded.
//
// All indexing is trusted. Out of range entity indices panic or corrupt
// neighboring entities.
//
package quad

// Multiplier is the number of vertices per entity.
//
const Multiplier = 4

// Store holds the source and destination records of a fixed number of
// entities. Both buffers are allocated once.
//
type Store struct {
	Source      []float32
	Destination []float32

	Count         int
	SizePerEntity int
	SizePerVertex int
	Multiplier    int
}

// NewStore returns a new Store for count entities.
//
func NewStore(count, sizePerEntity, sizePerVertex int) *Store {
	return &Store{
		Source:        make([]float32, count*sizePerEntity),
		Destination:   make([]float32, count*Multiplier*sizePerVertex),
		Count:         count,
		SizePerEntity: sizePerEntity,
		SizePerVertex: sizePerVertex,
		Multiplier:    Multiplier,
	}
}

// SourceRecord returns the source record of entity i.
//
func (s *Store) SourceRecord(i int) []float32 {
	o := i * s.SizePerEntity
	return s.Source[o : o+s.SizePerEntity : o+s.SizePerEntity]
}

// VertexRecord returns the destination record of the given corner of entity
// i.
//
func (s *Store) VertexRecord(i, corner int) []float32 {
	o := (i*s.Multiplier + corner) * s.SizePerVertex
	return s.Destination[o : o+s.SizePerVertex : o+s.SizePerVertex]
}

// VertexCount returns the number of vertices in the destination buffer.
//
func (s *Store) VertexCount() int {
	return s.Count * s.Multiplier
}
