// Package atlas maps animation frame indices to texture coordinates.
//
package atlas

import (
	"image"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FrameSize is the number of floats per frame: one (u, v) pair per quad
// corner, in top-left, top-right, bottom-left, bottom-right order.
//
const FrameSize = 8

// An Atlas is a precomputed table of frame texture coordinates.
//
type Atlas struct {
	frames [][FrameSize]float32
}

// Grid returns an atlas for a texture evenly divided in cols x rows cells.
// Frames are numbered left to right, top to bottom. If frames is 0, all
// cells are used.
//
func Grid(cols, rows, frames int) (*Atlas, error) {
	if cols <= 0 || rows <= 0 {
		return nil, errors.Errorf("invalid atlas grid %dx%d", cols, rows)
	}
	if frames == 0 {
		frames = cols * rows
	}
	if frames < 0 || frames > cols*rows {
		return nil, errors.Errorf("invalid frame count %d for a %dx%d atlas grid", frames, cols, rows)
	}
	a := &Atlas{frames: make([][FrameSize]float32, frames)}
	w, h := 1/float32(cols), 1/float32(rows)
	for i := range a.frames {
		u, v := float32(i%cols)*w, float32(i/cols)*h
		a.frames[i] = corners(u, v, u+w, v+h)
	}
	return a, nil
}

// FromRegions returns an atlas where each frame is a sub-rectangle, in
// pixels, of a texture of the given size.
//
func FromRegions(size image.Point, regions []image.Rectangle) *Atlas {
	a := &Atlas{frames: make([][FrameSize]float32, len(regions))}
	w, h := float32(size.X), float32(size.Y)
	for i, r := range regions {
		a.frames[i] = corners(
			float32(r.Min.X)/w, float32(r.Min.Y)/h,
			float32(r.Max.X)/w, float32(r.Max.Y)/h)
	}
	return a
}

func corners(u0, v0, u1, v1 float32) [FrameSize]float32 {
	return [FrameSize]float32{u0, v0, u1, v0, u0, v1, u1, v1}
}

type grid struct {
	Cols   int `yaml:"cols"`
	Rows   int `yaml:"rows"`
	Frames int `yaml:"frames"`
}

type file struct {
	Grid    *grid    `yaml:"grid"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Regions [][4]int `yaml:"regions"`
}

// Load decodes an atlas from YAML. The document either describes a grid:
//
//	grid: {cols: 4, rows: 2, frames: 7}
//
// or a list of regions in pixels, as x0, y0, x1, y1:
//
//	width: 256
//	height: 128
//	regions:
//	  - [0, 0, 64, 64]
//
func Load(r io.Reader) (*Atlas, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode atlas")
	}
	if f.Grid != nil {
		return Grid(f.Grid.Cols, f.Grid.Rows, f.Grid.Frames)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, errors.Errorf("invalid atlas size %dx%d", f.Width, f.Height)
	}
	rs := make([]image.Rectangle, len(f.Regions))
	for i, r := range f.Regions {
		rs[i] = image.Rect(r[0], r[1], r[2], r[3])
	}
	return FromRegions(image.Pt(f.Width, f.Height), rs), nil
}

// FrameCount returns the number of frames in a.
//
func (a *Atlas) FrameCount() int {
	return len(a.frames)
}

// Frame returns the texture coordinates of frame i. Indices past the last
// frame wrap around and negative indices return the first frame.
//
func (a *Atlas) Frame(i int) [FrameSize]float32 {
	n := len(a.frames)
	switch {
	case n == 0:
		return [FrameSize]float32{}
	case i < 0:
		i = 0
	case i >= n:
		i %= n
	}
	return a.frames[i]
}

// CopyTo copies as many whole frames as fit in dst, in frame order, and
// returns the number of frames copied. This is the layout of the UV data
// uniform block.
//
func (a *Atlas) CopyTo(dst []float32) int {
	n := min(len(dst)/FrameSize, len(a.frames))
	for i := 0; i < n; i++ {
		copy(dst[i*FrameSize:], a.frames[i][:])
	}
	return n
}
