package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/db47h/nucleus/quad"
	"github.com/db47h/nucleus/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const (
	spriteSize = 32
	frameRate  = 8 // animation frames per second
)

type sprite struct {
	vel   mgl32.Vec2
	spin  float32
	frame float32
}

// scene moves sprites around in a box centered on the origin and bounces
// them off its edges. Moved fields go through Expander.SetField so that
// vertex records are current after each step; scatter only writes source
// records and needs a bulk expansion.
//
type scene struct {
	e       *quad.Expander
	r       *rand.Rand
	sprites []sprite
	bounds  mgl32.Vec2 // half size of the box
	frames  int

	translate, rotate int
}

func newScene(e *quad.Expander, frames int, bounds mgl32.Vec2, seed int64) (*scene, error) {
	r := rand.New(rand.NewSource(seed))
	s := &scene{
		e:         e,
		r:         r,
		sprites:   make([]sprite, e.Store().Count),
		bounds:    bounds,
		frames:    frames,
		translate: e.Offset(shader.Translate),
		rotate:    e.Offset(shader.Rotate),
	}
	for i := range s.sprites {
		sp := &s.sprites[i]
		angle := r.Float64() * 2 * math.Pi
		speed := 50 + r.Float32()*200
		sp.vel = mgl32.Vec2{float32(math.Cos(angle)), float32(math.Sin(angle))}.Mul(speed)
		sp.spin = (r.Float32() - 0.5) * 4
		if frames > 0 {
			sp.frame = float32(r.Intn(frames))
		}
		pos := mgl32.Vec3{(r.Float32()*2 - 1) * bounds[0], (r.Float32()*2 - 1) * bounds[1], 0}
		scale := mgl32.Vec3{spriteSize, spriteSize, 1}.Mul(0.5 + r.Float32())
		if err := e.SetTransform(i, quad.Transform{Translate: &pos, Rotation: quad.RotationZ(0), Scale: &scale}); err != nil {
			return nil, errors.Wrapf(err, "sprite %d", i)
		}
		e.SetColorModel(i, color.NRGBA{
			R: uint8(128 + r.Intn(128)),
			G: uint8(128 + r.Intn(128)),
			B: uint8(128 + r.Intn(128)),
			A: 255,
		})
		e.SetFrame(i, int(sp.frame))
	}
	return s, nil
}

// step advances the simulation by dt seconds.
//
func (s *scene) step(dt float32) {
	st := s.e.Store()
	for i := range s.sprites {
		sp := &s.sprites[i]
		src := st.SourceRecord(i)
		if s.translate != shader.NoOffset {
			var p [2]float32
			copy(p[:], src[s.translate:])
			for k := range p {
				p[k] += sp.vel[k] * dt
				if p[k] > s.bounds[k] && sp.vel[k] > 0 || p[k] < -s.bounds[k] && sp.vel[k] < 0 {
					sp.vel[k] = -sp.vel[k]
				}
			}
			s.e.SetField(i, s.translate, p[:])
		}
		if s.rotate != shader.NoOffset {
			// rotation around Z only: the axis-angle vector is {0, 0, angle}
			a := [1]float32{src[s.rotate+2] + sp.spin*dt}
			s.e.SetField(i, s.rotate+2, a[:])
		}
		if s.frames > 0 {
			f := int(sp.frame)
			sp.frame += frameRate * dt
			if sp.frame >= float32(s.frames) {
				sp.frame -= float32(s.frames)
			}
			if int(sp.frame) != f {
				s.e.SetFrame(i, int(sp.frame))
			}
		}
	}
}

// scatter moves every sprite to a random position in the box. Only source
// records are written.
//
func (s *scene) scatter() {
	if s.translate == shader.NoOffset {
		return
	}
	st := s.e.Store()
	for i := range s.sprites {
		p := st.SourceRecord(i)[s.translate:]
		p[0] = (s.r.Float32()*2 - 1) * s.bounds[0]
		p[1] = (s.r.Float32()*2 - 1) * s.bounds[1]
	}
}
