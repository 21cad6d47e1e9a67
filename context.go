package nucleus

import (
	"go.uber.org/zap"
)

// Profile describes the capabilities of the GPU context a program is linked
// against.
//
type Profile struct {
	GLESMajor     int  `yaml:"glesMajor"`
	GLESMinor     int  `yaml:"glesMinor"`
	UniformBlocks bool `yaml:"uniformBlocks"`
}

// DefaultProfile is a GLES 3.1 equivalent profile with uniform block support.
//
var DefaultProfile = Profile{GLESMajor: 3, GLESMinor: 1, UniformBlocks: true}

// SupportsUniformBlocks reports whether uniform blocks can back per-frame
// data such as atlas UVs.
//
func (p Profile) SupportsUniformBlocks() bool {
	return p.UniformBlocks && p.GLESMajor >= 3
}

// Light is a directional light with a color and a position.
//
type Light struct {
	Color    [4]float32
	Position [3]float32
	Radius   float32
}

// Values returns the light packed as 8 floats: rgba color, xyz position and
// radius.
//
func (l *Light) Values() [8]float32 {
	return [8]float32{
		l.Color[0], l.Color[1], l.Color[2], l.Color[3],
		l.Position[0], l.Position[1], l.Position[2],
		l.Radius,
	}
}

// DefaultLight is a white light far above the scene.
//
func DefaultLight() Light {
	return Light{
		Color:    [4]float32{1, 1, 1, 1},
		Position: [3]float32{10000, 100000, 10000},
	}
}

// Context holds the state shared by all components of a renderer. Create
// one with NewContext per GL context and pass it to the constructors that
// need it.
//
type Context struct {
	Log     *zap.Logger
	Profile Profile
	Light   Light
}

// A ContextOption configures a Context.
//
type ContextOption interface {
	set(*Context)
}

type cfn func(*Context)

func (f cfn) set(c *Context) { f(c) }

// WithLogger sets the context logger. The default is a no-op logger.
//
func WithLogger(l *zap.Logger) ContextOption {
	return cfn(func(c *Context) {
		if l != nil {
			c.Log = l
		}
	})
}

// WithProfile sets the GPU profile. The default is DefaultProfile.
//
func WithProfile(p Profile) ContextOption {
	return cfn(func(c *Context) { c.Profile = p })
}

// WithLight sets the global light.
//
func WithLight(l Light) ContextOption {
	return cfn(func(c *Context) { c.Light = l })
}

// NewContext returns a new Context.
//
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		Log:     zap.NewNop(),
		Profile: DefaultProfile,
		Light:   DefaultLight(),
	}
	for _, o := range opts {
		o.set(c)
	}
	return c
}
