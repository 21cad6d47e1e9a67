// Package gl adapts a live OpenGL context to the shader package: program
// compilation and introspection, uniform upload and buffers.
//
// All functions must be called from the thread owning the GL context.
//
package gl

import (
	"fmt"
	"strings"

	"github.com/db47h/nucleus"
	gogl "github.com/go-gl/gl/v4.1-core/gl"
)

// Init initializes the GL function pointers for the current context.
//
func Init() error {
	return gogl.Init()
}

// Version returns the GL version string of the current context.
//
func Version() string {
	return gogl.GoStr(gogl.GetString(gogl.VERSION))
}

// CurrentProfile returns the GPU profile of the current context. Desktop
// contexts are mapped to the GLES version with the same feature set: uniform
// blocks are available from GL 3.1.
//
func CurrentProfile() nucleus.Profile {
	return ParseProfile(Version())
}

// ParseProfile returns the GPU profile matching a GL version string.
//
func ParseProfile(version string) nucleus.Profile {
	var (
		major, minor int
		es           bool
	)
	v := version
	if strings.HasPrefix(v, "OpenGL ES ") {
		es = true
		v = strings.TrimPrefix(v, "OpenGL ES ")
	}
	if _, err := fmt.Sscanf(v, "%d.%d", &major, &minor); err != nil {
		return nucleus.Profile{GLESMajor: 2}
	}
	if es {
		return nucleus.Profile{GLESMajor: major, GLESMinor: minor, UniformBlocks: major >= 3}
	}
	switch {
	case major > 4 || major == 4 && minor >= 3:
		return nucleus.Profile{GLESMajor: 3, GLESMinor: 1, UniformBlocks: true}
	case major > 3 || major == 3 && minor >= 1:
		return nucleus.Profile{GLESMajor: 3, GLESMinor: 0, UniformBlocks: true}
	}
	return nucleus.Profile{GLESMajor: 2}
}
