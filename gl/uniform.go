package gl

import (
	gogl "github.com/go-gl/gl/v4.1-core/gl"
)

// Context implements shader.Uploader for the current GL context.
//
type Context struct{}

func (Context) Uniform1fv(loc int32, n int32, v []float32) {
	if len(v) > 0 {
		gogl.Uniform1fv(loc, n, &v[0])
	}
}

func (Context) Uniform2fv(loc int32, n int32, v []float32) {
	if len(v) > 0 {
		gogl.Uniform2fv(loc, n, &v[0])
	}
}

func (Context) Uniform3fv(loc int32, n int32, v []float32) {
	if len(v) > 0 {
		gogl.Uniform3fv(loc, n, &v[0])
	}
}

func (Context) Uniform4fv(loc int32, n int32, v []float32) {
	if len(v) > 0 {
		gogl.Uniform4fv(loc, n, &v[0])
	}
}

func (Context) UniformMatrix2fv(loc int32, n int32, v []float32) {
	if len(v) > 0 {
		gogl.UniformMatrix2fv(loc, n, false, &v[0])
	}
}

func (Context) UniformMatrix3fv(loc int32, n int32, v []float32) {
	if len(v) > 0 {
		gogl.UniformMatrix3fv(loc, n, false, &v[0])
	}
}

func (Context) UniformMatrix4fv(loc int32, n int32, v []float32) {
	if len(v) > 0 {
		gogl.UniformMatrix4fv(loc, n, false, &v[0])
	}
}

func (Context) Uniform1iv(loc int32, n int32, v []int32) {
	if len(v) > 0 {
		gogl.Uniform1iv(loc, n, &v[0])
	}
}

func (Context) UniformBlockBinding(program uint32, blockIndex uint32, binding uint32) {
	gogl.UniformBlockBinding(program, blockIndex, binding)
}

// UniformBlockData writes data at the start of buffer with no padding.
// shader.Link only accepts blocks whose reported member layout matches.
//
func (Context) UniformBlockData(buffer uint32, data []float32) {
	if len(data) == 0 {
		return
	}
	gogl.BindBuffer(gogl.UNIFORM_BUFFER, buffer)
	gogl.BufferSubData(gogl.UNIFORM_BUFFER, 0, len(data)*4, gogl.Ptr(data))
}

func (Context) BindBufferBase(binding uint32, buffer uint32) {
	gogl.BindBufferBase(gogl.UNIFORM_BUFFER, binding, buffer)
}
