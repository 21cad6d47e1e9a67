package gl

import (
	"strings"

	"github.com/db47h/nucleus/shader"
	gogl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

// Shader is a compiled shader object.
//
type Shader uint32

// NewShader compiles a shader of the given type, gogl.VERTEX_SHADER or
// gogl.FRAGMENT_SHADER.
//
func NewShader(typ uint32, source string) (Shader, error) {
	s := gogl.CreateShader(typ)
	csrc, free := gogl.Strs(source + "\x00")
	gogl.ShaderSource(s, 1, csrc, nil)
	free()
	gogl.CompileShader(s)

	var status int32
	gogl.GetShaderiv(s, gogl.COMPILE_STATUS, &status)
	if status == gogl.FALSE {
		var n int32
		gogl.GetShaderiv(s, gogl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gogl.GetShaderInfoLog(s, n, nil, gogl.Str(log))
		gogl.DeleteShader(s)
		return 0, errors.Errorf("compile shader: %s", strings.TrimRight(log, "\x00"))
	}
	return Shader(s), nil
}

func (s Shader) Delete() {
	gogl.DeleteShader(uint32(s))
}

// Program is a linked program object.
//
type Program uint32

// NewProgram links a program from compiled shaders.
//
func NewProgram(shaders ...Shader) (Program, error) {
	p := gogl.CreateProgram()
	for _, s := range shaders {
		gogl.AttachShader(p, uint32(s))
	}
	gogl.LinkProgram(p)

	var status int32
	gogl.GetProgramiv(p, gogl.LINK_STATUS, &status)
	if status == gogl.FALSE {
		var n int32
		gogl.GetProgramiv(p, gogl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gogl.GetProgramInfoLog(p, n, nil, gogl.Str(log))
		gogl.DeleteProgram(p)
		return 0, errors.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}
	return Program(p), nil
}

// NewProgramFromSources compiles and links a program from vertex and fragment
// shader sources.
//
func NewProgramFromSources(vertex, fragment string) (Program, error) {
	vs, err := NewShader(gogl.VERTEX_SHADER, vertex)
	if err != nil {
		return 0, errors.Wrap(err, "vertex shader")
	}
	defer vs.Delete()
	fs, err := NewShader(gogl.FRAGMENT_SHADER, fragment)
	if err != nil {
		return 0, errors.Wrap(err, "fragment shader")
	}
	defer fs.Delete()
	return NewProgram(vs, fs)
}

func (p Program) Delete() {
	gogl.DeleteProgram(uint32(p))
}

func (p Program) Use() {
	gogl.UseProgram(uint32(p))
}

// Info returns the active attributes, uniforms and uniform blocks of p. A
// uniform buffer is created for each block and bound to the binding point
// equal to the block index; the buffers are deleted if introspection fails.
// Block members carry the offsets and strides reported by the linker.
// Built-in variables are skipped.
//
func (p Program) Info() (shader.ProgramInfo, error) {
	var (
		info   shader.ProgramInfo
		h      = uint32(p)
		n      int32
		maxLen int32
	)

	gogl.GetProgramiv(h, gogl.ACTIVE_ATTRIBUTES, &n)
	gogl.GetProgramiv(h, gogl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	buf := make([]uint8, maxLen+1)
	for i := uint32(0); i < uint32(n); i++ {
		var (
			length, size int32
			typ          uint32
		)
		gogl.GetActiveAttrib(h, i, int32(len(buf)), &length, &size, &typ, &buf[0])
		name := string(buf[:length])
		if strings.HasPrefix(name, "gl_") {
			continue
		}
		info.Attributes = append(info.Attributes, shader.Variable{
			Name:     name,
			Class:    shader.Attribute,
			Type:     shader.DataType(typ),
			Count:    int(size),
			Location: gogl.GetAttribLocation(h, gogl.Str(name+"\x00")),
			Block:    shader.NoBlock,
		})
	}

	gogl.GetProgramiv(h, gogl.ACTIVE_UNIFORMS, &n)
	gogl.GetProgramiv(h, gogl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if int(maxLen+1) > len(buf) {
		buf = make([]uint8, maxLen+1)
	}
	for i := uint32(0); i < uint32(n); i++ {
		var (
			length, size, block int32
			typ                 uint32
		)
		gogl.GetActiveUniform(h, i, int32(len(buf)), &length, &size, &typ, &buf[0])
		gogl.GetActiveUniformsiv(h, 1, &i, gogl.UNIFORM_BLOCK_INDEX, &block)
		name := string(buf[:length])
		if strings.HasPrefix(name, "gl_") {
			continue
		}
		v := shader.Variable{
			Name:     name,
			Class:    shader.Uniform,
			Type:     shader.DataType(typ),
			Count:    int(size),
			Location: -1,
			Block:    int(block),
		}
		if block < 0 {
			v.Block = shader.NoBlock
			v.Location = gogl.GetUniformLocation(h, gogl.Str(name+"\x00"))
		} else {
			var off, arrayStride, matrixStride int32
			gogl.GetActiveUniformsiv(h, 1, &i, gogl.UNIFORM_OFFSET, &off)
			gogl.GetActiveUniformsiv(h, 1, &i, gogl.UNIFORM_ARRAY_STRIDE, &arrayStride)
			gogl.GetActiveUniformsiv(h, 1, &i, gogl.UNIFORM_MATRIX_STRIDE, &matrixStride)
			v.Member = &shader.MemberLayout{
				Offset:       int(off),
				ArrayStride:  int(arrayStride),
				MatrixStride: int(matrixStride),
			}
		}
		info.Uniforms = append(info.Uniforms, v)
	}

	gogl.GetProgramiv(h, gogl.ACTIVE_UNIFORM_BLOCKS, &n)
	for i := uint32(0); i < uint32(n); i++ {
		var length, size int32
		gogl.GetActiveUniformBlockiv(h, i, gogl.UNIFORM_BLOCK_NAME_LENGTH, &length)
		name := make([]uint8, length+1)
		gogl.GetActiveUniformBlockName(h, i, int32(len(name)), &length, &name[0])
		gogl.GetActiveUniformBlockiv(h, i, gogl.UNIFORM_BLOCK_DATA_SIZE, &size)
		var b uint32
		gogl.GenBuffers(1, &b)
		gogl.BindBuffer(gogl.UNIFORM_BUFFER, b)
		gogl.BufferData(gogl.UNIFORM_BUFFER, int(size), nil, gogl.DYNAMIC_DRAW)
		info.Blocks = append(info.Blocks, shader.Block{
			Index:   int(i),
			Name:    string(name[:length]),
			Binding: i,
			Buffer:  b,
			Size:    int(size),
		})
	}
	gogl.BindBuffer(gogl.UNIFORM_BUFFER, 0)

	if e := gogl.GetError(); e != gogl.NO_ERROR {
		deleteBlocks(info.Blocks)
		return shader.ProgramInfo{}, errors.Errorf("program introspection: GL error 0x%x", e)
	}
	return info, nil
}

// Link links a program from sources, introspects it and binds it to a
// shader category.
//
func Link(vertex, fragment string, cat *shader.Category, opts ...shader.Option) (*shader.Program, error) {
	p, err := NewProgramFromSources(vertex, fragment)
	if err != nil {
		return nil, errors.Wrapf(err, "shader category %s", cat.Name)
	}
	info, err := p.Info()
	if err != nil {
		p.Delete()
		return nil, err
	}
	sp, err := shader.Link(uint32(p), cat, info, opts...)
	if err != nil {
		deleteBlocks(info.Blocks)
		p.Delete()
		return nil, err
	}
	return sp, nil
}

// Release deletes a program returned by Link along with the buffers backing
// its uniform blocks.
//
func Release(p *shader.Program) {
	deleteBlocks(p.Blocks())
	Program(p.Handle).Delete()
}

// deleteBlocks deletes the buffers of blocks and clears their names.
func deleteBlocks(blocks []shader.Block) {
	names := blockBuffers(blocks)
	if len(names) > 0 {
		gogl.DeleteBuffers(int32(len(names)), &names[0])
	}
	for i := range blocks {
		blocks[i].Buffer = 0
	}
}

func blockBuffers(blocks []shader.Block) []uint32 {
	var names []uint32
	for _, b := range blocks {
		if b.Buffer != 0 {
			names = append(names, b.Buffer)
		}
	}
	return names
}
