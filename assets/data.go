package assets

import (
	"io"

	"github.com/db47h/nucleus/atlas"
	"github.com/db47h/nucleus/shader"
	"github.com/pkg/errors"
)

// ShaderExt is the file extension of shader sources.
//
const ShaderExt = ".glsl"

func loadCategory(r io.Reader, _ string) (interface{}, error) {
	return shader.LoadCategory(r)
}

func loadAtlas(r io.Reader, _ string) (interface{}, error) {
	return atlas.Load(r)
}

type source string

func loadShader(r io.Reader, _ string) (interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return source(data), nil
}

// LoadCategory queues the loading of a YAML shader category.
//
func (m *Manager) LoadCategory(name string) {
	m.queue(key{KindCategory, name}, loadCategory)
}

// Category returns a shader category.
//
func (m *Manager) Category(name string) (*shader.Category, error) {
	v, err := m.get(key{KindCategory, name}, loadCategory)
	if err != nil {
		return nil, err
	}
	if c, ok := v.(*shader.Category); ok {
		return c, nil
	}
	return nil, errors.Errorf("asset %s is not a shader category", name)
}

// LoadAtlas queues the loading of a YAML atlas.
//
func (m *Manager) LoadAtlas(name string) {
	m.queue(key{KindAtlas, name}, loadAtlas)
}

// Atlas returns an atlas.
//
func (m *Manager) Atlas(name string) (*atlas.Atlas, error) {
	v, err := m.get(key{KindAtlas, name}, loadAtlas)
	if err != nil {
		return nil, err
	}
	if a, ok := v.(*atlas.Atlas); ok {
		return a, nil
	}
	return nil, errors.Errorf("asset %s is not an atlas", name)
}

// LoadShader queues the loading of the shader source with the given name.
// ShaderExt is appended to the name to get the file name.
//
func (m *Manager) LoadShader(name string) {
	m.queue(key{KindShader, name + ShaderExt}, loadShader)
}

// LoadVariant queues the loading of the vertex and fragment shader sources of
// a program variant.
//
func (m *Manager) LoadVariant(v shader.Variant) {
	m.LoadShader(v.SourceName(shader.VertexStage))
	m.LoadShader(v.SourceName(shader.FragmentStage))
}

// ShaderSource returns the shader source with the given name.
//
func (m *Manager) ShaderSource(name string) (string, error) {
	v, err := m.get(key{KindShader, name + ShaderExt}, loadShader)
	if err != nil {
		return "", err
	}
	if s, ok := v.(source); ok {
		return string(s), nil
	}
	return "", errors.Errorf("asset %s is not a shader source", name)
}

// VariantSources returns the vertex and fragment shader sources of a program
// variant.
//
func (m *Manager) VariantSources(v shader.Variant) (vertex, fragment string, err error) {
	if vertex, err = m.ShaderSource(v.SourceName(shader.VertexStage)); err != nil {
		return "", "", err
	}
	if fragment, err = m.ShaderSource(v.SourceName(shader.FragmentStage)); err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}
