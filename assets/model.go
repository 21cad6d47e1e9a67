package assets

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// loadModel decodes a binary glTF file, or a JSON glTF file with embedded
// buffers.
//
func loadModel(r io.Reader, _ string) (interface{}, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadModel queues the loading of a glTF model.
//
func (m *Manager) LoadModel(name string) {
	m.queue(key{KindModel, name}, loadModel)
}

// Model returns a glTF model.
//
func (m *Manager) Model(name string) (*gltf.Document, error) {
	v, err := m.get(key{KindModel, name}, loadModel)
	if err != nil {
		return nil, err
	}
	if d, ok := v.(*gltf.Document); ok {
		return d, nil
	}
	return nil, errors.Errorf("asset %s is not a glTF model", name)
}
