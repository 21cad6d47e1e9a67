package assets

import (
	"io"

	"github.com/pkg/errors"
)

type file []byte

func loadFile(r io.Reader, _ string) (interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return file(data), nil
}

// LoadFile queues the loading of a raw file.
//
func (m *Manager) LoadFile(name string) {
	m.queue(key{KindFile, name}, loadFile)
}

// File returns the contents of a raw file.
//
func (m *Manager) File(name string) ([]byte, error) {
	v, err := m.get(key{KindFile, name}, loadFile)
	if err != nil {
		return nil, err
	}
	if data, ok := v.(file); ok {
		return data, nil
	}
	return nil, errors.Errorf("asset %s is not a raw file", name)
}
