package shader

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Mapping declares how a shader variable binds to the engine.
//
type Mapping struct {
	Name     string       `yaml:"name"`
	Property Property     `yaml:"property"`
	Class    StorageClass `yaml:"class"`
	Buffer   BufferIndex  `yaml:"buffer"`
	Offset   int          `yaml:"offset"` // static offset in floats
	Size     int          `yaml:"size"`   // declared size in floats, 0 for unchecked
}

// Category is the set of variable mappings shared by all programs of one kind
// of shader, like sprites or glTF meshes.
//
type Category struct {
	Name     string    `yaml:"name"`
	Mappings []Mapping `yaml:"mappings"`
	// SizePerVertex is the static per vertex size of each attribute buffer.
	SizePerVertex [NumBufferIndex]int `yaml:"sizePerVertex"`
	// Passes lists the render passes other than the main pass that the
	// category provides programs for.
	Passes []Pass `yaml:"passes"`
}

// Mapping returns the mapping for the given symbolic name and class. Uniform
// and UniformBlock classes match each other.
//
func (c *Category) Mapping(name string, class StorageClass) *Mapping {
	for i := range c.Mappings {
		m := &c.Mappings[i]
		if m.Name == name && sameGroup(m.Class, class) {
			return m
		}
	}
	return nil
}

func sameGroup(a, b StorageClass) bool {
	return (a == Attribute) == (b == Attribute)
}

// LoadCategory decodes a YAML category description.
//
func LoadCategory(r io.Reader) (*Category, error) {
	var c Category
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decode shader category")
	}
	if c.Name == "" {
		return nil, errors.New("shader category has no name")
	}
	seen := make(map[string]bool, len(c.Mappings))
	for _, m := range c.Mappings {
		k := m.Name
		if m.Class == Attribute {
			k = "attribute " + k
		}
		if seen[k] {
			return nil, errors.Errorf("shader category %s: duplicate mapping %s", c.Name, m.Name)
		}
		seen[k] = true
	}
	return &c, nil
}
