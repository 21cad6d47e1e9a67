package shader

import (
	"strings"

	"github.com/pkg/errors"
)

// Pass is a render pass.
//
type Pass int

const (
	PassUndefined Pass = iota
	PassAll
	PassMain
	PassShadow1
	PassShadow2
)

var passNames = [...]string{"undefined", "all", "main", "shadow1", "shadow2"}

func (p Pass) String() string {
	if p < 0 || int(p) >= len(passNames) {
		return "Pass(?)"
	}
	return passNames[p]
}

func (p Pass) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Pass) UnmarshalText(text []byte) error {
	i, err := parseName(passNames[:], "pass", text)
	*p = Pass(i)
	return err
}

// Shading is the shading model of a program.
//
type Shading int

const (
	Flat Shading = iota
	Textured
	Parametric
	PBR
)

var shadingNames = [...]string{"flat", "textured", "parametric", "pbr"}

func (s Shading) String() string {
	if s < 0 || int(s) >= len(shadingNames) {
		return "Shading(?)"
	}
	return shadingNames[s]
}

func (s *Shading) UnmarshalText(text []byte) error {
	i, err := parseName(shadingNames[:], "shading", text)
	*s = Shading(i)
	return err
}

// Stage is a shader stage.
//
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	if s == FragmentStage {
		return "fragment"
	}
	return "vertex"
}

// Variant identifies one program of a category.
//
type Variant struct {
	Pass     Pass
	Shading  Shading
	Category string
}

// Key returns a unique key for v, suitable for program caches.
//
func (v Variant) Key() string {
	var pass string
	if v.Pass != PassMain {
		pass = v.Pass.String()
	}
	return strings.ToLower(pass + v.Shading.String() + v.Category)
}

// SourceName returns the name of the shader source for the given stage,
// e.g. "texturedspritevertex".
//
func (v Variant) SourceName(stage Stage) string {
	return v.Key() + stage.String()
}

// SelectVariant returns the program variant of cat to use for the given pass
// and shading. PassUndefined, PassAll and PassMain select the main variant;
// other passes must be listed in cat.Passes.
//
func SelectVariant(cat *Category, pass Pass, shading Shading) (Variant, error) {
	switch pass {
	case PassUndefined, PassAll, PassMain:
		return Variant{Pass: PassMain, Shading: shading, Category: cat.Name}, nil
	}
	for _, p := range cat.Passes {
		if p == pass {
			return Variant{Pass: pass, Shading: shading, Category: cat.Name}, nil
		}
	}
	return Variant{}, errors.Errorf("shader category %s has no program for pass %v", cat.Name, pass)
}
