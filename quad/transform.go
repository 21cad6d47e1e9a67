package quad

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ErrUnsupportedTransformMode is returned when setting a transform given as a
// matrix. Only decomposed transforms can be expanded per vertex.
//
var ErrUnsupportedTransformMode = errors.New("unsupported transform mode: matrix")

// AxisAngle is a rotation of Angle radians around Axis. Axis should be a unit
// vector.
//
type AxisAngle struct {
	Axis  mgl32.Vec3
	Angle float32
}

// RotationZ returns a rotation around the Z axis, the usual rotation of 2D
// sprites.
//
func RotationZ(angle float32) *AxisAngle {
	return &AxisAngle{Axis: mgl32.Vec3{0, 0, 1}, Angle: angle}
}

// Vec3 returns the rotation flattened to Axis * Angle. The angle is the length
// of the returned vector.
//
func (a *AxisAngle) Vec3() mgl32.Vec3 {
	return a.Axis.Mul(a.Angle)
}

// Transform is the transform of an entity. Nil fields are left unchanged,
// except Scale which defaults to {1, 1, 1}. A transform with a Matrix is in
// matrix mode.
//
type Transform struct {
	Translate *mgl32.Vec3
	Rotation  *AxisAngle
	Scale     *mgl32.Vec3
	Matrix    *mgl32.Mat4
}

// MatrixMode returns true if t is expressed as a matrix.
//
func (t *Transform) MatrixMode() bool {
	return t.Matrix != nil
}
