package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Pose3D is a position and orientation in a fixed 3D frame, backed by a unit dual
// quaternion. Use the constructors rather than the zero value; the real part of a dual
// quaternion must be a unit quaternion, not all zeroes.
type Pose3D struct {
	dq dualquat.Number
}

// NewZeroPose3D returns the origin pose.
func NewZeroPose3D() Pose3D {
	return Pose3D{identityDualQuat()}
}

// NewPose3D returns the pose with the given translation and rotation.
func NewPose3D(translation r3.Vector, rotation Rotation3D) Pose3D {
	return Pose3D{newDualQuat(translation, rotation.q)}
}

// Translation returns the position component of the pose.
func (p Pose3D) Translation() r3.Vector {
	return dualQuatTranslation(p.dq)
}

// Rotation returns the orientation component of the pose.
func (p Pose3D) Rotation() Rotation3D {
	return Rotation3D{p.dq.Real}
}

// TransformBy returns the pose displaced by the given transform, which is interpreted
// in the pose's own frame.
func (p Pose3D) TransformBy(tf Transform3D) Pose3D {
	return Pose3D{dualquat.Mul(p.dq, tf.dq)}
}

// RelativeTo returns the transform that maps other onto p, satisfying
// other.TransformBy(p.RelativeTo(other)) == p.
func (p Pose3D) RelativeTo(other Pose3D) Transform3D {
	return Transform3D{dualquat.Mul(dualquat.ConjQuat(other.dq), p.dq)}
}

// AlmostEqual returns whether the two poses are within epsilon of each other in both
// translation and rotation.
func (p Pose3D) AlmostEqual(other Pose3D, epsilon float64) bool {
	return p.Translation().Sub(other.Translation()).Norm() < epsilon &&
		p.Rotation().AlmostEqual(other.Rotation(), epsilon)
}

// Transform3D is a rigid displacement between two 3D poses, backed by a unit dual
// quaternion. Use the constructors rather than the zero value.
type Transform3D struct {
	dq dualquat.Number
}

// NewZeroTransform3D returns the identity transform.
func NewZeroTransform3D() Transform3D {
	return Transform3D{identityDualQuat()}
}

// NewTransform3D returns the transform with the given translation and rotation.
func NewTransform3D(translation r3.Vector, rotation Rotation3D) Transform3D {
	return Transform3D{newDualQuat(translation, rotation.q)}
}

// Translation returns the displacement component of the transform.
func (tf Transform3D) Translation() r3.Vector {
	return dualQuatTranslation(tf.dq)
}

// Rotation returns the rotation component of the transform.
func (tf Transform3D) Rotation() Rotation3D {
	return Rotation3D{tf.dq.Real}
}

// Inverse returns the transform mapping in the opposite direction. For a unit dual
// quaternion the inverse is its quaternion conjugate.
func (tf Transform3D) Inverse() Transform3D {
	return Transform3D{dualquat.ConjQuat(tf.dq)}
}

// Compose returns the transform equivalent to applying tf and then other.
func (tf Transform3D) Compose(other Transform3D) Transform3D {
	return Transform3D{dualquat.Mul(tf.dq, other.dq)}
}

// AlmostEqual returns whether the two transforms are within epsilon of each other in
// both translation and rotation.
func (tf Transform3D) AlmostEqual(other Transform3D, epsilon float64) bool {
	return tf.Translation().Sub(other.Translation()).Norm() < epsilon &&
		tf.Rotation().AlmostEqual(other.Rotation(), epsilon)
}

func identityDualQuat() dualquat.Number {
	return dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}
}

// newDualQuat encodes a rigid displacement as rot + 0.5*t*rot*eps. The rotation
// quaternion is normalized so that multiplication stays on the unit dual quaternions.
func newDualQuat(translation r3.Vector, rotation quat.Number) dualquat.Number {
	if length := quat.Abs(rotation); length == 0 {
		rotation = quat.Number{Real: 1}
	} else if length != 1 {
		rotation = quat.Scale(1/length, rotation)
	}
	tq := quat.Number{Imag: translation.X, Jmag: translation.Y, Kmag: translation.Z}
	return dualquat.Number{
		Real: rotation,
		Dual: quat.Scale(0.5, quat.Mul(tq, rotation)),
	}
}

// dualQuatTranslation multiplies the dual quaternion by its own conjugate, giving a
// dual quaternion whose real part is the identity and whose dual part is the
// real-world displacement.
func dualQuatTranslation(dq dualquat.Number) r3.Vector {
	t := dualquat.Mul(dq, dualquat.Conj(dq)).Dual
	return r3.Vector{X: t.Imag, Y: t.Jmag, Z: t.Kmag}
}
