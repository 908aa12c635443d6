package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Rotation3D is an orientation in 3D Euclidean space, backed by a unit quaternion.
// Use the constructors rather than the zero value; a zero quaternion is not a rotation.
type Rotation3D struct {
	q quat.Number
}

// NewZeroRotation3D returns the identity rotation.
func NewZeroRotation3D() Rotation3D {
	return Rotation3D{quat.Number{Real: 1}}
}

// NewRotation3D returns the rotation given by the intrinsic Tait-Bryan angles, applied
// yaw (about Z), then pitch (about Y), then roll (about X). All angles in radians.
func NewRotation3D(roll, pitch, yaw float64) Rotation3D {
	qr := axisQuat(r3.Vector{X: 1}, roll)
	qp := axisQuat(r3.Vector{Y: 1}, pitch)
	qy := axisQuat(r3.Vector{Z: 1}, yaw)
	return Rotation3D{quat.Mul(qy, quat.Mul(qp, qr))}
}

// NewRotation3DFromQuaternion returns the rotation represented by the given quaternion,
// normalized to a unit quaternion. The zero quaternion yields the identity rotation.
func NewRotation3DFromQuaternion(q quat.Number) Rotation3D {
	length := quat.Abs(q)
	if length == 0 {
		return NewZeroRotation3D()
	}
	return Rotation3D{quat.Scale(1/length, q)}
}

// NewRotation3DFromAxisAngle returns the rotation of the given angle in radians about
// the given axis. The axis need not be normalized.
func NewRotation3DFromAxisAngle(axis r3.Vector, angle float64) Rotation3D {
	if axis.Norm() == 0 {
		return NewZeroRotation3D()
	}
	return Rotation3D{axisQuat(axis.Normalize(), angle)}
}

// NewRotation3DFromMatrix returns the rotation encoded in the upper-left 3x3 block of
// the given homogeneous transform matrix.
func NewRotation3DFromMatrix(m mgl64.Mat4) Rotation3D {
	q := mgl64.Mat4ToQuat(m)
	return NewRotation3DFromQuaternion(quat.Number{Real: q.W, Imag: q.X(), Jmag: q.Y(), Kmag: q.Z()})
}

// Quaternion returns the backing unit quaternion.
func (r Rotation3D) Quaternion() quat.Number {
	return r.q
}

// Matrix returns the rotation as a homogeneous transform matrix with zero translation.
func (r Rotation3D) Matrix() mgl64.Mat4 {
	return mgl64.Quat{W: r.q.Real, V: mgl64.Vec3{r.q.Imag, r.q.Jmag, r.q.Kmag}}.Mat4()
}

// EulerAngles returns the intrinsic Tait-Bryan angles (roll, pitch, yaw) in radians.
// See https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles
func (r Rotation3D) EulerAngles() (roll, pitch, yaw float64) {
	w, x, y, z := r.q.Real, r.q.Imag, r.q.Jmag, r.q.Kmag
	roll = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	sinPitch := 2 * (w*y - x*z)
	if sinPitch > 1 {
		sinPitch = 1
	} else if sinPitch < -1 {
		sinPitch = -1
	}
	pitch = math.Asin(sinPitch)
	yaw = math.Atan2(2*(w*z+y*x), 1-2*(y*y+z*z))
	return roll, pitch, yaw
}

// RotateVector returns the vector rotated by the rotation.
func (r Rotation3D) RotateVector(v r3.Vector) r3.Vector {
	pt := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	rotated := quat.Mul(quat.Mul(r.q, pt), quat.Conj(r.q))
	return r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}
}

// Inverse returns the opposite rotation.
func (r Rotation3D) Inverse() Rotation3D {
	return Rotation3D{quat.Conj(r.q)}
}

// Mul returns the rotation equivalent to applying other and then r.
func (r Rotation3D) Mul(other Rotation3D) Rotation3D {
	return Rotation3D{quat.Mul(r.q, other.q)}
}

// AlmostEqual returns whether the two rotations are within epsilon of each other,
// accounting for the double cover of rotation space (q and -q are the same rotation).
func (r Rotation3D) AlmostEqual(other Rotation3D, epsilon float64) bool {
	return quatAlmostEqual(r.q, other.q, epsilon) || quatAlmostEqual(r.q, quatFlip(other.q), epsilon)
}

func quatAlmostEqual(a, b quat.Number, epsilon float64) bool {
	return math.Abs(a.Real-b.Real) < epsilon &&
		math.Abs(a.Imag-b.Imag) < epsilon &&
		math.Abs(a.Jmag-b.Jmag) < epsilon &&
		math.Abs(a.Kmag-b.Kmag) < epsilon
}

// quatFlip multiplies a quaternion by -1, giving the same orientation in the opposing octant.
func quatFlip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

func axisQuat(axis r3.Vector, angle float64) quat.Number {
	sin := math.Sin(angle / 2)
	return quat.Number{
		Real: math.Cos(angle / 2),
		Imag: axis.X * sin,
		Jmag: axis.Y * sin,
		Kmag: axis.Z * sin,
	}
}
