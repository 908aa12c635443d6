// Package spatialmath defines the planar and spatial geometric primitives used by the
// pose estimators: 2D translations, rotations, poses and rigid transforms, and their 3D
// counterparts backed by quaternions and dual quaternions.
package spatialmath

import (
	"math"

	"github.com/mechsense/fieldvision/utils"
)

// Rotation2D is a planar orientation. The zero value is the identity rotation.
// Angles are canonicalized to the range (-pi, pi].
type Rotation2D struct {
	theta float64
}

// NewRotation2D returns a rotation of the given angle in radians.
func NewRotation2D(radians float64) Rotation2D {
	return Rotation2D{canonicalRadians(radians)}
}

// NewRotation2DFromDegrees returns a rotation of the given angle in degrees.
func NewRotation2DFromDegrees(degrees float64) Rotation2D {
	return NewRotation2D(utils.DegToRad(degrees))
}

// NewRotation2DFromVector returns the rotation pointing along the given planar
// direction. A zero vector yields the identity rotation.
func NewRotation2DFromVector(x, y float64) Rotation2D {
	if x == 0 && y == 0 {
		return Rotation2D{}
	}
	return Rotation2D{math.Atan2(y, x)}
}

// Radians returns the angle in radians, in (-pi, pi].
func (r Rotation2D) Radians() float64 {
	return r.theta
}

// Degrees returns the angle in degrees.
func (r Rotation2D) Degrees() float64 {
	return utils.RadToDeg(r.theta)
}

// Cos returns the cosine of the rotation.
func (r Rotation2D) Cos() float64 {
	return math.Cos(r.theta)
}

// Sin returns the sine of the rotation.
func (r Rotation2D) Sin() float64 {
	return math.Sin(r.theta)
}

// Tan returns the tangent of the rotation.
func (r Rotation2D) Tan() float64 {
	return math.Tan(r.theta)
}

// Add returns the rotation composed with other.
func (r Rotation2D) Add(other Rotation2D) Rotation2D {
	return NewRotation2D(r.theta + other.theta)
}

// Sub returns the rotation composed with the inverse of other.
func (r Rotation2D) Sub(other Rotation2D) Rotation2D {
	return NewRotation2D(r.theta - other.theta)
}

// Neg returns the inverse rotation.
func (r Rotation2D) Neg() Rotation2D {
	return NewRotation2D(-r.theta)
}

// AlmostEqual returns whether the two rotations are within epsilon radians of each
// other, accounting for wraparound.
func (r Rotation2D) AlmostEqual(other Rotation2D, epsilon float64) bool {
	diff := utils.AngleDiffDeg(utils.ModAngDeg(r.Degrees()), utils.ModAngDeg(other.Degrees()))
	return utils.DegToRad(diff) < epsilon
}

// canonicalRadians maps an angle onto (-pi, pi].
func canonicalRadians(theta float64) float64 {
	if theta > -math.Pi && theta <= math.Pi {
		return theta
	}
	return math.Atan2(math.Sin(theta), math.Cos(theta))
}
