package spatialmath

import (
	"github.com/golang/geo/r2"
)

// Translation2D is a displacement in the plane. The zero value is the zero displacement.
type Translation2D struct {
	X, Y float64
}

// NewTranslation2D returns the displacement with the given components.
func NewTranslation2D(x, y float64) Translation2D {
	return Translation2D{x, y}
}

// NewTranslation2DFromPolar returns the displacement of the given length pointing
// along the given angle.
func NewTranslation2DFromPolar(distance float64, angle Rotation2D) Translation2D {
	return Translation2D{distance * angle.Cos(), distance * angle.Sin()}
}

// Point returns the translation as an r2.Point.
func (t Translation2D) Point() r2.Point {
	return r2.Point{X: t.X, Y: t.Y}
}

func translation2DFromPoint(p r2.Point) Translation2D {
	return Translation2D{p.X, p.Y}
}

// Add returns the componentwise sum of the two displacements.
func (t Translation2D) Add(other Translation2D) Translation2D {
	return translation2DFromPoint(t.Point().Add(other.Point()))
}

// Sub returns the componentwise difference of the two displacements.
func (t Translation2D) Sub(other Translation2D) Translation2D {
	return translation2DFromPoint(t.Point().Sub(other.Point()))
}

// Neg returns the opposite displacement.
func (t Translation2D) Neg() Translation2D {
	return Translation2D{-t.X, -t.Y}
}

// Scale returns the displacement scaled by k.
func (t Translation2D) Scale(k float64) Translation2D {
	return translation2DFromPoint(t.Point().Mul(k))
}

// RotateBy returns the displacement rotated about the origin by the given rotation.
func (t Translation2D) RotateBy(r Rotation2D) Translation2D {
	cos, sin := r.Cos(), r.Sin()
	return Translation2D{t.X*cos - t.Y*sin, t.X*sin + t.Y*cos}
}

// Norm returns the length of the displacement.
func (t Translation2D) Norm() float64 {
	return t.Point().Norm()
}

// Distance returns the distance between the two points the displacements describe.
func (t Translation2D) Distance(other Translation2D) float64 {
	return t.Point().Sub(other.Point()).Norm()
}

// Angle returns the direction of the displacement.
func (t Translation2D) Angle() Rotation2D {
	return NewRotation2DFromVector(t.X, t.Y)
}

// AlmostEqual returns whether the two displacements are within epsilon of each other.
func (t Translation2D) AlmostEqual(other Translation2D, epsilon float64) bool {
	return t.Distance(other) < epsilon
}
