package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestRotation2DCanonicalRange(t *testing.T) {
	test.That(t, NewRotation2D(5*math.Pi/2).Radians(), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, NewRotation2D(-3*math.Pi/2).Radians(), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, NewRotation2DFromDegrees(450).Degrees(), test.ShouldAlmostEqual, 90)
	test.That(t, Rotation2D{}.Radians(), test.ShouldAlmostEqual, 0)
}

func TestRotation2DArithmetic(t *testing.T) {
	r := NewRotation2DFromDegrees(30)
	test.That(t, r.Add(NewRotation2DFromDegrees(60)).Degrees(), test.ShouldAlmostEqual, 90)
	test.That(t, r.Sub(NewRotation2DFromDegrees(45)).Degrees(), test.ShouldAlmostEqual, -15)
	test.That(t, r.Neg().Degrees(), test.ShouldAlmostEqual, -30)
	test.That(t, r.Cos(), test.ShouldAlmostEqual, math.Sqrt(3)/2)
	test.That(t, r.Sin(), test.ShouldAlmostEqual, 0.5)
	test.That(t, NewRotation2DFromDegrees(45).Tan(), test.ShouldAlmostEqual, 1)
	// composing past pi wraps around rather than accumulating
	test.That(t, NewRotation2DFromDegrees(170).Add(NewRotation2DFromDegrees(20)).Degrees(), test.ShouldAlmostEqual, -170)
}

func TestRotation2DFromVector(t *testing.T) {
	test.That(t, NewRotation2DFromVector(1, 1).Degrees(), test.ShouldAlmostEqual, 45)
	test.That(t, NewRotation2DFromVector(-1, 0).Degrees(), test.ShouldAlmostEqual, 180)
	test.That(t, NewRotation2DFromVector(0, 0).Radians(), test.ShouldAlmostEqual, 0)
}

func TestTranslation2D(t *testing.T) {
	a := NewTranslation2D(3, 4)
	test.That(t, a.Norm(), test.ShouldAlmostEqual, 5)
	test.That(t, a.Add(NewTranslation2D(1, -1)), test.ShouldResemble, NewTranslation2D(4, 3))
	test.That(t, a.Sub(NewTranslation2D(3, 4)).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, a.Neg(), test.ShouldResemble, NewTranslation2D(-3, -4))
	test.That(t, a.Scale(2), test.ShouldResemble, NewTranslation2D(6, 8))
	test.That(t, a.Distance(NewTranslation2D(0, 0)), test.ShouldAlmostEqual, 5)
	test.That(t, NewTranslation2D(1, 1).Angle().Degrees(), test.ShouldAlmostEqual, 45)

	rotated := NewTranslation2D(1, 0).RotateBy(NewRotation2DFromDegrees(90))
	test.That(t, rotated.X, test.ShouldAlmostEqual, 0)
	test.That(t, rotated.Y, test.ShouldAlmostEqual, 1)
}

func TestTranslation2DPolar(t *testing.T) {
	tr := NewTranslation2DFromPolar(2, NewRotation2DFromDegrees(60))
	test.That(t, tr.X, test.ShouldAlmostEqual, 1)
	test.That(t, tr.Y, test.ShouldAlmostEqual, math.Sqrt(3))
	test.That(t, tr.Norm(), test.ShouldAlmostEqual, 2)
}

func TestTransform2DInverseRoundTrip(t *testing.T) {
	tf := NewTransform2D(NewTranslation2D(2, -1), NewRotation2DFromDegrees(30))
	id := tf.Compose(tf.Inverse())
	test.That(t, id.AlmostEqual(Transform2D{}, 1e-9), test.ShouldBeTrue)

	pose := NewPose2D(NewTranslation2D(5, 3), NewRotation2DFromDegrees(120))
	back := pose.TransformBy(tf).TransformBy(tf.Inverse())
	test.That(t, back.AlmostEqual(pose, 1e-9), test.ShouldBeTrue)
}

func TestTransform2DCompose(t *testing.T) {
	// a quarter turn then a unit step lands on (0, 1) facing +Y
	step := NewTransform2D(NewTranslation2D(1, 0), Rotation2D{})
	turn := NewTransform2D(Translation2D{}, NewRotation2DFromDegrees(90))
	combined := turn.Compose(step)
	test.That(t, combined.Translation.X, test.ShouldAlmostEqual, 0)
	test.That(t, combined.Translation.Y, test.ShouldAlmostEqual, 1)
	test.That(t, combined.Rotation.Degrees(), test.ShouldAlmostEqual, 90)
}

func TestPose2DTransformBy(t *testing.T) {
	pose := NewPose2D(NewTranslation2D(1, 2), NewRotation2DFromDegrees(90))
	moved := pose.TransformBy(NewTransform2D(NewTranslation2D(3, 0), NewRotation2DFromDegrees(-90)))
	test.That(t, moved.Translation.X, test.ShouldAlmostEqual, 1)
	test.That(t, moved.Translation.Y, test.ShouldAlmostEqual, 5)
	test.That(t, moved.Rotation.Degrees(), test.ShouldAlmostEqual, 0)
}

func TestPose2DRelativeTo(t *testing.T) {
	origin := NewPose2D(NewTranslation2D(1, 1), NewRotation2DFromDegrees(45))
	target := NewPose2D(NewTranslation2D(4, 4), NewRotation2DFromDegrees(90))
	tf := target.RelativeTo(origin)
	test.That(t, origin.TransformBy(tf).AlmostEqual(target, 1e-9), test.ShouldBeTrue)
	test.That(t, NewTransform2DBetween(origin, target).AlmostEqual(tf, 1e-9), test.ShouldBeTrue)
}
