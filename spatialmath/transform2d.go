package spatialmath

// Transform2D is a rigid displacement between two planar poses: a translation followed
// by a rotation, expressed in the frame of the pose it is applied to. The zero value is
// the identity transform.
type Transform2D struct {
	Translation Translation2D
	Rotation    Rotation2D
}

// NewTransform2D returns the transform with the given translation and rotation.
func NewTransform2D(translation Translation2D, rotation Rotation2D) Transform2D {
	return Transform2D{translation, rotation}
}

// NewTransform2DBetween returns the transform that maps the initial pose onto the
// final pose.
func NewTransform2DBetween(initial, final Pose2D) Transform2D {
	return final.RelativeTo(initial)
}

// Inverse returns the transform mapping in the opposite direction, such that
// tf.Compose(tf.Inverse()) is the identity.
func (tf Transform2D) Inverse() Transform2D {
	rotInv := tf.Rotation.Neg()
	return Transform2D{tf.Translation.Neg().RotateBy(rotInv), rotInv}
}

// Compose returns the transform equivalent to applying tf and then other.
func (tf Transform2D) Compose(other Transform2D) Transform2D {
	return Transform2D{
		Translation: tf.Translation.Add(other.Translation.RotateBy(tf.Rotation)),
		Rotation:    tf.Rotation.Add(other.Rotation),
	}
}

// AlmostEqual returns whether the two transforms are within epsilon of each other in
// both translation and rotation.
func (tf Transform2D) AlmostEqual(other Transform2D, epsilon float64) bool {
	return tf.Translation.AlmostEqual(other.Translation, epsilon) &&
		tf.Rotation.AlmostEqual(other.Rotation, epsilon)
}
