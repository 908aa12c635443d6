package spatialmath

// Pose2D is a position and orientation in a fixed planar frame. The zero value is the
// origin pose.
type Pose2D struct {
	Translation Translation2D
	Rotation    Rotation2D
}

// NewPose2D returns the pose with the given translation and rotation.
func NewPose2D(translation Translation2D, rotation Rotation2D) Pose2D {
	return Pose2D{translation, rotation}
}

// TransformBy returns the pose displaced by the given transform, which is interpreted
// in the pose's own frame.
func (p Pose2D) TransformBy(tf Transform2D) Pose2D {
	return Pose2D{
		Translation: p.Translation.Add(tf.Translation.RotateBy(p.Rotation)),
		Rotation:    p.Rotation.Add(tf.Rotation),
	}
}

// RelativeTo returns the transform that maps other onto p, i.e. p expressed in other's
// frame, satisfying other.TransformBy(p.RelativeTo(other)) == p.
func (p Pose2D) RelativeTo(other Pose2D) Transform2D {
	rotInv := other.Rotation.Neg()
	return Transform2D{
		Translation: p.Translation.Sub(other.Translation).RotateBy(rotInv),
		Rotation:    p.Rotation.Sub(other.Rotation),
	}
}

// AlmostEqual returns whether the two poses are within epsilon of each other in both
// translation and rotation.
func (p Pose2D) AlmostEqual(other Pose2D, epsilon float64) bool {
	return p.Translation.AlmostEqual(other.Translation, epsilon) &&
		p.Rotation.AlmostEqual(other.Rotation, epsilon)
}
