// Package targetpose converts camera-observed target measurements (pitch, yaw,
// distance) into field-frame poses and back.
//
// Every function here is pure: identical inputs always produce identical outputs, and
// nothing is retained between calls. Numeric degeneracies are not validated; they
// propagate as ordinary IEEE-754 results (infinity or NaN). Callers must check the
// viewing geometry before trusting an estimate.
package targetpose

import (
	"math"

	"github.com/mechsense/fieldvision/spatialmath"
)

// DistanceToTarget estimates the horizontal range to a target from its elevation in
// the image. This can produce more stable results than a full pose solve when well
// tuned, if the full 6D pose is not required. The camera must have zero roll, and
// there must be a height differential between camera and target; the larger the
// differential, the more accurate the estimate. As the combined pitch approaches
// +/-90 degrees or the height differential approaches zero the result blows up
// (division by near-zero) and is returned as-is.
//
// Heights are in meters off the floor; pitches are in radians, positive up.
// cameraPitch is the camera's mounting pitch from the horizontal plane; targetPitch is
// the target's pitch in the camera frame.
func DistanceToTarget(cameraHeight, targetHeight, cameraPitch, targetPitch float64) float64 {
	return (targetHeight - cameraHeight) / math.Tan(cameraPitch+targetPitch)
}

// CameraToTargetTranslation estimates the target's planar displacement relative to the
// camera, given the range to the target and its observed yaw. The camera's forward
// axis is the reference direction.
func CameraToTargetTranslation(distance float64, yaw spatialmath.Rotation2D) spatialmath.Translation2D {
	return spatialmath.NewTranslation2DFromPolar(distance, yaw)
}

// EstimateFieldToCamera estimates the camera's field-frame pose from the target's pose
// relative to the camera and the target's known pose in the field.
func EstimateFieldToCamera(cameraToTarget spatialmath.Transform2D, fieldToTarget spatialmath.Pose2D) spatialmath.Pose2D {
	return fieldToTarget.TransformBy(cameraToTarget.Inverse())
}

// EstimateFieldToRobot estimates the robot's field-frame pose from the target's pose
// relative to the camera, the target's known pose in the field, and the robot's pose
// relative to the camera. If the camera is mounted 3 inches behind the robot's origin,
// cameraToRobot is a transform of 3 inches and no rotation.
func EstimateFieldToRobot(
	cameraToTarget spatialmath.Transform2D,
	fieldToTarget spatialmath.Pose2D,
	cameraToRobot spatialmath.Transform2D,
) spatialmath.Pose2D {
	return EstimateFieldToCamera(cameraToTarget, fieldToTarget).TransformBy(cameraToRobot)
}

// EstimateCameraToTarget estimates the transform from the camera to the target, given
// the target's camera-relative displacement, its known field pose, and the robot's
// current gyro heading. The transform's rotation encodes the target's orientation as
// seen from the camera.
func EstimateCameraToTarget(
	cameraToTargetTranslation spatialmath.Translation2D,
	fieldToTarget spatialmath.Pose2D,
	gyroAngle spatialmath.Rotation2D,
) spatialmath.Transform2D {
	return spatialmath.NewTransform2D(
		cameraToTargetTranslation,
		gyroAngle.Neg().Sub(fieldToTarget.Rotation),
	)
}

// EstimateFieldToRobotFromMeasurements estimates the robot's field-frame pose directly
// from raw camera measurements, chaining the elevation range estimate, the
// camera-relative translation, and the transform composition above.
func EstimateFieldToRobotFromMeasurements(
	cameraHeight, targetHeight, cameraPitch, targetPitch float64,
	targetYaw, gyroAngle spatialmath.Rotation2D,
	fieldToTarget spatialmath.Pose2D,
	cameraToRobot spatialmath.Transform2D,
) spatialmath.Pose2D {
	distance := DistanceToTarget(cameraHeight, targetHeight, cameraPitch, targetPitch)
	cameraToTargetTranslation := CameraToTargetTranslation(distance, targetYaw)
	cameraToTarget := EstimateCameraToTarget(cameraToTargetTranslation, fieldToTarget, gyroAngle)
	return EstimateFieldToRobot(cameraToTarget, fieldToTarget, cameraToRobot)
}

// EstimateFieldToRobotAprilTag estimates the robot's field-frame pose from a full 3D
// tag sighting: the tag's pose relative to the camera, the tag's known field pose, and
// the robot's pose relative to the camera.
func EstimateFieldToRobotAprilTag(
	cameraToTarget spatialmath.Transform3D,
	fieldRelativeTagPose spatialmath.Pose3D,
	cameraToRobot spatialmath.Transform3D,
) spatialmath.Pose3D {
	return fieldRelativeTagPose.TransformBy(cameraToTarget.Inverse()).TransformBy(cameraToRobot)
}

// YawToTarget returns the heading from the robot's pose to the target's position,
// relative to the robot's own heading.
func YawToTarget(robotPose, targetPose spatialmath.Pose2D) spatialmath.Rotation2D {
	relative := targetPose.Translation.Sub(robotPose.Translation)
	return relative.Angle().Sub(robotPose.Rotation)
}

// DistanceToPose returns the planar distance between the two poses.
func DistanceToPose(robotPose, targetPose spatialmath.Pose2D) float64 {
	return robotPose.Translation.Distance(targetPose.Translation)
}
