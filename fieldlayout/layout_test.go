package fieldlayout

import (
	"math"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/mechsense/fieldvision/spatialmath"
)

func TestLoadLayout(t *testing.T) {
	layout, err := LoadLayout("data/layout.json")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(layout.TagIDs()), test.ShouldEqual, 4)
	test.That(t, layout.FieldLength(), test.ShouldAlmostEqual, 16.54175)
	test.That(t, layout.FieldWidth(), test.ShouldAlmostEqual, 8.21055)

	pose, err := layout.TagPose(1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pose.Translation().X, test.ShouldAlmostEqual, 15.513558)
	test.That(t, pose.Translation().Y, test.ShouldAlmostEqual, 1.071626)
	test.That(t, pose.Translation().Z, test.ShouldAlmostEqual, 0.462788)
	// tag 1 faces back down the field
	_, _, yaw := pose.Rotation().EulerAngles()
	test.That(t, math.Abs(yaw), test.ShouldAlmostEqual, math.Pi)

	_, err = layout.TagPose(99)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "tag 99")
}

func TestLoadLayoutMissingFile(t *testing.T) {
	_, err := LoadLayout("data/nonexistent.json")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParseLayoutErrors(t *testing.T) {
	_, err := ParseLayout(strings.NewReader("{not json"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot parse layout")

	_, err = ParseLayout(strings.NewReader(`{"tags":[],"field":{"length":1,"width":1}}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no tags")

	duplicated := `{"tags":[
		{"ID":1,"pose":{"translation":{"x":0,"y":0,"z":0},"rotation":{"quaternion":{"W":1,"X":0,"Y":0,"Z":0}}}},
		{"ID":1,"pose":{"translation":{"x":1,"y":0,"z":0},"rotation":{"quaternion":{"W":1,"X":0,"Y":0,"Z":0}}}}
	],"field":{"length":1,"width":1}}`
	_, err = ParseLayout(strings.NewReader(duplicated))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "more than once")

	zeroQuat := `{"tags":[
		{"ID":7,"pose":{"translation":{"x":0,"y":0,"z":0},"rotation":{"quaternion":{"W":0,"X":0,"Y":0,"Z":0}}}}
	],"field":{"length":1,"width":1}}`
	_, err = ParseLayout(strings.NewReader(zeroQuat))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "zero rotation quaternion")
}

func TestEstimateRobotPose(t *testing.T) {
	layout, err := LoadLayout("data/layout.json")
	test.That(t, err, test.ShouldBeNil)

	// identity sighting and identity mount puts the robot on the tag itself
	tagPose, err := layout.TagPose(3)
	test.That(t, err, test.ShouldBeNil)
	got, err := layout.EstimateRobotPose(3, spatialmath.NewZeroTransform3D(), spatialmath.NewZeroTransform3D())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got.AlmostEqual(tagPose, 1e-9), test.ShouldBeTrue)

	// a sighting one meter in front of tag 3 (which faces +X) puts the camera a
	// meter further down the field
	sighting := spatialmath.NewTransform3D(r3.Vector{X: 1}, spatialmath.NewZeroRotation3D())
	got, err = layout.EstimateRobotPose(3, sighting, spatialmath.NewZeroTransform3D())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got.Translation().X, test.ShouldAlmostEqual, tagPose.Translation().X-1)
	test.That(t, got.Translation().Y, test.ShouldAlmostEqual, tagPose.Translation().Y)
	test.That(t, got.Translation().Z, test.ShouldAlmostEqual, tagPose.Translation().Z)

	_, err = layout.EstimateRobotPose(42, spatialmath.NewZeroTransform3D(), spatialmath.NewZeroTransform3D())
	test.That(t, err, test.ShouldNotBeNil)
}
