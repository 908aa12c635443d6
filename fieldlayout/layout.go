// Package fieldlayout loads known field-frame poses of fiducial tags from a JSON
// layout document, so tag sightings can be resolved into robot pose estimates.
package fieldlayout

import (
	"encoding/json"
	"io"
	"os"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
	"gonum.org/v1/gonum/num/quat"

	"github.com/mechsense/fieldvision/spatialmath"
	"github.com/mechsense/fieldvision/vision/targetpose"
)

// Layout holds the field-frame pose of every tag on the field, plus the field bounds.
// It is immutable after parsing and safe for concurrent use.
type Layout struct {
	tags        map[int]spatialmath.Pose3D
	fieldLength float64
	fieldWidth  float64
}

type layoutConfig struct {
	Tags  []tagConfig `json:"tags"`
	Field fieldConfig `json:"field"`
}

type tagConfig struct {
	ID   int        `json:"ID"`
	Pose poseConfig `json:"pose"`
}

type poseConfig struct {
	Translation translationConfig `json:"translation"`
	Rotation    rotationConfig    `json:"rotation"`
}

type translationConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type rotationConfig struct {
	Quaternion quaternionConfig `json:"quaternion"`
}

type quaternionConfig struct {
	W float64 `json:"W"`
	X float64 `json:"X"`
	Y float64 `json:"Y"`
	Z float64 `json:"Z"`
}

type fieldConfig struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// ParseLayout reads a JSON layout document from r.
func ParseLayout(r io.Reader) (*Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read layout")
	}
	var cfg layoutConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "cannot parse layout")
	}
	if len(cfg.Tags) == 0 {
		return nil, errors.New("layout defines no tags")
	}
	tags := make(map[int]spatialmath.Pose3D, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if _, ok := tags[tag.ID]; ok {
			return nil, errors.Errorf("layout defines tag %d more than once", tag.ID)
		}
		q := tag.Pose.Rotation.Quaternion
		if q.W == 0 && q.X == 0 && q.Y == 0 && q.Z == 0 {
			return nil, errors.Errorf("tag %d has a zero rotation quaternion", tag.ID)
		}
		tags[tag.ID] = spatialmath.NewPose3D(
			r3.Vector{X: tag.Pose.Translation.X, Y: tag.Pose.Translation.Y, Z: tag.Pose.Translation.Z},
			spatialmath.NewRotation3DFromQuaternion(quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}),
		)
	}
	return &Layout{
		tags:        tags,
		fieldLength: cfg.Field.Length,
		fieldWidth:  cfg.Field.Width,
	}, nil
}

// LoadLayout reads a JSON layout document from the given path.
func LoadLayout(path string) (*Layout, error) {
	file, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open layout %q", path)
	}
	defer goutils.UncheckedErrorFunc(file.Close)
	return ParseLayout(file)
}

// TagPose returns the field-frame pose of the given tag.
func (l *Layout) TagPose(id int) (spatialmath.Pose3D, error) {
	pose, ok := l.tags[id]
	if !ok {
		return spatialmath.NewZeroPose3D(), errors.Errorf("tag %d is not in the layout", id)
	}
	return pose, nil
}

// TagIDs returns the IDs of every tag in the layout.
func (l *Layout) TagIDs() []int {
	ids := make([]int, 0, len(l.tags))
	for id := range l.tags {
		ids = append(ids, id)
	}
	return ids
}

// FieldLength returns the field length in meters.
func (l *Layout) FieldLength() float64 {
	return l.fieldLength
}

// FieldWidth returns the field width in meters.
func (l *Layout) FieldWidth() float64 {
	return l.fieldWidth
}

// EstimateRobotPose resolves a tag sighting into the robot's estimated field pose,
// using the tag's layout pose and the camera's mounting transform.
func (l *Layout) EstimateRobotPose(
	tagID int,
	cameraToTarget, cameraToRobot spatialmath.Transform3D,
) (spatialmath.Pose3D, error) {
	tagPose, err := l.TagPose(tagID)
	if err != nil {
		return spatialmath.NewZeroPose3D(), err
	}
	return targetpose.EstimateFieldToRobotAprilTag(cameraToTarget, tagPose, cameraToRobot), nil
}
