// Package main is a command line tool for running the fieldvision estimators against
// hand-entered measurements: useful for sanity-checking camera mounts and field layouts.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/golang/geo/r3"
	"github.com/urfave/cli/v2"

	"github.com/mechsense/fieldvision/fieldlayout"
	"github.com/mechsense/fieldvision/logging"
	"github.com/mechsense/fieldvision/spatialmath"
	"github.com/mechsense/fieldvision/utils"
	"github.com/mechsense/fieldvision/vision/targetpose"
)

var logger = logging.NewLogger("fieldvision")

var app = &cli.App{
	Name:            "fieldvision",
	Usage:           "estimate target ranges and robot poses from camera measurements",
	HideHelpCommand: true,
	Commands: []*cli.Command{
		{
			Name:   "distance",
			Usage:  "estimate horizontal range to a target from its elevation in the image",
			Action: distanceAction,
			Flags: []cli.Flag{
				&cli.Float64Flag{
					Name:     "camera-height",
					Usage:    "camera height off the floor in meters",
					Required: true,
				},
				&cli.Float64Flag{
					Name:     "target-height",
					Usage:    "target height off the floor in meters",
					Required: true,
				},
				&cli.Float64Flag{
					Name:  "camera-pitch",
					Usage: "camera mounting pitch in degrees, positive up",
				},
				&cli.Float64Flag{
					Name:     "target-pitch",
					Usage:    "target pitch in the image in degrees, positive up",
					Required: true,
				},
			},
		},
		{
			Name:   "pose",
			Usage:  "estimate the robot's field pose from a tag sighting",
			Action: poseAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "layout",
					Usage:    "path to the field layout JSON",
					Required: true,
				},
				&cli.IntFlag{
					Name:     "tag",
					Usage:    "ID of the sighted tag",
					Required: true,
				},
				&cli.Float64Flag{
					Name:     "x",
					Usage:    "tag X relative to the camera in meters (forward)",
					Required: true,
				},
				&cli.Float64Flag{
					Name:  "y",
					Usage: "tag Y relative to the camera in meters (left)",
				},
				&cli.Float64Flag{
					Name:  "z",
					Usage: "tag Z relative to the camera in meters (up)",
				},
				&cli.Float64Flag{
					Name:  "tag-yaw",
					Usage: "tag yaw relative to the camera in degrees",
				},
				&cli.Float64Flag{
					Name:  "mount-x",
					Usage: "robot origin X relative to the camera in meters",
				},
				&cli.Float64Flag{
					Name:  "mount-y",
					Usage: "robot origin Y relative to the camera in meters",
				},
				&cli.Float64Flag{
					Name:  "mount-z",
					Usage: "robot origin Z relative to the camera in meters",
				},
				&cli.Float64Flag{
					Name:  "mount-yaw",
					Usage: "robot heading relative to the camera in degrees",
				},
			},
		},
	},
}

func distanceAction(c *cli.Context) error {
	distance := targetpose.DistanceToTarget(
		c.Float64("camera-height"),
		c.Float64("target-height"),
		utils.DegToRad(c.Float64("camera-pitch")),
		utils.DegToRad(c.Float64("target-pitch")),
	)
	if math.IsInf(distance, 0) || math.IsNaN(distance) {
		logger.Warnw("degenerate viewing geometry; the estimate is meaningless",
			"camera_pitch_deg", c.Float64("camera-pitch"),
			"target_pitch_deg", c.Float64("target-pitch"),
		)
	}
	fmt.Fprintf(c.App.Writer, "%.4f\n", distance)
	return nil
}

func poseAction(c *cli.Context) error {
	layout, err := fieldlayout.LoadLayout(c.String("layout"))
	if err != nil {
		return err
	}
	cameraToTarget := spatialmath.NewTransform3D(
		r3.Vector{X: c.Float64("x"), Y: c.Float64("y"), Z: c.Float64("z")},
		spatialmath.NewRotation3D(0, 0, utils.DegToRad(c.Float64("tag-yaw"))),
	)
	cameraToRobot := spatialmath.NewTransform3D(
		r3.Vector{X: c.Float64("mount-x"), Y: c.Float64("mount-y"), Z: c.Float64("mount-z")},
		spatialmath.NewRotation3D(0, 0, utils.DegToRad(c.Float64("mount-yaw"))),
	)
	pose, err := layout.EstimateRobotPose(c.Int("tag"), cameraToTarget, cameraToRobot)
	if err != nil {
		return err
	}
	translation := pose.Translation()
	roll, pitch, yaw := pose.Rotation().EulerAngles()
	fmt.Fprintf(c.App.Writer, "x=%.4f y=%.4f z=%.4f roll=%.2f pitch=%.2f yaw=%.2f\n",
		translation.X, translation.Y, translation.Z,
		utils.RadToDeg(roll), utils.RadToDeg(pitch), utils.RadToDeg(yaw),
	)
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
