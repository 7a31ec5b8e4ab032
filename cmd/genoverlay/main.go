// Command genoverlay generates a pair of star-shaped test polygons, runs
// them through the overlay2d pipeline, and prints the resulting shapes as
// JSON. It exists to produce the kind of fixture the spec's concrete
// end-to-end scenarios describe (rotated star unions, near-tangent
// overlaps) without hand-authoring coordinates.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/mikenye/overlay2d"
	"github.com/mikenye/overlay2d/point"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "genoverlay",
		Usage:     "Generates two star polygons, overlays them, and prints the result as JSON",
		UsageText: "genoverlay --points <n> --r0 <value> --r1 <value> --angle <radians> --rule <name> --fillrule <name>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "points",
				Usage:    "Number of star points per polygon",
				Value:    7,
				OnlyOnce: true,
				Validator: func(n int64) error {
					if n < 3 {
						return fmt.Errorf("points must be at least 3")
					}
					return nil
				},
			},
			&cli.FloatFlag{
				Name:     "r0",
				Usage:    "Inner radius of both the subject and clip stars",
				Value:    100,
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "r1",
				Usage:    "Outer radius of the subject star",
				Value:    200,
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "clipr1",
				Usage:    "Outer radius of the clip star",
				Value:    220,
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "angle",
				Usage:    "Rotation of the subject star, in radians",
				Value:    0,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "rule",
				Usage:    "Overlay rule: subject, clip, intersect, union, difference, inversedifference, xor",
				Value:    "union",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "fillrule",
				Usage:    "Fill rule: evenodd, nonzero",
				Value:    "nonzero",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	points := int(cmd.Int("points"))
	r0 := cmd.Float("r0")
	r1 := cmd.Float("r1")
	clipR1 := cmd.Float("clipr1")
	angle := cmd.Float("angle")

	fillRule, err := parseFillRule(cmd.String("fillrule"))
	if err != nil {
		return err
	}
	overlayRule, err := parseOverlayRule(cmd.String("rule"))
	if err != nil {
		return err
	}

	subject := star(points, r0, r1, angle)
	clip := star(points, r0, clipR1, 0)

	g, err := overlay2d.BuildGraph(
		[]overlay2d.Path{subject},
		[]overlay2d.Path{clip},
		fillRule,
		overlay2d.DefaultPolicy(),
	)
	if err != nil {
		return err
	}
	shapes := overlay2d.ExtractShapes(g, overlayRule)

	b, err := json.Marshal(shapes)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}

// star generates a closed path alternating between radii r0 and r1 around
// n points, rotated by angle radians, rounded to the nearest integer
// coordinate.
func star(n int, r0, r1, angle float64) overlay2d.Path {
	path := make(overlay2d.Path, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		theta := angle + float64(i)*math.Pi/float64(n)
		r := r0
		if i%2 == 1 {
			r = r1
		}
		x := int32(math.Round(r * math.Cos(theta)))
		y := int32(math.Round(r * math.Sin(theta)))
		path = append(path, point.New(x, y))
	}
	return path
}

func parseFillRule(s string) (overlay2d.FillRule, error) {
	switch s {
	case "evenodd":
		return overlay2d.EvenOdd, nil
	case "nonzero":
		return overlay2d.NonZero, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}

func parseOverlayRule(s string) (overlay2d.OverlayRule, error) {
	switch s {
	case "subject":
		return overlay2d.SubjectRule, nil
	case "clip":
		return overlay2d.ClipRule, nil
	case "intersect":
		return overlay2d.IntersectRule, nil
	case "union":
		return overlay2d.UnionRule, nil
	case "difference":
		return overlay2d.DifferenceRule, nil
	case "inversedifference":
		return overlay2d.InverseDifferenceRule, nil
	case "xor":
		return overlay2d.XorRule, nil
	default:
		return 0, fmt.Errorf("unknown overlay rule %q", s)
	}
}
