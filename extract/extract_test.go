package extract_test

import (
	"testing"

	"github.com/mikenye/overlay2d/extract"
	"github.com/mikenye/overlay2d/fill"
	"github.com/mikenye/overlay2d/graph"
	"github.com/mikenye/overlay2d/options"
	"github.com/mikenye/overlay2d/point"
	"github.com/mikenye/overlay2d/split"
	"github.com/mikenye/overlay2d/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contourSegments builds working segments for a closed CCW/CW path, one per
// consecutive vertex pair (wrapping around to the first).
func contourSegments(t *testing.T, pts []point.Point, shape types.ShapeType) []split.Segment {
	t.Helper()
	out := make([]split.Segment, 0, len(pts))
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		s, err := split.New(a, b, shape)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func square(cx, cy, half int32) []point.Point {
	return []point.Point{
		point.New(cx-half, cy-half),
		point.New(cx-half, cy+half),
		point.New(cx+half, cy+half),
		point.New(cx+half, cy-half),
	}
}

// TestDifferenceSquareWithHole is the spec's concrete scenario 1: a 20x20
// subject square with a 10x10 clip square removed from its center should
// produce one shape with exactly one hole.
func TestDifferenceSquareWithHole(t *testing.T) {
	var bag []split.Segment
	bag = append(bag, contourSegments(t, square(0, 0, 10), types.Subject)...)
	bag = append(bag, contourSegments(t, square(0, 0, 5), types.Clip)...)

	resolved := split.NewSplitter(options.DefaultPolicy()).Split(bag)
	classified := fill.Classify(resolved, fill.NonZero)
	g := graph.Build(classified)
	shapes := extract.ExtractShapes(g, extract.Difference)

	require.Len(t, shapes, 1)
	assert.Positive(t, point.SignedArea2X(shapes[0].Outer))
	require.Len(t, shapes[0].Holes, 1)
	assert.Negative(t, point.SignedArea2X(shapes[0].Holes[0]))
}

func TestUnionDisjointSquaresYieldsTwoShapes(t *testing.T) {
	var bag []split.Segment
	bag = append(bag, contourSegments(t, square(0, 0, 5), types.Subject)...)
	bag = append(bag, contourSegments(t, square(100, 100, 5), types.Clip)...)

	resolved := split.NewSplitter(options.DefaultPolicy()).Split(bag)
	classified := fill.Classify(resolved, fill.NonZero)
	g := graph.Build(classified)
	shapes := extract.ExtractShapes(g, extract.Union)

	assert.Len(t, shapes, 2)
}

func TestIntersectDisjointSquaresYieldsNoShapes(t *testing.T) {
	var bag []split.Segment
	bag = append(bag, contourSegments(t, square(0, 0, 5), types.Subject)...)
	bag = append(bag, contourSegments(t, square(100, 100, 5), types.Clip)...)

	resolved := split.NewSplitter(options.DefaultPolicy()).Split(bag)
	classified := fill.Classify(resolved, fill.NonZero)
	g := graph.Build(classified)
	shapes := extract.ExtractShapes(g, extract.Intersect)

	assert.Empty(t, shapes)
}
