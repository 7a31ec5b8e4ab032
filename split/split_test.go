package split_test

import (
	"testing"

	"github.com/mikenye/overlay2d/options"
	"github.com/mikenye/overlay2d/point"
	"github.com/mikenye/overlay2d/split"
	"github.com/mikenye/overlay2d/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeg(t *testing.T, ax, ay, bx, by int32, shape types.ShapeType) split.Segment {
	t.Helper()
	s, err := split.New(point.New(ax, ay), point.New(bx, by), shape)
	require.NoError(t, err)
	return s
}

func countEndpoints(bag []split.Segment, p point.Point) int {
	n := 0
	for _, s := range bag {
		if s.Seg.A.Eq(p) || s.Seg.B.Eq(p) {
			n++
		}
	}
	return n
}

func TestSplitResolvesProperCrossing(t *testing.T) {
	bag := []split.Segment{
		mustSeg(t, 0, 0, 10, 10, types.Subject),
		mustSeg(t, 0, 10, 10, 0, types.Clip),
	}
	s := split.NewSplitter(options.DefaultPolicy())
	out := s.Split(bag)

	require.Len(t, out, 4)
	crossing := point.New(5, 5)
	assert.Equal(t, 4, countEndpoints(out, crossing))
}

func TestSplitIsIdempotent(t *testing.T) {
	bag := []split.Segment{
		mustSeg(t, 0, 0, 10, 10, types.Subject),
		mustSeg(t, 0, 10, 10, 0, types.Clip),
	}
	s := split.NewSplitter(options.DefaultPolicy())
	once := s.Split(bag)
	twice := s.Split(once)
	assert.Len(t, twice, len(once))
}

func TestSplitHandlesEndOnEdge(t *testing.T) {
	bag := []split.Segment{
		mustSeg(t, 0, 0, 10, 0, types.Subject),
		mustSeg(t, 5, 0, 5, 10, types.Clip),
	}
	s := split.NewSplitter(options.DefaultPolicy())
	out := s.Split(bag)

	require.Len(t, out, 3)
	touch := point.New(5, 0)
	assert.Equal(t, 3, countEndpoints(out, touch))
}

func TestSplitLeavesDisjointSegmentsAlone(t *testing.T) {
	bag := []split.Segment{
		mustSeg(t, 0, 0, 1, 1, types.Subject),
		mustSeg(t, 100, 100, 101, 101, types.Clip),
	}
	s := split.NewSplitter(options.DefaultPolicy())
	out := s.Split(bag)
	assert.Len(t, out, 2)
}

func TestSplitKeepsZeroHeightDuplicatePair(t *testing.T) {
	bag := []split.Segment{
		mustSeg(t, 0, 0, 10, 0, types.Subject),
		mustSeg(t, 0, 0, 10, 0, types.Clip),
	}
	s := split.NewSplitter(options.DefaultPolicy())
	out := s.Split(bag)
	assert.NotEmpty(t, out)
}

func TestSplitWithListStrategyForced(t *testing.T) {
	pol := options.ApplyPolicyOptions(options.DefaultPolicy(), options.WithStrategy(types.List))
	bag := []split.Segment{
		mustSeg(t, 0, 0, 10, 10, types.Subject),
		mustSeg(t, 0, 10, 10, 0, types.Clip),
	}
	out := split.NewSplitter(pol).Split(bag)
	assert.Len(t, out, 4)
}

func TestSplitWithTreeStrategyForced(t *testing.T) {
	pol := options.ApplyPolicyOptions(options.DefaultPolicy(), options.WithStrategy(types.Tree))
	bag := []split.Segment{
		mustSeg(t, 0, 0, 10, 10, types.Subject),
		mustSeg(t, 0, 10, 10, 0, types.Clip),
	}
	out := split.NewSplitter(pol).Split(bag)
	assert.Len(t, out, 4)
}

func TestSplitManySegmentsBothStrategiesAgree(t *testing.T) {
	var bag []split.Segment
	for i := int32(0); i < 20; i++ {
		bag = append(bag, mustSeg(t, 0, i, 40, 20-i, types.Subject))
	}

	listPol := options.ApplyPolicyOptions(options.DefaultPolicy(), options.WithStrategy(types.List))
	treePol := options.ApplyPolicyOptions(options.DefaultPolicy(), options.WithStrategy(types.Tree))

	listOut := split.NewSplitter(listPol).Split(append([]split.Segment{}, bag...))
	treeOut := split.NewSplitter(treePol).Split(append([]split.Segment{}, bag...))

	assert.Equal(t, len(listOut), len(treeOut))
}
