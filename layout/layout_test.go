package layout_test

import (
	"testing"

	"github.com/mikenye/overlay2d/layout"
	"github.com/mikenye/overlay2d/point"
	"github.com/mikenye/overlay2d/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(t *testing.T, ax, ay, bx, by int32) segment.Segment {
	t.Helper()
	s, err := segment.New(point.New(ax, ay), point.New(bx, by))
	require.NoError(t, err)
	return s
}

func TestNewPicksPowerOfTwoLeaves(t *testing.T) {
	l := layout.New(0, 1000, 80)
	assert.GreaterOrEqual(t, l.Leaves(), 8)
	assert.Equal(t, l.Leaves(), 1<<l.Power)
}

func TestLeafIndexClamped(t *testing.T) {
	l := layout.New(0, 100, 16)
	assert.Equal(t, 0, l.LeafIndex(-50))
	assert.Equal(t, l.Leaves()-1, l.LeafIndex(500))
}

func TestLeafRangeMonotonic(t *testing.T) {
	l := layout.New(0, 100, 16)
	s := seg(t, 0, 10, 0, 90)
	lo, hi := l.LeafRange(s)
	assert.LessOrEqual(t, lo, hi)
}

func TestShouldFragmentTrueWhenSegmentsFitOneLeaf(t *testing.T) {
	l := layout.New(0, 1000, 8)
	segs := []segment.Segment{
		seg(t, 0, 1, 0, 2),
		seg(t, 0, 1, 0, 2),
	}
	assert.True(t, l.ShouldFragment(segs))
}

func TestShouldFragmentFalseWhenSegmentsSpanWholeRange(t *testing.T) {
	l := layout.New(0, 1000, 64)
	segs := make([]segment.Segment, 0, 8)
	for i := int32(0); i < 8; i++ {
		segs = append(segs, seg(t, i, 0, i, 1000))
	}
	assert.False(t, l.ShouldFragment(segs))
}

func TestShouldFragmentEmpty(t *testing.T) {
	l := layout.New(0, 100, 16)
	assert.False(t, l.ShouldFragment(nil))
}
