package extract

import (
	"testing"

	"github.com/mikenye/overlay2d/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ccwSquare(half int32) Path {
	return Path{
		point.New(-half, -half),
		point.New(half, -half),
		point.New(half, half),
		point.New(-half, half),
	}
}

func cwSquare(half int32) Path {
	p := ccwSquare(half)
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

func TestPointInPolygon(t *testing.T) {
	sq := ccwSquare(10)
	assert.True(t, pointInPolygon(point.New(0, 0), sq))
	assert.False(t, pointInPolygon(point.New(100, 100), sq))
}

func TestNestAttachesHoleToSmallestEnclosingOuter(t *testing.T) {
	outer := ccwSquare(10)
	hole := cwSquare(5)
	shapes := nest([]Path{outer, hole})
	require.Len(t, shapes, 1)
	require.Len(t, shapes[0].Holes, 1)
}

func TestNestLeavesUnenclosedHoleUnattached(t *testing.T) {
	outer := ccwSquare(5)
	strayHole := cwSquare(5)
	for i := range strayHole {
		strayHole[i] = strayHole[i].Add(point.New(100, 100))
	}
	shapes := nest([]Path{outer, strayHole})
	require.Len(t, shapes, 1)
	assert.Empty(t, shapes[0].Holes)
}

func TestBeforePrefersSmallerClockwiseTurn(t *testing.T) {
	v := point.New(1, 0)
	a := point.New(0, -1)  // 90 deg clockwise from v
	b := point.New(-1, 0) // 180 deg from v
	assert.True(t, before(v, a, b, true))
	assert.True(t, before(v, b, a, false))
}
