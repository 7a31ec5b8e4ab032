package point_test

import (
	"testing"

	"github.com/mikenye/overlay2d/point"
	"github.com/stretchr/testify/assert"
)

func TestKeyOrdering(t *testing.T) {
	tests := []struct {
		a, b  point.Point
		aLess bool
	}{
		{point.New(0, 0), point.New(1, 0), true},
		{point.New(1, 0), point.New(0, 1), true},
		{point.New(-5, 0), point.New(5, 0), true},
		{point.New(0, -5), point.New(0, 5), true},
		{point.New(-1, -1), point.New(1, -1), true},
		{point.New(3, 3), point.New(3, 3), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.aLess, tt.a.Key() < tt.b.Key(), "%v vs %v", tt.a, tt.b)
	}
}

func TestKeyEquality(t *testing.T) {
	a := point.New(7, -3)
	b := point.New(7, -3)
	assert.Equal(t, a.Key(), b.Key())
	assert.True(t, a.Eq(b))
}

func TestAddSub(t *testing.T) {
	a := point.New(3, 4)
	b := point.New(1, 2)
	assert.Equal(t, point.New(4, 6), a.Add(b))
	assert.Equal(t, point.New(2, 2), a.Sub(b))
}

func TestCross(t *testing.T) {
	a := point.New(1, 0)
	b := point.New(0, 1)
	assert.Equal(t, int64(1), a.Cross(b))
	assert.Equal(t, int64(-1), b.Cross(a))
}

func TestDot(t *testing.T) {
	a := point.New(2, 3)
	b := point.New(4, -1)
	assert.Equal(t, int64(5), a.Dot(b))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(3,-4)", point.New(3, -4).String())
}
