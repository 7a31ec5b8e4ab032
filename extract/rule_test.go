package extract

import (
	"testing"

	"github.com/mikenye/overlay2d/fill"
	"github.com/stretchr/testify/assert"
)

func TestCombineSubject(t *testing.T) {
	below, above := combine(Subject, fill.SubjectBelow)
	assert.True(t, below)
	assert.False(t, above)
}

func TestCombineIntersect(t *testing.T) {
	tag := fill.SubjectBelow | fill.ClipBelow | fill.SubjectAbove
	below, above := combine(Intersect, tag)
	assert.True(t, below)
	assert.False(t, above)
}

func TestCombineUnion(t *testing.T) {
	tag := fill.SubjectBelow
	below, above := combine(Union, tag)
	assert.True(t, below)
	assert.False(t, above)
}

func TestCombineXor(t *testing.T) {
	tag := fill.SubjectBelow | fill.ClipBelow
	below, _ := combine(Xor, tag)
	assert.False(t, below)
}

func TestBoundaryEmitsWhenSidesDiffer(t *testing.T) {
	emit, top := boundary(Subject, fill.SubjectAbove)
	assert.True(t, emit)
	assert.True(t, top)
}

func TestBoundarySkipsWhenSidesAgree(t *testing.T) {
	emit, _ := boundary(Subject, 0)
	assert.False(t, emit)

	emit, _ = boundary(Subject, fill.SubjectBelow|fill.SubjectAbove)
	assert.False(t, emit)
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "Union", Union.String())
	assert.Equal(t, "Xor", Xor.String())
	assert.Panics(t, func() { _ = Rule(99).String() })
}
