// Package fill classifies crossing-free segments with a 4-bit fill tag by
// sweeping a sorted active set ordered by y at the current x, per the
// spec's fill engine. Grounded on the teacher's sweep-line status
// structure (linesegment/sweepline_statusstructure_rbt.go), adapted here to
// an ordered btree keyed by interpolated y rather than the teacher's
// relationship-based comparator.
package fill

import (
	"github.com/mikenye/overlay2d/segment"
)

// Tag is a 4-bit mask recording, for an oriented edge, which of the
// subject and clip half-planes are filled on its below side and above
// side. Below is the half-plane on the right of the directed segment,
// above the half-plane on the left.
type Tag uint8

const (
	SubjectBelow Tag = 1 << iota
	SubjectAbove
	ClipBelow
	ClipAbove
)

// Has reports whether bit is set in t.
func (t Tag) Has(bit Tag) bool {
	return t&bit != 0
}

// Rule picks how a running crossing count is interpreted as "inside".
type Rule uint8

const (
	// EvenOdd treats a side as inside when an odd number of same-color
	// edges have been crossed below it.
	EvenOdd Rule = iota
	// NonZero treats a side as inside when the signed sum of same-color
	// winding contributions below it is non-zero.
	NonZero
)

func (r Rule) String() string {
	switch r {
	case EvenOdd:
		return "EvenOdd"
	case NonZero:
		return "NonZero"
	default:
		panic("fill: invalid Rule")
	}
}

// Segment is a split segment carrying its resolved fill tag, the unit the
// overlay graph builder consumes.
type Segment struct {
	Seg segment.Segment
	Tag Tag
}

func applyRule(rule Rule, count int, up bool) int {
	if rule == EvenOdd {
		return count + 1
	}
	if up {
		return count + 1
	}
	return count - 1
}

func inside(rule Rule, count int) bool {
	if rule == EvenOdd {
		return count%2 != 0
	}
	return count != 0
}
