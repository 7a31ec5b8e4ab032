// Package split implements the edge splitter: given a bag of classified
// segments, it produces a planar subdivision where no two segments properly
// cross, by iterating an intersect-then-apply fix-point loop until no marks
// remain.
//
// Two strategies reach the same subdivision: List (sorted active-window
// all-pairs, for small inputs) and Tree (segtree-bucketed, for larger
// inputs); Auto picks between them on every fix-point iteration based on
// edge count and vertical extent. Grounded on original_source/src/split/solver_tree.rs and
// solver_list.rs's shared fix-point structure.
package split

import (
	"github.com/mikenye/overlay2d/options"
	"github.com/mikenye/overlay2d/point"
	"github.com/mikenye/overlay2d/segment"
	"github.com/mikenye/overlay2d/types"
)

// minHeight is the y-extent below which the List strategy is always
// preferred over Tree, per the spec's MIN_HEIGHT constant: below this, a
// segment tree's bucketing overhead can't pay for itself.
const minHeight = 64

// Segment is a working element of the splitter's mutable bag: a geometric
// edge tagged with which input shape it came from and whether its original
// contour direction runs from its (canonically ordered) A to B.
//
// Up survives splitting: every sub-segment produced by dividing a Segment
// inherits the same directional sense, which the fill engine's sweep later
// depends on to know which side of an edge is "below".
type Segment struct {
	Seg   segment.Segment
	Shape types.ShapeType
	Up    bool
}

// New builds a working Segment from two path-order points, recording
// whether canonicalizing the endpoint order reversed the original
// direction.
func New(a, b point.Point, shape types.ShapeType) (Segment, error) {
	seg, err := segment.New(a, b)
	if err != nil {
		return Segment{}, err
	}
	return Segment{Seg: seg, Shape: shape, Up: seg.A.Eq(a)}, nil
}

// Splitter resolves crossings in a segment bag according to a solver
// policy.
type Splitter struct {
	policy options.Policy
}

// NewSplitter creates a Splitter governed by policy.
func NewSplitter(policy options.Policy) *Splitter {
	return &Splitter{policy: policy}
}

// Split runs the fix-point loop to completion and returns the resolved
// bag. The input slice is not mutated; the returned slice may alias none,
// some, or all of it.
func (s *Splitter) Split(bag []Segment) []Segment {
	bag = dropZeroLength(bag)
	if len(bag) == 0 {
		return bag
	}

	strategy := s.policy.Strategy
	for {
		active := strategy
		if active == types.Auto {
			active = chooseStrategy(bag, s.policy)
		}

		var marks []Mark
		var anyRound bool
		switch active {
		case types.List:
			marks, anyRound = s.splitListPass(bag)
		default:
			marks, anyRound = collectMarksTree(bag)
		}

		if len(marks) == 0 && !anyRound {
			return bag
		}
		bag = apply(bag, marks)
	}
}

// dropZeroLength removes degenerate segments per the spec's error-handling
// policy: zero-length segments are dropped before splitting, never
// rejected.
func dropZeroLength(bag []Segment) []Segment {
	out := make([]Segment, 0, len(bag))
	for _, s := range bag {
		if !s.Seg.A.Eq(s.Seg.B) {
			out = append(out, s)
		}
	}
	return out
}

// chooseStrategy implements the Auto policy: List for edge counts up to
// ChunkListMaxSize or a vertical extent below minHeight; otherwise Tree,
// unless Space Layout's fragmentation estimate judges the tree not worth its
// bookkeeping.
func chooseStrategy(bag []Segment, pol options.Policy) types.Strategy {
	if len(bag) <= pol.ChunkListMaxSize {
		return types.List
	}

	yMin, yMax := bagYRange(bag)
	if int64(yMax)-int64(yMin) < minHeight {
		return types.List
	}
	if !shouldUseTree(bag, yMin, yMax) {
		return types.List
	}
	return types.Tree
}

func bagYRange(bag []Segment) (yMin, yMax int32) {
	yMin, yMax = bag[0].Seg.YRange()
	for _, s := range bag[1:] {
		lo, hi := s.Seg.YRange()
		if lo < yMin {
			yMin = lo
		}
		if hi > yMax {
			yMax = hi
		}
	}
	return yMin, yMax
}
