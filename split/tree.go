package split

import (
	"github.com/mikenye/overlay2d/layout"
	"github.com/mikenye/overlay2d/segment"
	"github.com/mikenye/overlay2d/segtree"
)

// collectMarksTree finds every crossing mark in bag using a segtree.Tree
// sized by layout.New: each segment is tested against everything already
// inserted (an incremental intersect-then-insert pass, so every pair is
// found exactly once), then inserted itself.
func collectMarksTree(bag []Segment) ([]Mark, bool) {
	yMin, yMax := bagYRange(bag)
	lay := layout.New(yMin, yMax, len(bag))
	tree := segtree.New(lay)

	var marks []Mark
	anyRound := false

	for i, s := range bag {
		e := segtree.Entry{Index: i, Seg: s.Seg}
		tree.Intersect(e, func(cur, other segtree.Entry) {
			if m, ok := intersectPair(other.Index, other.Seg, cur.Index, cur.Seg); ok {
				marks = append(marks, m)
				if m.Rounded {
					anyRound = true
				}
			}
		})
		tree.Insert(e)
	}
	return marks, anyRound
}

// shouldUseTree asks Space Layout whether bucketing this bag into a tree
// pays for its own bookkeeping: when segments are tall relative to the
// layout's leaves, fragmentation would inflate the effective segment count
// enough that a plain list scan is competitive instead.
func shouldUseTree(bag []Segment, yMin, yMax int32) bool {
	segs := make([]segment.Segment, len(bag))
	for i, s := range bag {
		segs[i] = s.Seg
	}
	lay := layout.New(yMin, yMax, len(bag))
	return lay.ShouldFragment(segs)
}
