// Package layout computes the spatial partition that the segment tree
// (package segtree) indexes over: a power-of-two split of a y-range into
// leaves, sized so each leaf holds a manageable number of segments, plus the
// policy decision of whether pre-fragmenting long segments into per-leaf
// pieces is worth its bookkeeping cost.
//
// This is grounded on original_source/src/split/solver_tree.rs's SpaceLayout
// and its is_fragmentation_required_for_edges check.
package layout

import "github.com/mikenye/overlay2d/segment"

// targetLeafSegments is the midpoint of the leaf occupancy range the spec
// calls for (~4-16 segments/leaf): enough to amortize tree-descent cost
// without building oversized per-leaf scan lists.
const targetLeafSegments = 8

// fragmentationInflationPercent bounds how much pre-fragmenting a segment
// set is allowed to inflate the segment count before it's judged not worth
// doing; see ShouldFragment.
const fragmentationInflationPercent = 110

// SpaceLayout describes a power-of-two partition of [YMin, YMax] into
// 1<<Power leaves of equal width, rounded up so the leaves cover the whole
// range (the last leaf may extend past YMax).
type SpaceLayout struct {
	YMin, YMax int32
	Power      int
}

// New picks a layout covering [yMin, yMax] sized for edgeCount segments,
// aiming for targetLeafSegments segments per leaf.
func New(yMin, yMax int32, edgeCount int) SpaceLayout {
	if yMax < yMin {
		yMin, yMax = yMax, yMin
	}
	wantLeaves := edgeCount / targetLeafSegments
	power := 0
	for (1 << power) < wantLeaves {
		power++
	}
	// Cap the power so very large edge counts don't allocate an excessive
	// number of tree nodes.
	const maxPower = 16
	if power > maxPower {
		power = maxPower
	}
	return SpaceLayout{YMin: yMin, YMax: yMax, Power: power}
}

// Leaves returns the number of leaves in the partition.
func (l SpaceLayout) Leaves() int {
	return 1 << l.Power
}

// leafWidth returns the y-span covered by one leaf, rounded up so that
// Leaves() leaves fully cover [YMin, YMax].
func (l SpaceLayout) leafWidth() int64 {
	span := int64(l.YMax) - int64(l.YMin) + 1
	leaves := int64(l.Leaves())
	return (span + leaves - 1) / leaves
}

// LeafIndex returns the index of the leaf containing y, clamped to the
// valid leaf range.
func (l SpaceLayout) LeafIndex(y int32) int {
	w := l.leafWidth()
	idx := (int64(y) - int64(l.YMin)) / w
	if idx < 0 {
		idx = 0
	}
	if max := int64(l.Leaves() - 1); idx > max {
		idx = max
	}
	return int(idx)
}

// LeafRange returns the inclusive [lo, hi] leaf indices a segment's y-extent
// touches.
func (l SpaceLayout) LeafRange(s segment.Segment) (lo, hi int) {
	yLo, yHi := s.YRange()
	return l.LeafIndex(yLo), l.LeafIndex(yHi)
}

// LeavesSpanned returns how many leaves a segment's y-extent touches.
func (l SpaceLayout) LeavesSpanned(s segment.Segment) int {
	lo, hi := l.LeafRange(s)
	return hi - lo + 1
}

// ShouldFragment reports whether pre-fragmenting segs into per-leaf pieces
// before insertion is worth doing.
//
// Pre-fragmentation trades a one-time pass that breaks every segment into
// single-leaf pieces for O(1) leaf-local inserts in segtree, against plain
// whole-segment inserts that cost O(log leaves) canonical-node touches each.
// It only pays for itself when the total fragment count stays close to the
// original segment count, i.e. when most segments already live inside a
// single leaf; if fragmenting would inflate the segment count by more than
// 10%, the extra bookkeeping isn't worth it and callers should insert
// segments whole instead.
func (l SpaceLayout) ShouldFragment(segs []segment.Segment) bool {
	if len(segs) == 0 {
		return false
	}
	total := 0
	for _, s := range segs {
		total += l.LeavesSpanned(s)
	}
	return fragmentationInflationPercent*len(segs) >= 100*total
}
