// Package segtree implements the dynamic segment tree the splitter uses to
// find candidate segment pairs for intersection testing without comparing
// every pair in the input.
//
// The tree partitions a y-range into 1<<power leaves (package layout decides
// power) and stores each inserted segment at the O(log leaves) canonical
// nodes whose combined ranges exactly cover the segment's y-extent -
// the standard iterative segment-tree range decomposition. Querying a
// segment's range visits every node whose range overlaps it (each leaf in
// the range and all of its ancestors), and each stored entry is tested at
// most once per query.
//
// Grounded on original_source/src/split/solver_tree.rs's SegmentTree, with
// the canonical-node bookkeeping lifted from the classic iterative
// segment-tree-over-an-array technique rather than the source's recursive
// formulation.
package segtree

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/mikenye/overlay2d/layout"
	"github.com/mikenye/overlay2d/segment"
)

// Entry is a segment registered in the tree, tagged with the index the
// caller uses to identify it (typically a position in a working segment
// bag).
type Entry struct {
	Index int
	Seg   segment.Segment
}

// Tree is a dynamic segment tree over a layout.SpaceLayout. The zero value
// is not usable; construct with New.
type Tree struct {
	layout layout.SpaceLayout
	leaves int
	nodes  []*arraylist.List // 1-indexed, len 2*leaves
}

// New builds an empty tree over the given space partition.
func New(l layout.SpaceLayout) *Tree {
	leaves := l.Leaves()
	nodes := make([]*arraylist.List, 2*leaves)
	for i := range nodes {
		nodes[i] = arraylist.New()
	}
	return &Tree{layout: l, leaves: leaves, nodes: nodes}
}

// canonicalNodes returns the O(log leaves) node ids whose ranges exactly
// tile [lo, hi] (inclusive leaf indices).
func (t *Tree) canonicalNodes(lo, hi int) []int {
	n := t.leaves
	lo += n
	hi += n + 1
	nodes := make([]int, 0, 2*t.layout.Power+2)
	for lo < hi {
		if lo&1 == 1 {
			nodes = append(nodes, lo)
			lo++
		}
		if hi&1 == 1 {
			hi--
			nodes = append(nodes, hi)
		}
		lo >>= 1
		hi >>= 1
	}
	return nodes
}

// Insert registers e at its canonical nodes.
func (t *Tree) Insert(e Entry) {
	lo, hi := t.layout.LeafRange(e.Seg)
	for _, id := range t.canonicalNodes(lo, hi) {
		t.nodes[id].Add(e)
	}
}

// Intersect visits every entry previously inserted at a canonical node that
// e's range also touches, invoking test for each candidate pair exactly
// once. It does not insert e; callers call Insert separately so that a
// single incremental pass over a segment bag (intersect-then-insert, in
// order) finds every pair exactly once.
func (t *Tree) Intersect(e Entry, test func(a, b Entry)) {
	lo, hi := t.layout.LeafRange(e.Seg)
	seen := make(map[int]bool)
	for a, b := lo+t.leaves, hi+t.leaves; a >= 1; a, b = a>>1, b>>1 {
		for id := a; id <= b; id++ {
			for _, v := range t.nodes[id].Values() {
				other := v.(Entry)
				if other.Index == e.Index || seen[other.Index] {
					continue
				}
				seen[other.Index] = true
				test(e, other)
			}
		}
	}
}

// Clear empties every node's active list, keeping the tree topology so the
// same Tree can be reused across fix-point iterations.
func (t *Tree) Clear() {
	for _, n := range t.nodes {
		n.Clear()
	}
}
