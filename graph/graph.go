// Package graph builds the overlay graph from classified, crossing-free
// segments: nodes are shared geometric endpoints, links are the segments
// themselves referencing their two endpoint nodes by index.
//
// Grounded on original_source/src/layout/overlay_graph.rs: nodes and links
// are stored as parallel index-referencing arrays rather than
// pointer-linked structures, which dissolves the otherwise-cyclic
// node/link graph into two flat slices, per the spec's arena design note.
package graph

import (
	"sort"

	"github.com/mikenye/overlay2d/fill"
	"github.com/mikenye/overlay2d/point"
)

// Node is a shared geometric endpoint: the point itself, plus the indices
// of every link incident to it. Node identity is its position in Graph.Nodes.
type Node struct {
	Point point.Point
	Links []int
}

// Link is a graph edge: the fill-classified segment it came from, plus the
// indices of its two endpoint nodes in Graph.Nodes. A is always the node
// for the segment's canonically-ordered A endpoint, B likewise.
type Link struct {
	Seg  fill.Segment
	A, B int
}

// Graph is the immutable node/link arena produced by Build.
type Graph struct {
	Nodes []Node
	Links []Link
}

// Build constructs the overlay graph from a classified segment bag.
//
// The algorithm merges two endpoint views by point key: the a-endpoints in
// their given (link) order, and the b-endpoints sorted by point key, walked
// in lockstep against a's own point-key order. Rather than re-deriving a's
// sort order twice, both endpoint kinds are funneled through a single
// sorted list of (point key, link index, which-end) triples; every run of
// equal point keys becomes one node, and each entry in the run assigns that
// node's index back into the corresponding link's A or B field.
func Build(segs []fill.Segment) *Graph {
	type endpoint struct {
		key    uint64
		link   int
		isB    bool
	}

	links := make([]Link, len(segs))
	endpoints := make([]endpoint, 0, 2*len(segs))
	for i, s := range segs {
		links[i] = Link{Seg: s}
		endpoints = append(endpoints,
			endpoint{key: s.Seg.A.Key(), link: i, isB: false},
			endpoint{key: s.Seg.B.Key(), link: i, isB: true},
		)
	}

	sort.SliceStable(endpoints, func(i, j int) bool {
		return endpoints[i].key < endpoints[j].key
	})

	g := &Graph{Links: links}
	i := 0
	for i < len(endpoints) {
		j := i
		for j < len(endpoints) && endpoints[j].key == endpoints[i].key {
			j++
		}

		nodeIdx := len(g.Nodes)
		var p point.Point
		linkIdxs := make([]int, 0, j-i)
		for k := i; k < j; k++ {
			e := endpoints[k]
			if e.isB {
				p = links[e.link].Seg.Seg.B
				links[e.link].B = nodeIdx
			} else {
				p = links[e.link].Seg.Seg.A
				links[e.link].A = nodeIdx
			}
			linkIdxs = append(linkIdxs, e.link)
		}
		g.Nodes = append(g.Nodes, Node{Point: p, Links: linkIdxs})
		i = j
	}

	return g
}
