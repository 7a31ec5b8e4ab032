package extract

import (
	"github.com/mikenye/overlay2d/graph"
	"github.com/mikenye/overlay2d/point"
)

type linkInfo struct {
	emit      bool
	topInside bool
}

// ExtractShapes traverses g selecting edges on rule's boundary, walks each
// unvisited boundary link into a closed path by always choosing the
// next-incident edge closest in rotation to the one just traveled, then
// nests the resulting paths into shapes.
func ExtractShapes(g *graph.Graph, rule Rule) []Shape {
	infos := make([]linkInfo, len(g.Links))
	for i, l := range g.Links {
		emit, top := boundary(rule, l.Seg.Tag)
		infos[i] = linkInfo{emit: emit, topInside: top}
	}

	visited := make([]bool, len(g.Links))
	var paths []Path
	for i := range g.Links {
		if visited[i] || !infos[i].emit {
			continue
		}
		p := walk(g, infos, visited, i)
		if len(p) >= 3 {
			paths = append(paths, p)
		}
	}
	return nest(paths)
}

func otherNode(l graph.Link, node int) int {
	if l.A == node {
		return l.B
	}
	return l.A
}

// walk traces the closed path starting from startLink, per step 2 of the
// spec's extractor: is_clockwise fixes the rotational sense for the whole
// path, determined once from the starting link's endpoint keys and which
// side its fill tag marks as filled.
func walk(g *graph.Graph, infos []linkInfo, visited []bool, startLink int) Path {
	l := g.Links[startLink]
	a := g.Nodes[l.A].Point
	b := g.Nodes[l.B].Point
	clockwise := (a.Key() < b.Key()) == infos[startLink].topInside

	start := l.A
	visited[startLink] = true

	path := Path{a}
	incoming := b.Sub(a)
	current := l.B
	curLink := startLink

	for {
		path = append(path, g.Nodes[current].Point)
		if current == start {
			break
		}
		nextLink, outgoing, ok := pickNext(g, infos, visited, current, curLink, incoming, clockwise)
		if !ok {
			break
		}
		visited[nextLink] = true
		incoming = outgoing
		curLink = nextLink
		current = otherNode(g.Links[nextLink], current)
	}
	return path
}

// pickNext selects, among node's unvisited boundary links other than
// usedLink, the one whose outgoing vector is closest in rotation to
// incoming.
func pickNext(g *graph.Graph, infos []linkInfo, visited []bool, node, usedLink int, incoming point.Point, clockwise bool) (int, point.Point, bool) {
	best := -1
	var bestVec point.Point
	nodePoint := g.Nodes[node].Point

	for _, li := range g.Nodes[node].Links {
		if li == usedLink || visited[li] || !infos[li].emit {
			continue
		}
		other := otherNode(g.Links[li], node)
		vec := g.Nodes[other].Point.Sub(nodePoint)
		if best == -1 || before(incoming, vec, bestVec, clockwise) {
			best = li
			bestVec = vec
		}
	}
	if best == -1 {
		return 0, point.Point{}, false
	}
	return best, bestVec, true
}
