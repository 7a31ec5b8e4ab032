package extract

import "github.com/mikenye/overlay2d/point"

// nest groups paths into shapes: every positive-area path becomes an outer
// contour, every non-positive-area path is a hole attached to its smallest
// enclosing outer contour (point-in-polygon test using the hole's first
// vertex; ties broken by ascending enclosing area).
func nest(paths []Path) []Shape {
	var outers []Path
	var holes []Path
	for _, p := range paths {
		if point.SignedArea2X([]point.Point(p)) > 0 {
			outers = append(outers, p)
		} else {
			holes = append(holes, p)
		}
	}

	shapes := make([]Shape, len(outers))
	for i, o := range outers {
		shapes[i] = Shape{Outer: o}
	}

	for _, h := range holes {
		if len(h) == 0 {
			continue
		}
		best := -1
		var bestArea int64
		test := h[0]
		for i, o := range outers {
			if !pointInPolygon(test, o) {
				continue
			}
			area := point.SignedArea2X([]point.Point(o))
			if best == -1 || area < bestArea {
				best = i
				bestArea = area
			}
		}
		if best >= 0 {
			shapes[best].Holes = append(shapes[best].Holes, h)
		}
	}
	return shapes
}

// pointInPolygon is the standard PNPOLY crossing-number test, rewritten
// with integer cross-multiplication in place of floating-point division.
func pointInPolygon(p point.Point, poly Path) bool {
	inside := false
	n := len(poly)
	j := n - 1
	for i := 0; i < n; i++ {
		a := poly[j]
		b := poly[i]
		if (b.Y > p.Y) != (a.Y > p.Y) {
			lhs := int64(p.X-a.X) * int64(b.Y-a.Y)
			rhs := int64(p.Y-a.Y) * int64(b.X-a.X)
			cond := lhs < rhs
			if b.Y < a.Y {
				cond = lhs > rhs
			}
			if cond {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
