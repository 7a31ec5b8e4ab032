package point

import "github.com/mikenye/overlay2d/types"

// Orientation determines the turn formed by three points p, q, r, using the
// sign of the cross product of (q-p) and (r-p).
//
// Unlike the floating-point version this core replaces, no epsilon is
// needed: all inputs are exact fixed-point integers, and the cross product
// is computed in 64-bit arithmetic wide enough to hold the exact result for
// any pair of 31-bit-magnitude coordinates.
func Orientation(p, q, r Point) types.Orientation {
	cross := q.Sub(p).Cross(r.Sub(p))
	switch {
	case cross > 0:
		return types.CounterClockwise
	case cross < 0:
		return types.Clockwise
	default:
		return types.Collinear
	}
}

// SignedArea2X returns twice the signed area enclosed by the closed path
// described by pts (the last point is implicitly connected back to the
// first). Positive indicates counterclockwise winding.
func SignedArea2X(pts []Point) int64 {
	if len(pts) < 3 {
		return 0
	}
	var area int64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += int64(pts[i].X)*int64(pts[j].Y) - int64(pts[j].X)*int64(pts[i].Y)
	}
	return area
}
