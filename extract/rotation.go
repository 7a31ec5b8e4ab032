package extract

import "github.com/mikenye/overlay2d/point"

// before reports whether a should be chosen over b as the next edge when
// sweeping away from reference vector v in the given rotational sense: true
// means a is encountered first.
//
// This implements the spec's closest-in-rotation predicate (collinear
// candidates tie-break by the other's cross sign; candidates on opposite
// sides of v prefer whichever side the rotation direction reaches first;
// candidates on the same side are ordered by cross(a,b)) as a single
// half-plane-plus-cross ranking rather than three separate branches: sign
// is +1 for a clockwise sweep and -1 for counter-clockwise, which mirrors
// every cross-product comparison below onto the same "clockwise" case.
func before(v, a, b point.Point, clockwise bool) bool {
	sign := int64(1)
	if !clockwise {
		sign = -1
	}

	ha := half(v, a, sign)
	hb := half(v, b, sign)
	if ha != hb {
		return ha < hb
	}

	cr := a.Cross(b) * sign
	if cr != 0 {
		return cr < 0
	}
	// Exactly collinear and on the same side: equal angle. Prefer the
	// shorter vector so degenerate zero-length ties don't starve a real
	// candidate.
	return a.Dot(a) < b.Dot(b)
}

// half buckets c into the near half-turn from v (0) or the far half-turn
// (1), in the rotational sense given by sign.
func half(v, c point.Point, sign int64) int {
	cr := v.Cross(c) * sign
	switch {
	case cr < 0:
		return 0
	case cr > 0:
		return 1
	}
	if v.Dot(c) > 0 {
		return 0
	}
	return 1
}
