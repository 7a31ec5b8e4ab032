package fill

import (
	"math/big"

	"github.com/mikenye/overlay2d/segment"
)

// yAt returns the exact y-coordinate of s at x as a rational n/d with d > 0,
// by linear interpolation between its endpoints. Vertical segments (zero
// x-extent) have no well-defined y(x); classification for them falls back
// to their lower endpoint's y, which is the only value they can contribute
// at the single x they're active for.
func yAt(s segment.Segment, x int32) (n, d *big.Int) {
	dx := int64(s.B.X) - int64(s.A.X)
	if dx == 0 {
		return big.NewInt(int64(s.A.Y)), big.NewInt(1)
	}
	dy := int64(s.B.Y) - int64(s.A.Y)
	nv := int64(s.A.Y)*dx + (int64(x)-int64(s.A.X))*dy
	// Keep the denominator positive so compareYAt's cross-multiplication
	// doesn't need to track each side's sign separately: A.X > B.X is
	// common (canonical A/B order is by point key, not by X), which would
	// otherwise leave dx negative here.
	if dx < 0 {
		nv, dx = -nv, -dx
	}
	return big.NewInt(nv), big.NewInt(dx)
}

// compareYAt returns -1, 0, or 1 according to whether a's y at x is less
// than, equal to, or greater than b's.
func compareYAt(a, b segment.Segment, x int32) int {
	na, da := yAt(a, x)
	nb, db := yAt(b, x)
	lhs := new(big.Int).Mul(na, db)
	rhs := new(big.Int).Mul(nb, da)
	return lhs.Cmp(rhs)
}
