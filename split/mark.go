package split

import (
	"math/big"

	"github.com/mikenye/overlay2d/point"
	"github.com/mikenye/overlay2d/segment"
)

// Mark records that segments at IndexA and/or IndexB must be divided at
// Point. A segment is only divided when its flag is set: Point may already
// be one of its own endpoints, in which case no split is needed for it even
// though it triggered the mark.
type Mark struct {
	IndexA, IndexB int
	Point          point.Point
	SplitA, SplitB bool
	// Rounded is true when Point was computed by rounding an exact
	// rational intersection to the nearest integer; the fix-point loop
	// must run another pass whenever any mark carries this, since
	// rounding can introduce a new coincidence elsewhere in the bag.
	Rounded bool
}

func sameSign(a, b int64) bool {
	return a != 0 && b != 0 && (a > 0) == (b > 0)
}

// onSegment reports whether p, already known to be collinear with s, lies
// within s's bounding box (equivalently, within its parameter range).
func onSegment(s segment.Segment, p point.Point) bool {
	lo, hi := s.A.X, s.B.X
	if lo > hi {
		lo, hi = hi, lo
	}
	if p.X < lo || p.X > hi {
		return false
	}
	lo, hi = s.A.Y, s.B.Y
	if lo > hi {
		lo, hi = hi, lo
	}
	return p.Y >= lo && p.Y <= hi
}

// endOnEdge builds a mark for the case where p (an endpoint of owner) lies
// on target's interior. Returns ok=false if p is already one of target's
// own endpoints too, meaning the two segments merely share a vertex and no
// split is needed at all.
func endOnEdge(targetIdx int, target segment.Segment, ownerIdx int, p point.Point) (Mark, bool) {
	needsSplit := !p.Eq(target.A) && !p.Eq(target.B)
	if !needsSplit {
		return Mark{}, false
	}
	return Mark{IndexA: targetIdx, IndexB: ownerIdx, Point: p, SplitA: true, SplitB: false}, true
}

// intersectPair tests two segments for a crossing requiring a split mark,
// per the spec's intersection math: reject on a same-side test, resolve
// collinear touches as end-on-edge, otherwise compute the exact rational
// crossing point and round to the nearest integer.
func intersectPair(ia int, sa segment.Segment, ib int, sb segment.Segment) (Mark, bool) {
	d1 := sa.Side(sb.A)
	d2 := sa.Side(sb.B)
	if sameSign(d1, d2) {
		return Mark{}, false
	}

	d3 := sb.Side(sa.A)
	d4 := sb.Side(sa.B)
	if sameSign(d3, d4) {
		return Mark{}, false
	}

	if d1 == 0 && d2 == 0 {
		for _, c := range []struct {
			ti, oi int
			t      segment.Segment
			p      point.Point
		}{{ia, ib, sa, sb.A}, {ia, ib, sa, sb.B}, {ib, ia, sb, sa.A}, {ib, ia, sb, sa.B}} {
			if onSegment(c.t, c.p) {
				if m, ok := endOnEdge(c.ti, c.t, c.oi, c.p); ok {
					return m, true
				}
			}
		}
		return Mark{}, false
	}

	switch {
	case d1 == 0 && onSegment(sa, sb.A):
		return endOnEdge(ia, sa, ib, sb.A)
	case d2 == 0 && onSegment(sa, sb.B):
		return endOnEdge(ia, sa, ib, sb.B)
	case d3 == 0 && onSegment(sb, sa.A):
		return endOnEdge(ib, sb, ia, sa.A)
	case d4 == 0 && onSegment(sb, sa.B):
		return endOnEdge(ib, sb, ia, sa.B)
	}

	return properCrossing(ia, sa, ib, sb)
}

// properCrossing computes the exact rational intersection of two
// non-collinear, non-parallel segments known (by the caller's same-side
// tests) to straddle each other, then rounds to the nearest integer point.
// Arithmetic is done in math/big because the numerators involved exceed
// 64 bits once the 62-bit cross-product terms are combined.
func properCrossing(ia int, sa segment.Segment, ib int, sb segment.Segment) (Mark, bool) {
	d1v := sa.Vector()
	d2v := sb.Vector()
	denom := d1v.Cross(d2v)
	num := sb.A.Sub(sa.A).Cross(d2v)

	bigDenom := big.NewInt(denom)
	bigNum := big.NewInt(num)

	px, exactX := roundRatio(
		new(big.Int).Add(
			new(big.Int).Mul(big.NewInt(int64(sa.A.X)), bigDenom),
			new(big.Int).Mul(bigNum, big.NewInt(int64(d1v.X))),
		),
		bigDenom,
	)
	py, exactY := roundRatio(
		new(big.Int).Add(
			new(big.Int).Mul(big.NewInt(int64(sa.A.Y)), bigDenom),
			new(big.Int).Mul(bigNum, big.NewInt(int64(d1v.Y))),
		),
		bigDenom,
	)

	p := point.New(int32(px), int32(py))

	splitA := !p.Eq(sa.A) && !p.Eq(sa.B)
	splitB := !p.Eq(sb.A) && !p.Eq(sb.B)
	if !splitA && !splitB {
		return Mark{}, false
	}
	return Mark{
		IndexA: ia, IndexB: ib,
		Point:  p,
		SplitA: splitA, SplitB: splitB,
		Rounded: !exactX || !exactY,
	}, true
}

// roundRatio returns round-half-away-from-zero of num/den, and whether the
// division was exact.
func roundRatio(num, den *big.Int) (int64, bool) {
	if den.Sign() < 0 {
		num = new(big.Int).Neg(num)
		den = new(big.Int).Neg(den)
	}
	rem := new(big.Int)
	q, r := new(big.Int).QuoRem(num, den, rem)
	if r.Sign() == 0 {
		return q.Int64(), true
	}
	twice := new(big.Int).Abs(new(big.Int).Mul(r, big.NewInt(2)))
	if twice.Cmp(den) >= 0 {
		if num.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q.Int64(), false
}
