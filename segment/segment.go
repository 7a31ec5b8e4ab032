// Package segment defines Segment, the ordered straight edge that the
// splitter, fill engine, and overlay graph builder all operate on.
//
// A Segment's endpoints are always stored in point-key order (A before B);
// this canonical ordering is what lets the overlay graph builder merge
// segment endpoints into nodes by a simple sort-and-scan, and what gives the
// extractor's is_clockwise test (comparing A.Key() and B.Key()) a stable
// meaning.
package segment

import (
	"fmt"

	"github.com/mikenye/overlay2d/point"
)

// Segment is a straight edge between two distinct points, with endpoints
// ordered A before B under point.Point.Key. Per the spec's data model,
// a == b is an invariant violation, never a valid zero-length segment.
type Segment struct {
	A, B point.Point
}

// New creates a Segment from two points, swapping them if necessary so that
// A sorts before B under point-key order.
//
// Returns an error if a and b are the same point (a zero-length segment),
// which the spec forbids as a Segment invariant.
func New(a, b point.Point) (Segment, error) {
	if a.Eq(b) {
		return Segment{}, fmt.Errorf("segment: zero-length segment at %s", a)
	}
	if b.Less(a) {
		a, b = b, a
	}
	return Segment{A: a, B: b}, nil
}

// Vector returns the direction vector B - A.
func (s Segment) Vector() point.Point {
	return s.B.Sub(s.A)
}

// Eq reports whether two segments share identical, canonically ordered
// endpoints.
func (s Segment) Eq(o Segment) bool {
	return s.A.Eq(o.A) && s.B.Eq(o.B)
}

// Side returns the sign of the cross product of the segment's direction
// vector with the vector from A to p: positive when p is to the left of
// A->B, negative when to the right, zero when p is collinear with the
// segment's line.
func (s Segment) Side(p point.Point) int64 {
	return s.Vector().Cross(p.Sub(s.A))
}

// YRange returns the inclusive vertical extent of the segment.
func (s Segment) YRange() (lo, hi int32) {
	if s.A.Y <= s.B.Y {
		return s.A.Y, s.B.Y
	}
	return s.B.Y, s.A.Y
}

// String returns the segment in "a-b" form.
func (s Segment) String() string {
	return fmt.Sprintf("%s-%s", s.A, s.B)
}
