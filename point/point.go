// Package point defines the foundational geometric primitive of the
// overlay2d core: a point with fixed-point 32-bit integer coordinates.
//
// The spec's core is explicit that all geometry is integer (no
// floating-point arithmetic, no curves); Point is the type every other
// package builds on. Coordinates are bounded to 31-bit signed magnitudes so
// that cross products, computed in int64, never overflow.
//
// # Point Key
//
// Each Point has a 64-bit Key that sorts lexicographically by (y, x). The
// key packs the two coordinates into the two halves of a uint64, flipping
// the sign bit of each half so that unsigned comparison of the packed value
// matches the intended (y, x) lexicographic order even for negative
// coordinates. The result must be compared as unsigned: reinterpreting it
// as a signed int64 would reintroduce a sign split at bit 63.
package point

import "fmt"

// Point represents a point in the plane with 32-bit signed integer
// coordinates.
type Point struct {
	X, Y int32
}

// New creates a new Point with the given coordinates.
func New(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Key returns a 64-bit value that sorts lexicographically by (Y, X) under
// ordinary unsigned comparison. Two points compare equal under Key iff they
// have identical coordinates.
//
// The packing flips the sign bit of each coordinate's unsigned
// representation before placing it in its half of the result; this is the
// standard trick for making a two's-complement integer sort correctly when
// compared as its bit-reinterpreted unsigned form. The return type must stay
// uint64: a signed comparison of the same bits would split the order at
// bit 63 (i.e. at Y==0) instead of at the intended minimum Y.
func (p Point) Key() uint64 {
	ux := uint32(p.X) ^ 0x8000_0000
	uy := uint32(p.Y) ^ 0x8000_0000
	return uint64(uy)<<32 | uint64(ux)
}

// Less reports whether p sorts strictly before q under point-key order.
func (p Point) Less(q Point) bool {
	return p.Key() < q.Key()
}

// Eq reports whether p and q have identical coordinates.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Add returns the component-wise sum of p and q, treating both as vectors.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q, treating both as
// vectors.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the 2D cross product of p and q, computed in 64-bit
// arithmetic to avoid overflow when both operands carry the full 31-bit
// input magnitude.
func (p Point) Cross(q Point) int64 {
	return int64(p.X)*int64(q.Y) - int64(p.Y)*int64(q.X)
}

// Dot returns the dot product of p and q, computed in 64-bit arithmetic.
func (p Point) Dot(q Point) int64 {
	return int64(p.X)*int64(q.X) + int64(p.Y)*int64(q.Y)
}

// String returns the point in "(x,y)" form.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
