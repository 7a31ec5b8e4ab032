// Package types defines the small, cross-cutting enumerations shared by every
// layer of the overlay2d pipeline: point orientation, which of the two input
// shapes (subject or clip) an edge belongs to, and the strategy a solver
// chose to resolve a batch of segments.
//
// These are kept in one leaf package, rather than scattered across the
// packages that use them, so that the splitter, fill engine, graph builder,
// and extractor can all refer to the same vocabulary without importing one
// another.
package types

import "fmt"

// Orientation describes the turn formed by three ordered points: collinear,
// clockwise, or counterclockwise. It is the result of the triangle sign test
// used throughout the splitter and extractor.
type Orientation uint8

// Valid values for Orientation.
const (
	// Collinear indicates the three points lie on a single line.
	Collinear Orientation = iota

	// Clockwise indicates the points form a clockwise turn.
	Clockwise

	// CounterClockwise indicates the points form a counterclockwise turn.
	CounterClockwise
)

// String returns a human-readable name for the Orientation.
func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		panic(fmt.Errorf("unsupported orientation: %d", o))
	}
}

// ShapeType identifies which of the two inputs to a boolean operation an
// edge originated from.
type ShapeType uint8

// Valid values for ShapeType.
const (
	// Subject marks an edge as belonging to the subject path set.
	Subject ShapeType = iota

	// Clip marks an edge as belonging to the clip path set.
	Clip
)

// String returns a human-readable name for the ShapeType.
func (s ShapeType) String() string {
	switch s {
	case Subject:
		return "Subject"
	case Clip:
		return "Clip"
	default:
		panic(fmt.Errorf("unsupported shape type: %d", s))
	}
}

// Strategy selects the algorithm the splitter uses to resolve intersections
// in a batch of segments.
type Strategy uint8

// Valid values for Strategy.
const (
	// List resolves intersections with an all-pairs scan over an active
	// window. Cheap for small or vertically short batches.
	List Strategy = iota

	// Tree resolves intersections by bucketing segments into a segment
	// tree keyed by y. Scales better for large batches.
	Tree

	// Auto chooses List or Tree per iteration based on edge count and
	// vertical extent.
	Auto
)

// String returns a human-readable name for the Strategy.
func (s Strategy) String() string {
	switch s {
	case List:
		return "List"
	case Tree:
		return "Tree"
	case Auto:
		return "Auto"
	default:
		panic(fmt.Errorf("unsupported strategy: %d", s))
	}
}
