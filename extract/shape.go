package extract

import "github.com/mikenye/overlay2d/point"

// Path is a closed sequence of vertices; the last point implicitly
// connects back to the first.
type Path []point.Point

// Shape is an outer contour (positive signed area, per the spec's
// orientation convention) with zero or more holes (negative signed area)
// nested strictly inside it.
type Shape struct {
	Outer Path
	Holes []Path
}
