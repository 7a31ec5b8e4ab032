// Package overlay2d performs robust boolean operations (union,
// intersection, difference, symmetric difference) on planar polygonal
// shapes given as closed paths in a fixed-point integer coordinate system.
//
// The package is a thin façade over the core pipeline: split resolves
// crossings in a bag of subject/clip edges, fill classifies the resolved
// edges under a fill rule, graph merges classified edges into a node/link
// arena by shared endpoints, and extract walks that graph under an overlay
// rule to emit oriented shapes.
//
// Acknowledgments: the splitter and overlay graph algorithms are grounded
// on the iOverlay project (https://github.com/iOverlay/iOverlay), whose
// Rust sources were used as reference material while building this Go
// implementation.
package overlay2d

import (
	"github.com/mikenye/overlay2d/extract"
	"github.com/mikenye/overlay2d/fill"
	"github.com/mikenye/overlay2d/graph"
	"github.com/mikenye/overlay2d/options"
	"github.com/mikenye/overlay2d/split"
	"github.com/mikenye/overlay2d/types"
)

// Path is a closed sequence of vertices; the last point implicitly
// connects back to the first. Self-intersecting, degenerate, and
// duplicate-vertex paths are all accepted.
type Path = extract.Path

// Shape is an outer contour with zero or more holes.
type Shape = extract.Shape

// FillRule decides whether a side of a classified edge counts as filled.
type FillRule = fill.Rule

// OverlayRule selects which boolean combination of subject and clip fill
// an extraction keeps.
type OverlayRule = extract.Rule

// Policy configures the splitter's strategy selection.
type Policy = options.Policy

// Fill rules.
const (
	EvenOdd = fill.EvenOdd
	NonZero = fill.NonZero
)

// Overlay rules.
const (
	SubjectRule           = extract.Subject
	ClipRule              = extract.Clip
	IntersectRule         = extract.Intersect
	UnionRule             = extract.Union
	DifferenceRule        = extract.Difference
	InverseDifferenceRule = extract.InverseDifference
	XorRule               = extract.Xor
)

// DefaultPolicy returns the default solver policy (Auto strategy).
func DefaultPolicy() Policy {
	return options.DefaultPolicy()
}

// BuildGraph resolves every crossing between subjectPaths and clipPaths,
// classifies the result under rule, and builds the overlay graph ready for
// ExtractShapes. Paths may be empty, self-intersecting, or degenerate.
func BuildGraph(subjectPaths, clipPaths []Path, rule FillRule, policy Policy) (*graph.Graph, error) {
	bag, err := pathsToBag(subjectPaths, types.Subject)
	if err != nil {
		return nil, err
	}
	clipBag, err := pathsToBag(clipPaths, types.Clip)
	if err != nil {
		return nil, err
	}
	bag = append(bag, clipBag...)
	logDebugf("build: %d subject paths, %d clip paths, %d raw edges", len(subjectPaths), len(clipPaths), len(bag))

	resolved := split.NewSplitter(policy).Split(bag)
	logDebugf("build: splitter resolved to %d edges (strategy=%s)", len(resolved), policy.Strategy)
	classified := fill.Classify(resolved, rule)
	g := graph.Build(classified)
	logDebugf("build: graph has %d nodes, %d links", len(g.Nodes), len(g.Links))
	return g, nil
}

// ExtractShapes traverses g under rule and returns the resulting oriented
// shapes, deterministically for identical inputs.
func ExtractShapes(g *graph.Graph, rule OverlayRule) []Shape {
	shapes := extract.ExtractShapes(g, rule)
	logDebugf("extract: rule=%s produced %d shapes", rule, len(shapes))
	return shapes
}

// pathsToBag converts closed vertex paths into working segments, silently
// dropping zero-length edges per the spec's error-handling policy rather
// than failing the whole build.
func pathsToBag(paths []Path, shape types.ShapeType) ([]split.Segment, error) {
	var bag []split.Segment
	for _, p := range paths {
		n := len(p)
		for i := 0; i < n; i++ {
			a, b := p[i], p[(i+1)%n]
			if a.Eq(b) {
				continue
			}
			s, err := split.New(a, b, shape)
			if err != nil {
				return nil, err
			}
			bag = append(bag, s)
		}
	}
	return bag, nil
}
