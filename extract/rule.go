// Package extract traverses an overlay graph under a boolean overlay rule
// to emit closed oriented paths, then nests those paths into shapes with
// holes. Grounded on original_source/src/layout/overlay_graph.rs's
// find_nearest_link_to / CloseInRotation traversal.
package extract

import "github.com/mikenye/overlay2d/fill"

// Rule selects which combination of subject/clip fill is considered the
// result's interior.
type Rule uint8

const (
	Subject Rule = iota
	Clip
	Intersect
	Union
	Difference
	InverseDifference
	Xor
)

func (r Rule) String() string {
	switch r {
	case Subject:
		return "Subject"
	case Clip:
		return "Clip"
	case Intersect:
		return "Intersect"
	case Union:
		return "Union"
	case Difference:
		return "Difference"
	case InverseDifference:
		return "InverseDifference"
	case Xor:
		return "Xor"
	default:
		panic("extract: invalid Rule")
	}
}

// combine evaluates the rule's below/above predicates from the spec's
// boundary table, letting boundary derive both the emit decision and which
// side is filled from a single below/above pair rather than duplicating
// the XOR in each branch.
func combine(r Rule, tag fill.Tag) (below, above bool) {
	sb := tag.Has(fill.SubjectBelow)
	st := tag.Has(fill.SubjectAbove)
	cb := tag.Has(fill.ClipBelow)
	ct := tag.Has(fill.ClipAbove)

	switch r {
	case Subject:
		return sb, st
	case Clip:
		return cb, ct
	case Intersect:
		return sb && cb, st && ct
	case Union:
		return sb || cb, st || ct
	case Difference:
		return sb && !cb, st && !ct
	case InverseDifference:
		return !sb && cb, !st && ct
	case Xor:
		return sb != cb, st != ct
	default:
		panic("extract: invalid Rule")
	}
}

// boundary reports whether a link carrying tag lies on rule's boundary
// (its below and above sides disagree on insideness) and, if so, whether
// the above side is the filled one.
func boundary(r Rule, tag fill.Tag) (emit, topInside bool) {
	below, above := combine(r, tag)
	return below != above, above
}
