package split

import (
	"sort"

	"github.com/mikenye/overlay2d/point"
	"github.com/mikenye/overlay2d/segment"
)

// apply divides every segment named by a mark's SplitA/SplitB flag at its
// recorded point, replacing it in the returned bag with its sub-segments.
// Segments with no marks against them pass through unchanged.
func apply(bag []Segment, marks []Mark) []Segment {
	extra := make(map[int][]point.Point, len(marks))
	for _, m := range marks {
		if m.SplitA {
			extra[m.IndexA] = append(extra[m.IndexA], m.Point)
		}
		if m.SplitB {
			extra[m.IndexB] = append(extra[m.IndexB], m.Point)
		}
	}
	if len(extra) == 0 {
		return bag
	}

	out := make([]Segment, 0, len(bag)+len(marks))
	for i, s := range bag {
		pts, ok := extra[i]
		if !ok {
			out = append(out, s)
			continue
		}
		out = append(out, splitSegmentAt(s, pts)...)
	}
	return out
}

// along returns a monotonic key for p's position along s, valid only when p
// is known to be collinear with s (every caller here established that via
// the intersection math before recording a mark).
func along(s segment.Segment, p point.Point) int64 {
	return p.Sub(s.A).Dot(s.Vector())
}

// splitSegmentAt divides a working Segment at the given interior points
// (deduplicated against each other and against the segment's own
// endpoints), producing sub-segments that each inherit the parent's Shape
// and a recomputed Up flag reflecting the parent's original walking
// direction.
func splitSegmentAt(s Segment, pts []point.Point) []Segment {
	all := make([]point.Point, 0, len(pts)+2)
	all = append(all, s.Seg.A, s.Seg.B)
	all = append(all, pts...)
	sort.Slice(all, func(i, j int) bool {
		return along(s.Seg, all[i]) < along(s.Seg, all[j])
	})

	dir := s.Seg.Vector()
	if !s.Up {
		dir = point.Point{X: -dir.X, Y: -dir.Y}
	}

	out := make([]Segment, 0, len(all))
	for i := 0; i+1 < len(all); i++ {
		if all[i].Eq(all[i+1]) {
			continue
		}
		ns, err := segment.New(all[i], all[i+1])
		if err != nil {
			continue
		}
		out = append(out, Segment{
			Seg:   ns,
			Shape: s.Shape,
			Up:    ns.Vector().Dot(dir) >= 0,
		})
	}
	return out
}
