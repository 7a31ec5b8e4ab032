package fill

import (
	"sort"

	"github.com/google/btree"
	"github.com/mikenye/overlay2d/split"
	"github.com/mikenye/overlay2d/types"
)

// activeItem is a segment currently registered in the sweep's active set,
// together with the running subject/clip counts accumulated by everything
// at or below it at the moment it was inserted.
type activeItem struct {
	seg          split.Segment
	afterSubject int
	afterClip    int
	seq          int
}

// newLessActive builds the btree comparator for one Classify run. Every
// activeItem it ever compares belongs to the same sweep, so capturing the
// sweep's current-x cursor by reference (rather than storing it on each
// item) is enough: the comparator's answer for a given pair is only ever
// trusted while both items are simultaneously active, during which their
// relative y-order can't change (the segments don't cross).
func newLessActive(currentX *int32) func(a, b *activeItem) bool {
	return func(a, b *activeItem) bool {
		if cmp := compareYAt(a.seg.Seg, b.seg.Seg, *currentX); cmp != 0 {
			return cmp < 0
		}
		// Tie at this x (typically a shared vertex): fall back to
		// insertion order for a stable, deterministic total order.
		return a.seq < b.seq
	}
}

type event struct {
	x     int32
	start bool
	idx   int
}

// Classify sweeps bag (the splitter's stable output) left to right and
// assigns each segment a fill tag under rule.
//
// Per-segment tags are fixed at the moment a segment enters the sweep: the
// below-side values come from whatever subject/clip counts its immediate
// predecessor (by y, at the entering x) had already accumulated, and the
// above-side values are those counts after folding in this segment's own
// contribution. The other color's bits pass through unchanged, which is
// exactly the propagate-unless-same-color-toggles rule the spec describes.
func Classify(bag []split.Segment, rule Rule) []Segment {
	n := len(bag)
	out := make([]Segment, n)

	events := make([]event, 0, 2*n)
	for i, s := range bag {
		// The sweep runs left to right on X, but a segment's canonical A/B
		// order is by point key (Y then X), so A.X can be either endpoint's
		// smaller or larger X. Use the actual min/max X so a down-right or
		// up-left diagonal still enters and leaves the sweep at the right
		// events.
		left, right := s.Seg.A.X, s.Seg.B.X
		if left > right {
			left, right = right, left
		}
		events = append(events, event{x: left, start: true, idx: i})
		events = append(events, event{x: right, start: false, idx: i})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].x != events[j].x {
			return events[i].x < events[j].x
		}
		// Process starts before ends at the same x so that two segments
		// touching at a shared vertex still see each other.
		if events[i].start != events[j].start {
			return events[i].start
		}
		return events[i].idx < events[j].idx
	})

	var currentX int32
	tree := btree.NewG(32, newLessActive(&currentX))
	items := make([]*activeItem, n)
	seq := 0

	for _, ev := range events {
		currentX = ev.x
		s := bag[ev.idx]

		if !ev.start {
			if it := items[ev.idx]; it != nil {
				tree.Delete(it)
			}
			continue
		}

		pivot := &activeItem{seg: s}
		beforeSubject, beforeClip := 0, 0
		tree.DescendLessOrEqual(pivot, func(pred *activeItem) bool {
			beforeSubject = pred.afterSubject
			beforeClip = pred.afterClip
			return false
		})

		afterSubject, afterClip := beforeSubject, beforeClip
		if s.Shape == types.Subject {
			afterSubject = applyRule(rule, beforeSubject, s.Up)
		} else {
			afterClip = applyRule(rule, beforeClip, s.Up)
		}

		var tag Tag
		if inside(rule, beforeSubject) {
			tag |= SubjectBelow
		}
		if inside(rule, afterSubject) {
			tag |= SubjectAbove
		}
		if inside(rule, beforeClip) {
			tag |= ClipBelow
		}
		if inside(rule, afterClip) {
			tag |= ClipAbove
		}
		out[ev.idx] = Segment{Seg: s.Seg, Tag: tag}

		it := &activeItem{
			seg:          s,
			afterSubject: afterSubject,
			afterClip:    afterClip,
			seq:          seq,
		}
		seq++
		items[ev.idx] = it
		tree.ReplaceOrInsert(it)
	}

	return out
}
