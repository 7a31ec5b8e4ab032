package split

import "sort"

// splitListPass collects marks for one fix-point iteration of the List
// strategy and folds in the spec's chunk-growth policy: each pass over a
// large bag first scans a ChunkStartLength-sized prefix, doubling the
// prefix after each clean scan until it covers the whole bag, and returns
// as soon as a scan finds marks.
func (s *Splitter) splitListPass(bag []Segment) ([]Mark, bool) {
	chunk := s.policy.ChunkStartLength
	if chunk <= 0 || chunk > len(bag) {
		chunk = len(bag)
	}
	for {
		marks, anyRound := collectMarksList(bag[:chunk])
		if len(marks) > 0 || anyRound || chunk == len(bag) {
			return marks, anyRound
		}
		chunk *= 2
		if chunk > len(bag) {
			chunk = len(bag)
		}
	}
}

// collectMarksList finds every crossing mark in segs using a sorted active
// window: segments are visited in ascending order of their y-range's lower
// bound, with a window of still-relevant segments (those whose upper bound
// hasn't fallen below the current lower bound) tested against each new
// arrival. This is the spec's "all-pairs with an active window": no segment
// tree bucketing, but no need to compare pairs that can't possibly overlap
// in y either.
func collectMarksList(segs []Segment) ([]Mark, bool) {
	order := make([]int, len(segs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		li, _ := segs[order[i]].Seg.YRange()
		lj, _ := segs[order[j]].Seg.YRange()
		return li < lj
	})

	var marks []Mark
	anyRound := false
	window := make([]int, 0, len(segs))

	for _, idx := range order {
		cur := segs[idx].Seg
		curLo, _ := cur.YRange()

		kept := window[:0]
		for _, w := range window {
			_, whi := segs[w].Seg.YRange()
			if whi >= curLo {
				kept = append(kept, w)
			}
		}
		window = kept

		for _, w := range window {
			if m, ok := intersectPair(w, segs[w].Seg, idx, cur); ok {
				marks = append(marks, m)
				if m.Rounded {
					anyRound = true
				}
			}
		}
		window = append(window, idx)
	}
	return marks, anyRound
}
