package options

import "github.com/mikenye/overlay2d/types"

// PolicyFunc is a functional option that modifies a Policy.
type PolicyFunc func(*Policy)

// Policy configures how the splitter resolves segment intersections.
//
// Fields:
//   - Strategy: which algorithm to use (List, Tree, or Auto).
//   - ChunkStartLength: the initial chunk size used when the splitter
//     iteratively processes a large segment bag in batches.
//   - ChunkListMaxSize: under Auto, the edge-count threshold above which
//     the Tree strategy is preferred over List.
type Policy struct {
	Strategy         types.Strategy
	ChunkStartLength int
	ChunkListMaxSize int
}

// DefaultPolicy returns the Policy used when the caller supplies none.
//
// Defaults mirror the source solver's tuning: Auto strategy selection,
// a modest starting chunk, and a list/tree crossover sized so that the
// all-pairs list strategy only handles genuinely small batches.
func DefaultPolicy() Policy {
	return Policy{
		Strategy:         types.Auto,
		ChunkStartLength: 64,
		ChunkListMaxSize: 32,
	}
}

// ApplyPolicyOptions layers the given PolicyFunc values on top of defaults
// and returns the resulting Policy.
//
// Parameters:
//   - defaults: the base Policy to modify.
//   - opts: functional options applied in order.
//
// Returns:
//   - The resulting Policy after all options have been applied.
func ApplyPolicyOptions(defaults Policy, opts ...PolicyFunc) Policy {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// WithStrategy sets the splitter strategy.
func WithStrategy(s types.Strategy) PolicyFunc {
	return func(p *Policy) {
		p.Strategy = s
	}
}

// WithChunkStartLength sets the initial chunk size used for iterative
// processing of the segment bag. Values less than 1 are ignored.
func WithChunkStartLength(n int) PolicyFunc {
	return func(p *Policy) {
		if n >= 1 {
			p.ChunkStartLength = n
		}
	}
}

// WithChunkListMaxSize sets the edge-count threshold above which Auto
// prefers the Tree strategy. Values less than 1 are ignored.
func WithChunkListMaxSize(n int) PolicyFunc {
	return func(p *Policy) {
		if n >= 1 {
			p.ChunkListMaxSize = n
		}
	}
}
