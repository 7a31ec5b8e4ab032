// Package numeric provides small, exact integer helpers shared across the
// overlay2d core.
//
// The core performs all geometry in fixed-point integer coordinates (see the
// spec's Non-goals: no floating-point arithmetic in the splitter, fill
// engine, graph builder, or extractor), so this package intentionally
// carries no epsilon-tolerant comparison helpers. Callers needing
// float-to-fixed conversion or tolerance-based comparisons are expected to
// do so before handing coordinates to this module; that conversion layer is
// out of scope here.
package numeric
