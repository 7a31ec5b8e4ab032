// Package options provides the functional-options configuration for the
// overlay2d solver: the strategy used to resolve segment intersections, and
// the thresholds that govern Auto strategy selection and iterative batch
// processing.
//
// # Key Features
//
//   - Strategy Selection: WithStrategy picks between List, Tree, and Auto.
//   - Batch Sizing: WithChunkStartLength sets the prefix the List strategy
//     scans first, and WithChunkListMaxSize sets the edge count above which
//     Auto prefers Tree.
//   - Functional Options Pattern: PolicyFunc applies optional configuration
//     to a Policy without requiring additional constructor parameters.
//
// These options are applied using ApplyPolicyOptions, which takes a default
// Policy and layers any supplied PolicyFunc values on top of it.
package options
