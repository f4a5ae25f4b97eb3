// Package diff compares two diagram snapshots and produces a categorized
// change report.
//
// The three categories are diffed independently:
//
//   - Taxiways: designator set membership (added/removed) plus a proximity
//     heuristic for renames - an old label and a new label within 15 page
//     units of each other, where neither designator survives on its own
//     side, reads as a rename.
//   - Runways: records are keyed by canonical designator (lower heading
//     first, dash and slash forms unified); dimension changes are reported
//     only when both sides carry a real (positive) value.
//   - Geometry: a coarse path-count delta; only differences of more than 50
//     segments are considered significant.
//
// [Compare] runs all three and aggregates the results into a
// [model.ComparisonResult] with summary counts and a flattened change list
// for legacy consumers. Comparison never mutates its inputs and never
// fails: unmatched or empty snapshots simply produce an empty report.
//
// Rename detection deliberately does not enforce a one-to-one match:
// when several old labels sit within range of several new labels, one
// physical rename can be reported more than once. Consumers relying on
// report parity with earlier versions depend on this, so it is kept.
package diff
