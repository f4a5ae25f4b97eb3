// Package watch orchestrates change detection across airports and cycles.
//
// A [Checker] compares one airport's snapshots for a pair of cycles.
// Snapshots come from a [SnapshotSource]; the snapshot store satisfies it
// directly, and callers that extract on demand can wrap their pipeline in
// the interface. [Checker.CheckAll] sweeps a list of airports with bounded
// concurrency, and [Checker.FindLastChange] walks backwards through the
// cycle history until a comparison reports changes or the history runs
// out.
package watch
