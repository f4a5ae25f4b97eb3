// Package snapshot assembles classified diagram entities into immutable
// snapshots and moves them across the persistence boundary.
//
// # Building
//
// [Build] is pure assembly: it takes the classified collections plus page
// metadata and produces one [model.Snapshot]. No classification logic lives
// here.
//
// # Persistence
//
// Snapshots cross the persistence boundary as JSON with a fixed schema
// (airport_code, cycle, source_file, page dimensions, taxiway_labels,
// runway_info, paths, raw_runway_text). [Marshal] and [Unmarshal] convert
// between the wire form and the model; keys missing from older files decode
// to type-appropriate defaults, never an error.
//
// [Store] manages snapshot files in a data directory using the
// {AIRPORT}_{CYCLE}_extracted.json naming convention:
//
//	store := snapshot.NewStore("data")
//	snap, err := store.Load("JFK", "2602")
package snapshot
