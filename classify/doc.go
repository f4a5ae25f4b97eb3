// Package classify filters and labels raw page primitives into diagram
// entities: taxiway labels, runway records, and retained geometry.
//
// # Interior Bounds
//
// FAA-style diagrams place legends, notes, and title blocks in the page
// margins. The classifier restricts itself to the diagram interior, computed
// once per page from its dimensions (12% side margins, 10% top, 8% bottom).
// Only primitives whose center lies strictly inside these bounds are
// eligible.
//
// # Taxiway Labels
//
// A text span is accepted as a taxiway label when its font size sits in the
// label band, its text matches the designator shape (1-3 letters from a
// restricted alphabet), and it is not a known false-positive token such as
// "TWY" or a month abbreviation. Duplicate spans at the same rounded
// position are discarded.
//
// # Runways
//
// Runway extraction tries three strategies in decreasing order of
// confidence, stopping at the first that yields at least one record:
//
//  1. [TierCombined] - designator and dimensions in one text run
//  2. [TierPositional] - designator list and dimension list zipped by order
//  3. [TierDimensionOnly] - bare runway-sized dimensions, designator unknown
//
// # Geometry
//
// Line primitives with both endpoints strictly inside the interior bounds
// are retained as path segments; stroke width is carried through unmodified.
//
// # Configuration
//
// Classifier behavior is controlled by [Config]:
//
//	config := classify.DefaultConfig()
//	config.MinRunwayLengthFt = 3000
//	c := classify.New(config)
package classify
