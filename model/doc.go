// Package model provides the data model for airport diagram extraction and
// change detection.
//
// This package defines the types that flow between the scanner, classifier,
// snapshot builder, and change detector. All extraction and comparison
// operations ultimately produce these types, making them the primary API for
// consuming results.
//
// # Primitives
//
// Raw page content arrives as positioned primitives:
//
//   - [TextSpan] - one positioned run of text with font size
//   - [LineSegment] - one vector line with stroke width
//
// Primitives are transient; they are consumed during classification and do
// not appear in snapshots.
//
// # Snapshots
//
// A [Snapshot] is the immutable record of one extracted diagram version for
// an (airport, cycle) pair. It holds:
//
//   - [TaxiwayLabel] - classified taxiway designator occurrences
//   - [RunwayRecord] - classified runway designators and dimensions
//   - [PathSegment] - retained geometry lines inside the diagram interior
//
// # Changes
//
// Comparing two snapshots yields typed change records:
//
//   - [TaxiwayChange] - added, removed, or renamed taxiway designators
//   - [RunwayChange] - added or removed runways, length or width changes
//   - [GeometryChange] - coarse path-count differences
//
// A [ComparisonResult] bundles the three change lists with a [Summary] of
// counts and a flattened [FlatChange] list for legacy consumers.
//
// # Geometry
//
// Geometric primitives support position calculations:
//
//   - [BBox] - bounding box with center and containment checks
//   - [Point] - 2D point with distance calculation
package model
