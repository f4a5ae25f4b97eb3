// Package report renders comparison results for human readers.
//
// [Render] writes a sectioned text report: a header identifying the
// airport and cycle pair, a summary table, then one block per change
// category. Section headers are colored when the destination supports
// it; set color.NoColor (or the NO_COLOR environment variable, which
// the color package honors on its own) to force plain output.
package report
