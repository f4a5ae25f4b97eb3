package classify

import (
	"github.com/tsawler/chartwatch/model"
	"github.com/tsawler/chartwatch/scanner"
)

// Paths retains the line primitives lying fully inside the diagram interior
// as path segments. These represent taxiway and runway geometry; stroke
// width is carried through unmodified.
func (c *Classifier) Paths(content *scanner.PageContent) []model.PathSegment {
	bounds := c.InteriorBounds(content.Width, content.Height)

	var paths []model.PathSegment
	for _, line := range content.Lines {
		if !bounds.ContainsStrictly(line.Start) || !bounds.ContainsStrictly(line.End) {
			continue
		}
		paths = append(paths, model.PathSegment{
			X0:    line.Start.X,
			Y0:    line.Start.Y,
			X1:    line.End.X,
			Y1:    line.End.Y,
			Width: line.Width,
		})
	}

	return paths
}
