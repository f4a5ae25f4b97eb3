package model

// TextSpan represents one positioned run of text on a page.
// Spans are transient: they exist only between scanning and classification.
type TextSpan struct {
	Text     string
	BBox     BBox
	FontSize float64
}

// Center returns the center point of the span's bounding box.
func (s TextSpan) Center() Point {
	return s.BBox.Center()
}

// LineSegment represents one vector line drawn on a page.
type LineSegment struct {
	Start Point
	End   Point
	Width float64 // Stroke width; thicker generally means runway
}
