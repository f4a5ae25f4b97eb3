package model

// UnknownDesignator is the sentinel designator for runway dimensions that
// could not be matched to a designator.
const UnknownDesignator = "Unknown"

// TaxiwayLabel is a classified taxiway designator occurrence on a diagram.
// The same designator may appear at many positions; occurrences are not
// deduplicated across positions.
type TaxiwayLabel struct {
	Designator string // Taxiway name, e.g. "A", "B", "YA", "KD"
	X          float64
	Y          float64
	BBox       BBox
}

// Position returns the label's center position as a point.
func (l TaxiwayLabel) Position() Point {
	return Point{X: l.X, Y: l.Y}
}

// RunwayRecord is a classified runway entry with its dimensions.
type RunwayRecord struct {
	Designator string // e.g. "4L/22R"; UnknownDesignator if unmatched
	LengthFt   int
	WidthFt    int
	X          float64 // X position of the dimension text on the diagram
	Y          float64 // Y position of the dimension text on the diagram
	Surface    string  // Surface type, e.g. "ASPH", "CONC"
	RawText    string  // Original matched text, kept for debugging
}

// PathSegment is a retained geometry line from the diagram interior.
type PathSegment struct {
	X0, Y0 float64
	X1, Y1 float64
	Width  float64
}

// Snapshot is one extracted version of an airport diagram for a given
// (airport, cycle) pair. A snapshot is immutable once built: diffing never
// mutates its inputs, and a later extraction of the same key produces an
// independent snapshot, never an in-place update.
type Snapshot struct {
	AirportCode   string
	Cycle         string
	SourceFile    string
	PageWidth     float64
	PageHeight    float64
	TaxiwayLabels []TaxiwayLabel
	Runways       []RunwayRecord
	Paths         []PathSegment
	RawRunwayText []string
}

// UniqueDesignators returns the set of distinct taxiway designators present
// in the snapshot.
func (s *Snapshot) UniqueDesignators() map[string]bool {
	set := make(map[string]bool, len(s.TaxiwayLabels))
	for _, l := range s.TaxiwayLabels {
		set[l.Designator] = true
	}
	return set
}
