package classify

import "github.com/tsawler/chartwatch/model"

// Config controls classification behavior.
type Config struct {
	// Interior bounds margins as fractions of the page dimensions.
	SideMarginRatio   float64
	TopMarginRatio    float64
	BottomMarginRatio float64

	// Font size band for taxiway labels, in points. Labels are small;
	// headings and body notes fall outside this band.
	MinLabelFontSize float64
	MaxLabelFontSize float64

	// Minimum length for a dimension pair to count as runway-sized.
	// Sub-2000 values on FAA diagrams are helipads, stopways, and noise.
	MinRunwayLengthFt int

	// Maximum vertical drift between span centers still considered the
	// same visual text row when joining spans for dimension matching.
	RowTolerance float64
}

// DefaultConfig returns the default classification configuration.
func DefaultConfig() Config {
	return Config{
		SideMarginRatio:   0.12,
		TopMarginRatio:    0.10,
		BottomMarginRatio: 0.08,
		MinLabelFontSize:  4.0,
		MaxLabelFontSize:  10.0,
		MinRunwayLengthFt: 2000,
		RowTolerance:      2.0,
	}
}

// Classifier labels raw page primitives using heuristic rules.
// The zero value is not usable; construct with New.
type Classifier struct {
	config Config
}

// New creates a classifier with the given configuration.
func New(config Config) *Classifier {
	return &Classifier{config: config}
}

// NewDefault creates a classifier with DefaultConfig.
func NewDefault() *Classifier {
	return New(DefaultConfig())
}

// InteriorBounds estimates the sub-rectangle of a page containing the actual
// surface diagram, excluding margins, title blocks, and notes.
func (c *Classifier) InteriorBounds(pageWidth, pageHeight float64) model.BBox {
	marginX := pageWidth * c.config.SideMarginRatio
	marginTop := pageHeight * c.config.TopMarginRatio
	marginBottom := pageHeight * c.config.BottomMarginRatio

	return model.NewBBoxFromCorners(
		marginX, marginTop,
		pageWidth-marginX, pageHeight-marginBottom,
	)
}
