package classify

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/tsawler/chartwatch/model"
	"github.com/tsawler/chartwatch/scanner"
)

// taxiwayPattern matches the designator shape: 1-2 letters from A-Z
// excluding I and O (rarely used as taxiway names), optionally followed by
// one more letter. Covers single letters and compounds like AA, YA, KD.
var taxiwayPattern = regexp.MustCompile(`^[A-HJ-NP-Z]{1,2}[A-Z]?$`)

// falsePositives are tokens that match the designator shape but are known
// incidental text: chart abbreviations, month codes, airport codes.
var falsePositives = map[string]bool{
	"TWY": true, "RWY": true, "TWR": true, "GND": true, "DEL": true,
	"APP": true, "DEP": true, "NOT": true, "FOR": true, "USE": true,
	"THE": true, "AND": true, "FEB": true, "JAN": true, "MAR": true,
	"APR": true, "MAY": true, "JUN": true, "JUL": true, "AUG": true,
	"SEP": true, "OCT": true, "NOV": true, "DEC": true, "FAA": true,
	"USA": true, "NYC": true, "LAX": true,
}

// IsValidDesignator reports whether text is a plausible taxiway designator
// after trimming and uppercasing.
func IsValidDesignator(text string) bool {
	text = strings.ToUpper(strings.TrimSpace(text))

	if falsePositives[text] {
		return false
	}
	return taxiwayPattern.MatchString(text)
}

// TaxiwayLabels extracts taxiway designator labels from the page, keeping
// only spans inside the diagram interior whose font size sits in the label
// band and whose text passes IsValidDesignator. A second label at an
// already-seen rounded position is discarded; source renderers emit
// duplicate spans at outline/fill boundaries.
func (c *Classifier) TaxiwayLabels(content *scanner.PageContent) []model.TaxiwayLabel {
	bounds := c.InteriorBounds(content.Width, content.Height)

	var labels []model.TaxiwayLabel
	seen := make(map[[2]float64]bool)

	for _, span := range content.Spans {
		center := span.Center()
		if !bounds.ContainsStrictly(center) {
			continue
		}

		if span.FontSize < c.config.MinLabelFontSize || span.FontSize > c.config.MaxLabelFontSize {
			continue
		}

		text := strings.ToUpper(span.Text)
		if !IsValidDesignator(text) {
			continue
		}

		key := [2]float64{math.Round(center.X), math.Round(center.Y)}
		if seen[key] {
			continue
		}
		seen[key] = true

		labels = append(labels, model.TaxiwayLabel{
			Designator: text,
			X:          center.X,
			Y:          center.Y,
			BBox:       span.BBox,
		})
	}

	return labels
}

// DescribeLabel formats a label for diagnostic output.
func DescribeLabel(l model.TaxiwayLabel) string {
	return fmt.Sprintf("%s at (%.0f, %.0f)", l.Designator, l.X, l.Y)
}
