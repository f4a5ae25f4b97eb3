package classify

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/tsawler/chartwatch/model"
	"github.com/tsawler/chartwatch/scanner"
)

// rawTextLimit caps how much page text is kept on an extraction for
// debugging.
const rawTextLimit = 1500

var (
	// dimensionPattern matches a runway dimension block: "12000 X 150".
	dimensionPattern = regexp.MustCompile(`(\d{4,5})\s*[Xx]\s*(\d{2,3})`)

	// combinedPattern matches a designator directly followed by its
	// dimensions: "4L-22R   14572 X 150" or "13-31 7000 X 150".
	combinedPattern = regexp.MustCompile(`(\d{1,2}[LCR]?)\s*[-/]\s*(\d{1,2}[LCR]?)\s+(\d{4,5})\s*[Xx]\s*(\d{2,3})`)

	// designatorListPattern matches a "RWY"/"RWYS" marker followed by one
	// or more comma-separated designator pairs.
	designatorListPattern = regexp.MustCompile(`RWYS?\s+(\d{1,2}[LCR]?[-/]\d{1,2}[LCR]?(?:\s*,\s*\d{1,2}[LCR]?[-/]\d{1,2}[LCR]?)*)`)

	// designatorPairPattern pulls individual end pairs out of a list match.
	designatorPairPattern = regexp.MustCompile(`(\d{1,2}[LCR]?)[-/](\d{1,2}[LCR]?)`)
)

// Tier identifies which extraction strategy produced the runway records.
// The tiers reflect decreasing confidence: exact co-located text, then
// order-correlated separate lists, then bare dimension harvesting.
type Tier int

const (
	TierNone Tier = iota
	TierCombined
	TierPositional
	TierDimensionOnly
)

func (t Tier) String() string {
	switch t {
	case TierCombined:
		return "combined"
	case TierPositional:
		return "positional"
	case TierDimensionOnly:
		return "dimension-only"
	default:
		return "none"
	}
}

// RunwayExtraction holds the classified runway records together with the
// tier that produced them and raw page text kept for debugging.
type RunwayExtraction struct {
	Records []model.RunwayRecord
	Tier    Tier
	RawText []string
}

// Runways extracts runway designators and dimensions from the page using
// the three-tier fallback. An unmatched page yields zero records, not an
// error.
func (c *Classifier) Runways(content *scanner.PageContent) RunwayExtraction {
	fullText := content.FullText()

	raw := fullText
	if len(raw) > rawTextLimit {
		raw = raw[:rawTextLimit]
	}
	extraction := RunwayExtraction{RawText: []string{raw}}

	positions := c.dimensionPositions(content)

	if records := c.combinedTier(fullText, positions); len(records) > 0 {
		extraction.Records = records
		extraction.Tier = TierCombined
		return extraction
	}
	if records := c.positionalTier(fullText, positions); len(records) > 0 {
		extraction.Records = records
		extraction.Tier = TierPositional
		return extraction
	}
	if records := c.dimensionTier(fullText, positions); len(records) > 0 {
		extraction.Records = records
		extraction.Tier = TierDimensionOnly
		return extraction
	}

	return extraction
}

// dimensionPositions maps each runway-sized (length, width) pair to the
// center of the text row it first appears on. Spans are joined into visual
// rows so a dimension split across spans ("7200 " + "X 150") still matches.
// The first occurrence on the page wins when a pair repeats.
func (c *Classifier) dimensionPositions(content *scanner.PageContent) map[[2]int]model.Point {
	positions := make(map[[2]int]model.Point)

	for _, row := range c.groupIntoRows(content.Spans) {
		text := ""
		var bbox model.BBox
		for i, span := range row {
			text += span.Text
			if i == 0 {
				bbox = span.BBox
			} else {
				x0 := min(bbox.Left(), span.BBox.Left())
				y0 := min(bbox.Top(), span.BBox.Top())
				x1 := max(bbox.Right(), span.BBox.Right())
				y1 := max(bbox.Bottom(), span.BBox.Bottom())
				bbox = model.NewBBoxFromCorners(x0, y0, x1, y1)
			}
		}

		for _, m := range dimensionPattern.FindAllStringSubmatch(text, -1) {
			length, _ := strconv.Atoi(m[1])
			width, _ := strconv.Atoi(m[2])
			if length < c.config.MinRunwayLengthFt {
				continue
			}
			key := [2]int{length, width}
			if _, ok := positions[key]; !ok {
				positions[key] = bbox.Center()
			}
		}
	}

	return positions
}

// groupIntoRows clusters spans into visual text rows by vertical proximity
// of their centers, ordering each row left to right.
func (c *Classifier) groupIntoRows(spans []model.TextSpan) [][]model.TextSpan {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]model.TextSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].Center(), sorted[j].Center()
		if ci.Y != cj.Y {
			return ci.Y < cj.Y
		}
		return ci.X < cj.X
	})

	var rows [][]model.TextSpan
	current := []model.TextSpan{sorted[0]}
	rowY := sorted[0].Center().Y

	for _, span := range sorted[1:] {
		y := span.Center().Y
		if y-rowY > c.config.RowTolerance {
			rows = append(rows, current)
			current = []model.TextSpan{span}
		} else {
			current = append(current, span)
		}
		rowY = y
	}
	rows = append(rows, current)

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].Center().X < row[j].Center().X
		})
	}

	return rows
}

// combinedTier finds designators directly paired with their dimensions in
// the page text.
func (c *Classifier) combinedTier(fullText string, positions map[[2]int]model.Point) []model.RunwayRecord {
	var records []model.RunwayRecord

	for _, m := range combinedPattern.FindAllStringSubmatch(fullText, -1) {
		length, _ := strconv.Atoi(m[3])
		width, _ := strconv.Atoi(m[4])
		pos := positions[[2]int{length, width}]

		records = append(records, model.RunwayRecord{
			Designator: m[1] + "/" + m[2],
			LengthFt:   length,
			WidthFt:    width,
			X:          pos.X,
			Y:          pos.Y,
			RawText:    m[0],
		})
	}

	return records
}

// positionalTier collects the designator list after a RWY/RWYS marker and
// the runway-sized dimension list independently, then zips them by order of
// appearance. FAA diagrams typically list them in corresponding order.
// Leftover dimensions beyond the designator count become Unknown records.
func (c *Classifier) positionalTier(fullText string, positions map[[2]int]model.Point) []model.RunwayRecord {
	var designators []string
	seen := make(map[string]bool)
	for _, m := range designatorListPattern.FindAllStringSubmatch(fullText, -1) {
		for _, pair := range designatorPairPattern.FindAllStringSubmatch(m[1], -1) {
			designator := pair[1] + "/" + pair[2]
			if !seen[designator] {
				seen[designator] = true
				designators = append(designators, designator)
			}
		}
	}

	type dim struct {
		length, width int
		pos           model.Point
	}
	var dims []dim
	for _, m := range dimensionPattern.FindAllStringSubmatch(fullText, -1) {
		length, _ := strconv.Atoi(m[1])
		width, _ := strconv.Atoi(m[2])
		if length < c.config.MinRunwayLengthFt {
			continue
		}
		dims = append(dims, dim{length, width, positions[[2]int{length, width}]})
	}

	var records []model.RunwayRecord
	for i, designator := range designators {
		if i >= len(dims) {
			break
		}
		d := dims[i]
		records = append(records, model.RunwayRecord{
			Designator: designator,
			LengthFt:   d.length,
			WidthFt:    d.width,
			X:          d.pos.X,
			Y:          d.pos.Y,
			RawText:    fmt.Sprintf("%s: %d x %d", designator, d.length, d.width),
		})
	}
	for i := len(designators); i < len(dims); i++ {
		d := dims[i]
		records = append(records, model.RunwayRecord{
			Designator: model.UnknownDesignator,
			LengthFt:   d.length,
			WidthFt:    d.width,
			X:          d.pos.X,
			Y:          d.pos.Y,
			RawText:    fmt.Sprintf("%s: %d x %d", model.UnknownDesignator, d.length, d.width),
		})
	}

	return records
}

// dimensionTier harvests every runway-sized dimension pair as an Unknown
// record. Last resort when no designator text could be found.
func (c *Classifier) dimensionTier(fullText string, positions map[[2]int]model.Point) []model.RunwayRecord {
	var records []model.RunwayRecord

	for _, m := range dimensionPattern.FindAllStringSubmatch(fullText, -1) {
		length, _ := strconv.Atoi(m[1])
		width, _ := strconv.Atoi(m[2])
		if length < c.config.MinRunwayLengthFt {
			continue
		}
		pos := positions[[2]int{length, width}]
		records = append(records, model.RunwayRecord{
			Designator: model.UnknownDesignator,
			LengthFt:   length,
			WidthFt:    width,
			X:          pos.X,
			Y:          pos.Y,
			RawText:    m[0],
		})
	}

	return records
}
