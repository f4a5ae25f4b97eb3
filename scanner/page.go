package scanner

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/chartwatch/model"
)

// ErrNotFound indicates the page dump file does not exist.
var ErrNotFound = errors.New("page dump not found")

// ErrParse indicates the page dump is unreadable or has no content model.
var ErrParse = errors.New("page dump parse failure")

// PageContent holds everything the scanner extracts from one diagram page:
// the page dimensions plus every text span and line primitive present, with
// no filtering applied.
type PageContent struct {
	Width  float64
	Height float64
	Spans  []model.TextSpan
	Lines  []model.LineSegment
}

// pageDump mirrors the document parser's wire format for one page.
type pageDump struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Spans  []spanDump `json:"spans"`
	Lines  []lineDump `json:"lines"`
}

type spanDump struct {
	Text string     `json:"text"`
	BBox [4]float64 `json:"bbox"` // x0, y0, x1, y1
	Size float64    `json:"size"`
}

type lineDump struct {
	X0    float64 `json:"x0"`
	Y0    float64 `json:"y0"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	Width float64 `json:"width"`
}

// Load reads a page dump file and returns its content.
// A missing file yields an error wrapping ErrNotFound; an unreadable dump
// yields an error wrapping ErrParse. No partial result is ever returned.
func Load(path string) (*PageContent, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open page dump: %w", err)
	}
	defer f.Close()

	content, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return content, nil
}

// Decode reads one page dump from r and returns its content.
func Decode(r io.Reader) (*PageContent, error) {
	var dump pageDump
	dec := json.NewDecoder(r)
	if err := dec.Decode(&dump); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if dump.Width <= 0 || dump.Height <= 0 {
		return nil, fmt.Errorf("%w: page has no content model (%gx%g)", ErrParse, dump.Width, dump.Height)
	}

	content := &PageContent{
		Width:  dump.Width,
		Height: dump.Height,
		Spans:  make([]model.TextSpan, 0, len(dump.Spans)),
		Lines:  make([]model.LineSegment, 0, len(dump.Lines)),
	}

	for _, s := range dump.Spans {
		content.Spans = append(content.Spans, model.TextSpan{
			Text:     normalizeText(s.Text),
			BBox:     model.NewBBoxFromCorners(s.BBox[0], s.BBox[1], s.BBox[2], s.BBox[3]),
			FontSize: s.Size,
		})
	}

	for _, l := range dump.Lines {
		content.Lines = append(content.Lines, model.LineSegment{
			Start: model.Point{X: l.X0, Y: l.Y0},
			End:   model.Point{X: l.X1, Y: l.Y1},
			Width: l.Width,
		})
	}

	return content, nil
}

// FullText joins all span texts in page order, one span per line. Runway
// classification scans this joined form for patterns that may span lines.
func (p *PageContent) FullText() string {
	var sb strings.Builder
	for i, s := range p.Spans {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// normalizeText applies NFKC normalization and trims surrounding whitespace.
// Diagram renderers emit compatibility forms (ligatures, fullwidth digits)
// that would otherwise defeat the classifier's pattern matching.
func normalizeText(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}
