package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/tsawler/chartwatch/model"
)

// Wire structs mirror the persisted artifact schema exactly. The model
// types stay free of serialization concerns; conversion happens once, here.

type snapshotWire struct {
	AirportCode   string        `json:"airport_code"`
	Cycle         string        `json:"cycle"`
	SourceFile    string        `json:"source_file"`
	PageWidth     float64       `json:"page_width"`
	PageHeight    float64       `json:"page_height"`
	TaxiwayLabels []labelWire   `json:"taxiway_labels"`
	RunwayInfo    []runwayWire  `json:"runway_info"`
	Paths         []segmentWire `json:"paths"`
	RawRunwayText []string      `json:"raw_runway_text"`
}

type labelWire struct {
	Designator string     `json:"designator"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	BBox       [4]float64 `json:"bbox"` // x0, y0, x1, y1
}

type runwayWire struct {
	Designator string  `json:"designator"`
	LengthFt   int     `json:"length_ft"`
	WidthFt    int     `json:"width_ft"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Surface    string  `json:"surface"`
	RawText    string  `json:"raw_text"`
}

type segmentWire struct {
	X0    float64 `json:"x0"`
	Y0    float64 `json:"y0"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	Width float64 `json:"width"`
}

// Marshal encodes a snapshot into its persisted JSON form.
func Marshal(s *model.Snapshot) ([]byte, error) {
	wire := snapshotWire{
		AirportCode:   s.AirportCode,
		Cycle:         s.Cycle,
		SourceFile:    s.SourceFile,
		PageWidth:     s.PageWidth,
		PageHeight:    s.PageHeight,
		TaxiwayLabels: make([]labelWire, 0, len(s.TaxiwayLabels)),
		RunwayInfo:    make([]runwayWire, 0, len(s.Runways)),
		Paths:         make([]segmentWire, 0, len(s.Paths)),
		RawRunwayText: s.RawRunwayText,
	}
	if wire.RawRunwayText == nil {
		wire.RawRunwayText = []string{}
	}

	for _, l := range s.TaxiwayLabels {
		x0, y0, x1, y1 := l.BBox.Corners()
		wire.TaxiwayLabels = append(wire.TaxiwayLabels, labelWire{
			Designator: l.Designator,
			X:          l.X,
			Y:          l.Y,
			BBox:       [4]float64{x0, y0, x1, y1},
		})
	}
	for _, r := range s.Runways {
		wire.RunwayInfo = append(wire.RunwayInfo, runwayWire{
			Designator: r.Designator,
			LengthFt:   r.LengthFt,
			WidthFt:    r.WidthFt,
			X:          r.X,
			Y:          r.Y,
			Surface:    r.Surface,
			RawText:    r.RawText,
		})
	}
	for _, p := range s.Paths {
		wire.Paths = append(wire.Paths, segmentWire{
			X0: p.X0, Y0: p.Y0, X1: p.X1, Y1: p.Y1, Width: p.Width,
		})
	}

	return json.MarshalIndent(wire, "", "  ")
}

// Unmarshal decodes a persisted snapshot. Keys missing from older files
// decode to zero values and empty collections; only malformed JSON is an
// error.
func Unmarshal(data []byte) (*model.Snapshot, error) {
	var wire snapshotWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	snap := &model.Snapshot{
		AirportCode:   wire.AirportCode,
		Cycle:         wire.Cycle,
		SourceFile:    wire.SourceFile,
		PageWidth:     wire.PageWidth,
		PageHeight:    wire.PageHeight,
		TaxiwayLabels: make([]model.TaxiwayLabel, 0, len(wire.TaxiwayLabels)),
		Runways:       make([]model.RunwayRecord, 0, len(wire.RunwayInfo)),
		Paths:         make([]model.PathSegment, 0, len(wire.Paths)),
		RawRunwayText: wire.RawRunwayText,
	}

	for _, l := range wire.TaxiwayLabels {
		snap.TaxiwayLabels = append(snap.TaxiwayLabels, model.TaxiwayLabel{
			Designator: l.Designator,
			X:          l.X,
			Y:          l.Y,
			BBox:       model.NewBBoxFromCorners(l.BBox[0], l.BBox[1], l.BBox[2], l.BBox[3]),
		})
	}
	for _, r := range wire.RunwayInfo {
		snap.Runways = append(snap.Runways, model.RunwayRecord{
			Designator: r.Designator,
			LengthFt:   r.LengthFt,
			WidthFt:    r.WidthFt,
			X:          r.X,
			Y:          r.Y,
			Surface:    r.Surface,
			RawText:    r.RawText,
		})
	}
	for _, p := range wire.Paths {
		snap.Paths = append(snap.Paths, model.PathSegment{
			X0: p.X0, Y0: p.Y0, X1: p.X1, Y1: p.Y1, Width: p.Width,
		})
	}

	return snap, nil
}
