package snapshot

import "github.com/tsawler/chartwatch/model"

// Meta carries the page-level metadata for one extraction.
type Meta struct {
	AirportCode string
	Cycle       string
	SourceFile  string
	PageWidth   float64
	PageHeight  float64
}

// Build assembles classified entities and page metadata into one snapshot.
// The input slices are copied; the returned snapshot owns its data and is
// treated as immutable from here on.
func Build(meta Meta, labels []model.TaxiwayLabel, runways []model.RunwayRecord, paths []model.PathSegment, rawRunwayText []string) *model.Snapshot {
	return &model.Snapshot{
		AirportCode:   meta.AirportCode,
		Cycle:         meta.Cycle,
		SourceFile:    meta.SourceFile,
		PageWidth:     meta.PageWidth,
		PageHeight:    meta.PageHeight,
		TaxiwayLabels: append([]model.TaxiwayLabel(nil), labels...),
		Runways:       append([]model.RunwayRecord(nil), runways...),
		Paths:         append([]model.PathSegment(nil), paths...),
		RawRunwayText: append([]string(nil), rawRunwayText...),
	}
}
