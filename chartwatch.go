// Package chartwatch provides a fluent API for turning airport diagram
// page dumps into extraction snapshots and comparing snapshots across
// AIRAC cycles.
//
// Basic usage:
//
//	snap, err := chartwatch.LoadPage("JFK_2602.json").
//	    Airport("JFK").
//	    Cycle("2602").
//	    Snapshot()
//	if err != nil {
//	    // handle error
//	}
//
// Comparing two snapshots:
//
//	result := chartwatch.Compare(oldSnap, newSnap)
//	if result.HasChanges() {
//	    report.Render(os.Stdout, *result)
//	}
//
// For lower-level control, the scanner, classify, snapshot, and diff
// packages are also available.
package chartwatch

import (
	"errors"

	"github.com/tsawler/chartwatch/classify"
	"github.com/tsawler/chartwatch/diff"
	"github.com/tsawler/chartwatch/model"
	"github.com/tsawler/chartwatch/scanner"
	"github.com/tsawler/chartwatch/snapshot"
)

// FromPage returns an Extraction over already-decoded page content.
func FromPage(content *scanner.PageContent) *Extraction {
	e := &Extraction{content: content, config: classify.DefaultConfig()}
	if content == nil {
		e.err = errors.New("nil page content")
	}
	return e
}

// LoadPage reads a page dump file and returns an Extraction over it.
// Load errors surface from the terminal Snapshot call.
func LoadPage(path string) *Extraction {
	content, err := scanner.Load(path)
	return &Extraction{
		content: content,
		config:  classify.DefaultConfig(),
		meta:    snapshot.Meta{SourceFile: path},
		err:     err,
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Extraction configures a page extraction. Each configuration method
// returns a new Extraction instance, making chains safe to share and
// reuse.
type Extraction struct {
	content *scanner.PageContent
	meta    snapshot.Meta
	config  classify.Config

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy so each chain method returns a new instance.
func (e *Extraction) clone() *Extraction {
	return &Extraction{
		content: e.content,
		meta:    e.meta,
		config:  e.config,
		err:     e.err,
	}
}

// Airport sets the airport code recorded on the snapshot.
func (e *Extraction) Airport(code string) *Extraction {
	ne := e.clone()
	ne.meta.AirportCode = code
	return ne
}

// Cycle sets the AIRAC cycle recorded on the snapshot.
func (e *Extraction) Cycle(cycle string) *Extraction {
	ne := e.clone()
	ne.meta.Cycle = cycle
	return ne
}

// Source sets the source file recorded on the snapshot. LoadPage fills
// this in automatically; FromPage callers set it here.
func (e *Extraction) Source(file string) *Extraction {
	ne := e.clone()
	ne.meta.SourceFile = file
	return ne
}

// Classifier replaces the classifier configuration for this extraction.
func (e *Extraction) Classifier(config classify.Config) *Extraction {
	ne := e.clone()
	ne.config = config
	return ne
}

// Snapshot runs the classifier over the page and returns the extraction
// snapshot. This is a terminal operation.
func (e *Extraction) Snapshot() (*model.Snapshot, error) {
	if e.err != nil {
		return nil, e.err
	}

	c := classify.New(e.config)
	labels := c.TaxiwayLabels(e.content)
	runways := c.Runways(e.content)
	paths := c.Paths(e.content)

	meta := e.meta
	meta.PageWidth = e.content.Width
	meta.PageHeight = e.content.Height

	return snapshot.Build(meta, labels, runways.Records, paths, runways.RawText), nil
}

// Compare diffs two snapshots, oldest first.
func Compare(oldSnap, newSnap *model.Snapshot) *model.ComparisonResult {
	return diff.Compare(oldSnap, newSnap)
}
