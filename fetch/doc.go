// Package fetch downloads FAA airport diagram PDFs.
//
// Diagrams live at a predictable URL per cycle and chart number:
//
//	https://aeronav.faa.gov/d-tpp/{cycle}/{number}AD.PDF
//
// [Fetcher] downloads one diagram at a time into its data directory,
// naming files {CODE}_{CYCLE}.pdf and skipping files that already exist
// unless Force is set. A missing diagram (the FAA serves 404 for cycles
// that were never published or have aged out) is reported as
// [ErrNotAvailable] so callers walking the cycle history know when to
// stop.
package fetch
