// Package scanner turns one parsed diagram page into raw positioned
// primitives: text spans and vector line segments.
//
// The scanner performs pure structural extraction with no semantic judgment.
// Filtering and labeling of primitives belongs to the classify package.
//
// # Page Dumps
//
// The document parser is an external collaborator. It hands over one page as
// a JSON page dump containing the page dimensions, all text spans (text,
// bounding box, font size), and all line-drawing primitives (endpoints,
// stroke width). Use [Load] or [Decode] to read a dump:
//
//	page, err := scanner.Load("JFK_2602_page.json")
//	if err != nil {
//	    // handle error
//	}
//
// A dump that cannot be read or carries no content model yields an error
// wrapping [ErrParse] (or [ErrNotFound] for a missing file) and no partial
// result. Span text is Unicode-normalized and trimmed at ingestion.
//
// # OCR Fallback
//
// For scanned diagrams with no text layer, [RecoverSpans] can harvest word
// boxes from a page raster via Tesseract. OCR support is compiled in with
// the "ocr" build tag and requires Tesseract to be installed; without the
// tag it returns [ErrOCRNotEnabled].
package scanner
