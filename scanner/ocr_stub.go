//go:build !ocr

package scanner

import (
	"errors"
	"image"

	"github.com/tsawler/chartwatch/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support; this
// requires Tesseract to be installed on the system.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// RecoverSpans is the stub used when the "ocr" build tag is not set.
// It always returns ErrOCRNotEnabled.
func RecoverSpans(image.Image) ([]model.TextSpan, error) {
	return nil, ErrOCRNotEnabled
}
