//go:build ocr

package scanner

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/image/draw"

	"github.com/tsawler/chartwatch/model"
)

// maxOCRDimension caps the raster size handed to Tesseract. Diagram scans
// can be very large; recognition quality plateaus well below this.
const maxOCRDimension = 2400

// RecoverSpans runs Tesseract over a page raster and returns the recognized
// word boxes as text spans. It is a fallback for scanned diagrams that carry
// no text layer; positions are in raster pixel coordinates, so the caller
// must scale them to page units before classification.
func RecoverSpans(img image.Image) ([]model.TextSpan, error) {
	img = downscale(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode raster: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set OCR image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("failed to get OCR word boxes: %w", err)
	}

	spans := make([]model.TextSpan, 0, len(boxes))
	for _, box := range boxes {
		text := normalizeText(box.Word)
		if text == "" {
			continue
		}
		bbox := model.NewBBoxFromCorners(
			float64(box.Box.Min.X), float64(box.Box.Min.Y),
			float64(box.Box.Max.X), float64(box.Box.Max.Y),
		)
		spans = append(spans, model.TextSpan{
			Text:     text,
			BBox:     bbox,
			FontSize: bbox.Height, // Word box height approximates point size
		})
	}

	return spans, nil
}

// downscale shrinks img so neither dimension exceeds maxOCRDimension,
// preserving aspect ratio.
func downscale(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxOCRDimension && h <= maxOCRDimension {
		return img
	}

	scale := float64(maxOCRDimension) / float64(w)
	if h > w {
		scale = float64(maxOCRDimension) / float64(h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
