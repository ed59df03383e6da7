package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodeResult contains a PNG rendering of an image, ready to be embedded in
// a JSON response.
type EncodeResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Encode renders img as a base64 PNG. A scale other than 1 (and greater than
// 0) resizes the image with a Lanczos filter first; a non-positive scale is
// treated as 1.
func Encode(img image.Image, scale float64) (*EncodeResult, error) {
	if img == nil {
		return nil, fmt.Errorf("no image to encode")
	}

	var out image.Image = img
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(img.Bounds().Dx()) * scale)
		newHeight := int(float64(img.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %g reduces %dx%d image to nothing", scale, img.Bounds().Dx(), img.Bounds().Dy())
		}
		out = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodeResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Crop extracts r from img and encodes it. r is in the image's own
// coordinates and must lie inside its bounds.
func Crop(img image.Image, r image.Rectangle, scale float64) (*EncodeResult, error) {
	bounds := img.Bounds()

	if !r.In(bounds) {
		return nil, fmt.Errorf("crop region %v outside image bounds %v", r, bounds)
	}
	if r.Empty() {
		return nil, fmt.Errorf("invalid crop region %v: must have positive width and height", r)
	}

	return Encode(imaging.Crop(img, r), scale)
}
