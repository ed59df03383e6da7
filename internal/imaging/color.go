package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/color-detector/internal/colorspace"
)

// SampleColor returns the color of the pixel at (x, y). Coordinates are in the
// image's own space, with (0,0) at the top-left of a captured screenshot.
// 16-bit channels are reduced to their high byte; alpha is discarded.
func SampleColor(img image.Image, x, y int) (colorspace.RGB, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return colorspace.RGB{}, fmt.Errorf("coordinates (%d,%d) outside image bounds %v", x, y, img.Bounds())
	}
	return colorspace.FromColor(img.At(x, y)), nil
}

// LabeledPoint is a pixel coordinate with an optional descriptive label, such
// as "button_background".
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// LabeledColor is the color found at a LabeledPoint.
type LabeledColor struct {
	LabeledPoint
	RGB colorspace.RGB `json:"rgb"`
}

// SampleColors samples every point in order. If any point is out of bounds no
// partial results are returned.
func SampleColors(img image.Image, points []LabeledPoint) ([]LabeledColor, error) {
	results := make([]LabeledColor, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColor{LabeledPoint: p, RGB: c})
	}

	return results, nil
}
