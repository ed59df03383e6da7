package picker

import (
	"fmt"
	"image"

	"github.com/ironsheep/color-detector/internal/colorspace"
)

// CursorPositionProvider reports the current cursor position in screen
// coordinates.
type CursorPositionProvider interface {
	CursorPosition() (image.Point, error)
}

// PixelColorProvider reads the color of a single screen pixel.
type PixelColorProvider interface {
	PixelAt(x, y int) (colorspace.RGB, error)
}

// Sampler builds a ColorSample from the pixel under the cursor.
//
// Sampler holds no state between calls: every Sample reads the position and
// the pixel afresh, and a failed read is reported rather than papered over.
type Sampler struct {
	cursor CursorPositionProvider
	pixels PixelColorProvider
}

// NewSampler creates a Sampler over the given collaborators.
func NewSampler(cursor CursorPositionProvider, pixels PixelColorProvider) *Sampler {
	return &Sampler{cursor: cursor, pixels: pixels}
}

// Sample reads the pixel under the cursor.
//
// Errors wrap ErrPositionUnavailable or ErrPixelRead.
func (s *Sampler) Sample() (ColorSample, error) {
	pt, err := s.cursor.CursorPosition()
	if err != nil {
		return ColorSample{}, fmt.Errorf("%w: %w", ErrPositionUnavailable, err)
	}

	c, err := s.pixels.PixelAt(pt.X, pt.Y)
	if err != nil {
		return ColorSample{}, fmt.Errorf("%w at (%d,%d): %w", ErrPixelRead, pt.X, pt.Y, err)
	}

	return newColorSampleAt(c, pt.X, pt.Y), nil
}
