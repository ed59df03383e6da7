// Package screen reads the cursor position and screen pixels from the
// desktop. Pixels are captured with github.com/kbinani/screenshot; the cursor
// comes from X11 on Linux and the Win32 API on Windows.
package screen

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/ironsheep/color-detector/internal/colorspace"
)

// ErrUnsupported is returned by CursorPosition on platforms without a cursor
// backend.
var ErrUnsupported = errors.New("cursor position not supported on this platform")

type cursorSource interface {
	position() (image.Point, error)
	close() error
}

// Screen implements the picker's cursor, pixel, and region capture
// collaborators for the local desktop.
type Screen struct {
	cursor  cursorSource
	capture func(image.Rectangle) (*image.RGBA, error)
}

// New returns a Screen for the current platform. Connections to the display
// server are opened lazily on first use.
func New() *Screen {
	return &Screen{
		cursor:  newCursorSource(),
		capture: screenshot.CaptureRect,
	}
}

// CursorPosition returns the pointer location in screen coordinates.
func (s *Screen) CursorPosition() (image.Point, error) {
	return s.cursor.position()
}

// PixelAt captures the single pixel at (x, y).
func (s *Screen) PixelAt(x, y int) (colorspace.RGB, error) {
	img, err := s.capture(image.Rect(x, y, x+1, y+1))
	if err != nil {
		return colorspace.RGB{}, err
	}
	if img == nil || img.Bounds().Empty() {
		return colorspace.RGB{}, fmt.Errorf("empty capture at (%d,%d)", x, y)
	}
	min := img.Bounds().Min
	return colorspace.FromColor(img.At(min.X, min.Y)), nil
}

// CaptureRegion captures r, given in screen coordinates.
func (s *Screen) CaptureRegion(r image.Rectangle) (*image.RGBA, error) {
	if r.Empty() {
		return nil, fmt.Errorf("empty region %v", r)
	}
	return s.capture(r)
}

// Close releases the display server connection, if one was opened.
func (s *Screen) Close() error {
	return s.cursor.close()
}
