package screen

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// ErrNoDisplay is returned when no active display is found.
var ErrNoDisplay = errors.New("no active displays found")

var (
	numDisplays   = screenshot.NumActiveDisplays
	displayBounds = screenshot.GetDisplayBounds
)

// FixedRegion always captures the same rectangle.
type FixedRegion image.Rectangle

// Region implements picker.RegionProvider.
func (f FixedRegion) Region() (image.Rectangle, error) {
	r := image.Rectangle(f)
	if r.Empty() {
		return image.Rectangle{}, fmt.Errorf("empty region %v", r)
	}
	return r, nil
}

// Display captures a whole display. Its bounds are looked up on every call so
// that resolution and layout changes are picked up.
type Display int

// PrimaryDisplay is the display the operating system reports first.
const PrimaryDisplay Display = 0

// Region implements picker.RegionProvider.
func (d Display) Region() (image.Rectangle, error) {
	n := numDisplays()
	if n == 0 {
		return image.Rectangle{}, ErrNoDisplay
	}
	if int(d) < 0 || int(d) >= n {
		return image.Rectangle{}, fmt.Errorf("display %d out of range: %d active", d, n)
	}
	return displayBounds(int(d)), nil
}

// Displays returns the bounds of every active display.
func Displays() []image.Rectangle {
	n := numDisplays()
	out := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, displayBounds(i))
	}
	return out
}
