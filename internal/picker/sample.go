package picker

import (
	"github.com/ironsheep/color-detector/internal/colorspace"
)

// ColorSample is one color read from the screen together with every
// representation derived from it.
//
// A ColorSample is a plain value: copies share nothing, so a sample stored in
// the preview and one appended to the log never alias each other.
type ColorSample struct {
	RGB        colorspace.RGB `json:"rgb"`
	Lab        colorspace.Lab `json:"lab"`
	HSV        colorspace.HSV `json:"hsv"`
	HSL        colorspace.HSL `json:"hsl"`
	Foreground colorspace.RGB `json:"foreground"` // complementary text color
	Hex        string         `json:"hex"`        // "#rrggbb"
	Name       string         `json:"name"`       // nearest SVG color name
	X          int            `json:"x"`          // screen X the pixel was read at
	Y          int            `json:"y"`          // screen Y the pixel was read at
}

// NewColorSample derives a complete sample from a single RGB value.
// The position fields are left at zero.
func NewColorSample(c colorspace.RGB) ColorSample {
	return ColorSample{
		RGB:        c,
		Lab:        colorspace.ToLab(c),
		HSV:        colorspace.ToHSV(c),
		HSL:        colorspace.ToHSL(c),
		Foreground: colorspace.Complement(c),
		Hex:        colorspace.Hex(c),
		Name:       colorspace.NearestName(c),
	}
}

// newColorSampleAt is NewColorSample with the screen position filled in.
func newColorSampleAt(c colorspace.RGB, x, y int) ColorSample {
	s := NewColorSample(c)
	s.X, s.Y = x, y
	return s
}
