package colorspace

import (
	"fmt"
	"image/color"
	"math"
)

// RGB represents an sRGB color with 8-bit components.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// String renders the color as "R: 255, G: 128, B: 0".
func (c RGB) String() string {
	return fmt.Sprintf("R: %d, G: %d, B: %d", c.R, c.G, c.B)
}

// RGBA implements color.Color. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// FromColor converts any color.Color to 8-bit RGB by keeping the high byte of
// each 16-bit channel. Alpha is ignored.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Lab represents a color in CIE L*a*b* space (D65).
type Lab struct {
	L float64 `json:"l"` // Lightness: 0-100
	A float64 `json:"a"` // Green (-) to red (+)
	B float64 `json:"b"` // Blue (-) to yellow (+)
}

func (c Lab) String() string {
	return fmt.Sprintf("L: %.2f, A: %.2f, B: %.2f", c.L, c.A, c.B)
}

// HSV represents a color in HSV (Hue, Saturation, Value) space.
type HSV struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-100 percent
	V float64 `json:"v"` // Value: 0-100 percent
}

func (c HSV) String() string {
	return fmt.Sprintf("H: %.2f, S: %.2f, V: %.2f", c.H, c.S, c.V)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) space.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-100 percent
	L float64 `json:"l"` // Lightness: 0-100 percent
}

func (c HSL) String() string {
	return fmt.Sprintf("H: %.2f, S: %.2f, L: %.2f", c.H, c.S, c.L)
}

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// ToLab converts an sRGB color to CIE L*a*b*.
//
// The conversion follows the usual chain:
//  1. Normalize each channel to 0-1
//  2. Undo the sRGB transfer curve
//  3. Project linear RGB onto XYZ with the sRGB/D65 matrix
//  4. Normalize XYZ by the reference white and apply the Lab pivot
//
// L is floored at 0. a and b are returned as computed.
func ToLab(c RGB) Lab {
	r := pivotRGB(float64(c.R) / 255.0)
	g := pivotRGB(float64(c.G) / 255.0)
	b := pivotRGB(float64(c.B) / 255.0)

	x := r*0.4124564 + g*0.3575761 + b*0.1804375
	y := r*0.2126729 + g*0.7151522 + b*0.0721750
	z := r*0.0193339 + g*0.1191920 + b*0.9503041

	fx := pivotXYZ(x / whiteX)
	fy := pivotXYZ(y / whiteY)
	fz := pivotXYZ(z / whiteZ)

	// The explicit conversion keeps 116*fy from being fused into a
	// multiply-add, so black lands on exactly 0.
	return Lab{
		L: math.Max(0, float64(116*fy)-16),
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func pivotRGB(n float64) float64 {
	if n > 0.04045 {
		return math.Pow((n+0.055)/1.055, 2.4)
	}
	return n / 12.92
}

func pivotXYZ(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// ToHSV converts an sRGB color to HSV.
func ToHSV(c RGB) HSV {
	max, min, h := hue(c)

	var s float64
	if max != 0 {
		s = (max - min) / max
	}

	return HSV{H: h, S: s * 100, V: max * 100}
}

// ToHSL converts an sRGB color to HSL.
func ToHSL(c RGB) HSL {
	max, min, h := hue(c)
	delta := max - min
	l := (max + min) / 2

	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// hue returns the normalized max and min channels and the hue in degrees.
// Ties between channels resolve red first, then green.
func hue(c RGB) (max, min, h float64) {
	rf := float64(c.R) / 255.0
	gf := float64(c.G) / 255.0
	bf := float64(c.B) / 255.0

	max = math.Max(rf, math.Max(gf, bf))
	min = math.Min(rf, math.Min(gf, bf))
	delta := max - min
	if delta == 0 {
		return max, min, 0
	}

	switch max {
	case rf:
		h = (gf - bf) / delta
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}

	return max, min, h * 60
}

// Complement returns the channel-wise inverse of c (255 - channel).
// Complement(Complement(c)) == c for every c.
func Complement(c RGB) RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}
