// Package colorspace converts 8-bit sRGB colors into the representations the
// color detector displays: CIE L*a*b*, HSV and HSL.
//
// All functions in this package are pure and safe for concurrent use.
//
// # Ranges
//
// Values are reported the way they are displayed:
//   - Lab: L in [0,100] (floored at 0), a and b unclamped
//   - HSV: H in [0,360) degrees, S and V in [0,100] percent
//   - HSL: H in [0,360) degrees, S and L in [0,100] percent
//
// Achromatic colors (R == G == B, including black and white) always have a
// hue and saturation of 0 in both HSV and HSL.
//
// # Lab Conversion
//
// Lab uses the D65 reference white (0.95047, 1.0, 1.08883) and the
// conventional 0.008856 / 7.787 pivot constants rather than the exact CIE
// fractions, so values can differ from other libraries in the second decimal.
//
// # Complementary Colors
//
// Complement inverts every channel (255 - c). It is an exact involution and is
// used to pick a legible text color over a sampled background.
package colorspace
