package colorspace

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// toColorful converts an 8-bit color to go-colorful's 0-1 representation.
func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex returns the color in lowercase "#rrggbb" form.
func Hex(c RGB) string {
	return toColorful(c).Hex()
}

// ParseHex parses a "#rgb" or "#rrggbb" color string. The leading '#' is
// optional and case is ignored.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want #rgb or #rrggbb", s)
	}

	col, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

type namedColor struct {
	name  string
	color colorful.Color
}

// palette holds the SVG 1.1 named colors in alphabetical order.
var palette = func() []namedColor {
	p := make([]namedColor, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		p = append(p, namedColor{
			name:  name,
			color: toColorful(RGB{R: c.R, G: c.G, B: c.B}),
		})
	}
	return p
}()

// NearestName returns the SVG/CSS color name closest to c by CIEDE2000
// distance. Equally close names resolve to the alphabetically first one.
func NearestName(c RGB) string {
	target := toColorful(c)

	best := ""
	bestDist := 0.0
	for i, nc := range palette {
		d := target.DistanceCIEDE2000(nc.color)
		if i == 0 || d < bestDist {
			best, bestDist = nc.name, d
		}
		if d == 0 {
			break
		}
	}
	return best
}
