package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-detector/internal/colorspace"
)

// ColorFrequency is a quantized color and how much of the analyzed area it
// covers.
type ColorFrequency struct {
	Hex        string         `json:"hex"`
	Name       string         `json:"name"`
	Percentage float64        `json:"percentage"`
	RGB        colorspace.RGB `json:"rgb"`
}

// DominantColorsResult lists colors by frequency, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most common colors in img, or in
// region when it is not nil.
//
// # Color Quantization
//
// Similar colors are grouped by truncating each 8-bit channel to a multiple of
// 16:
//
//	quantized = (original / 16) * 16
//
// so #F0F0F0 and #FAFAFA are both counted as #F0F0F0. Ties in frequency are
// ordered by hex value so results are stable between runs.
//
// Every pixel in the area is visited; analyze a region for a quicker answer on
// a large screenshot.
func DominantColors(img image.Image, count int, region *image.Rectangle) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	var src *image.NRGBA
	if region != nil {
		if region.Empty() || !region.In(img.Bounds()) {
			return nil, fmt.Errorf("region %v outside image bounds %v", *region, img.Bounds())
		}
		src = imaging.Crop(img, *region)
	} else {
		src = imaging.Clone(img)
	}

	counts := make(map[colorspace.RGB]int)
	total := 0

	b := src.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+b.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			key := colorspace.RGB{R: row[i] / 16 * 16, G: row[i+1] / 16 * 16, B: row[i+2] / 16 * 16}
			counts[key]++
			total++
		}
	}
	if total == 0 {
		return &DominantColorsResult{Colors: []ColorFrequency{}}, nil
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        colorspace.Hex(c),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        c,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	// Naming is the expensive part, so only name what is returned.
	for i := range colors {
		colors[i].Name = colorspace.NearestName(colors[i].RGB)
	}

	return &DominantColorsResult{Colors: colors}, nil
}
