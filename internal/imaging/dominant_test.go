package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/color-detector/internal/colorspace"
)

func TestDominantColors(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := DominantColors(img, 10, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 4 {
		t.Fatalf("got %d colors, want 4", len(result.Colors))
	}

	// Equal quarters tie, so they come back in hex order.
	wantHex := []string{"#0000f0", "#00f000", "#f00000", "#f0f0f0"}
	for i, c := range result.Colors {
		if c.Hex != wantHex[i] {
			t.Errorf("color %d: hex %s, want %s", i, c.Hex, wantHex[i])
		}
		if math.Abs(c.Percentage-25) > 1e-9 {
			t.Errorf("color %d: percentage %f, want 25", i, c.Percentage)
		}
		if c.Name == "" {
			t.Errorf("color %d: missing name", i)
		}
	}
}

func TestDominantColors_SortedByFrequency(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := color.RGBA{0, 0, 0, 255}
			switch {
			case y < 7:
				c = color.RGBA{255, 255, 255, 255}
			case y < 9:
				c = color.RGBA{255, 0, 0, 255}
			}
			img.Set(x, y, c)
		}
	}

	result, err := DominantColors(img, 2, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 2 {
		t.Fatalf("got %d colors, want 2 (count limit)", len(result.Colors))
	}
	first, second := result.Colors[0], result.Colors[1]
	if first.RGB != (colorspace.RGB{R: 240, G: 240, B: 240}) || math.Abs(first.Percentage-70) > 1e-9 {
		t.Errorf("first: got %+v", first)
	}
	if second.RGB != (colorspace.RGB{R: 240}) || math.Abs(second.Percentage-20) > 1e-9 {
		t.Errorf("second: got %+v", second)
	}
}

func TestDominantColors_WithRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	region := image.Rect(0, 0, 50, 50)
	result, err := DominantColors(img, 10, &region)
	if err != nil {
		t.Fatalf("DominantColors with region failed: %v", err)
	}

	if len(result.Colors) != 1 {
		t.Fatalf("got %d colors, want 1", len(result.Colors))
	}
	c := result.Colors[0]
	if c.Hex != "#f00000" || c.Percentage != 100 || c.Name != "red" {
		t.Errorf("got %+v, want #f00000 red at 100%%", c)
	}
}

func TestDominantColors_Quantization(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{0xF0, 0xF0, 0xF0, 255})
	img.Set(1, 0, color.RGBA{0xFA, 0xFA, 0xFA, 255})

	result, err := DominantColors(img, 5, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 || result.Colors[0].Hex != "#f0f0f0" {
		t.Errorf("similar colors not grouped: %+v", result.Colors)
	}
}

func TestDominantColors_Invalid(t *testing.T) {
	img := createPatternImage(10, 10)

	if _, err := DominantColors(img, 0, nil); err == nil {
		t.Error("count 0 should fail")
	}

	outside := image.Rect(5, 5, 20, 20)
	if _, err := DominantColors(img, 3, &outside); err == nil {
		t.Error("region outside the image should fail")
	}

	empty := image.Rect(2, 2, 2, 8)
	if _, err := DominantColors(img, 3, &empty); err == nil {
		t.Error("empty region should fail")
	}
}
