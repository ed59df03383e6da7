package picker

import (
	"errors"
	"sync"
	"testing"

	"github.com/ironsheep/color-detector/internal/colorspace"
)

func TestNewColorSample(t *testing.T) {
	c := colorspace.RGB{R: 255}
	s := NewColorSample(c)

	if s.RGB != c {
		t.Errorf("RGB: got %v, want %v", s.RGB, c)
	}
	if s.Lab != colorspace.ToLab(c) {
		t.Errorf("Lab: got %v", s.Lab)
	}
	if s.HSV != (colorspace.HSV{H: 0, S: 100, V: 100}) {
		t.Errorf("HSV: got %v", s.HSV)
	}
	if s.HSL != (colorspace.HSL{H: 0, S: 100, L: 50}) {
		t.Errorf("HSL: got %v", s.HSL)
	}
	if s.Foreground != (colorspace.RGB{G: 255, B: 255}) {
		t.Errorf("Foreground: got %v", s.Foreground)
	}
	if s.Hex != "#ff0000" || s.Name != "red" {
		t.Errorf("Hex/Name: got %s/%s", s.Hex, s.Name)
	}
}

func TestSampler_Sample(t *testing.T) {
	screen := newFakeScreen()
	screen.pointAt(100, 200, colorspace.RGB{R: 1, G: 2, B: 3})

	s, err := NewSampler(screen, screen).Sample()
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if s.RGB != (colorspace.RGB{R: 1, G: 2, B: 3}) || s.X != 100 || s.Y != 200 {
		t.Errorf("Sample: got %+v", s)
	}
}

func TestSampler_Errors(t *testing.T) {
	screen := newFakeScreen()
	sampler := NewSampler(screen, screen)

	screen.posErr = errGlitch
	if _, err := sampler.Sample(); !errors.Is(err, ErrPositionUnavailable) || errors.Is(err, ErrPixelRead) {
		t.Errorf("position failure: got %v", err)
	}

	screen.posErr = nil
	screen.pixelErr = errGlitch
	if _, err := sampler.Sample(); !errors.Is(err, ErrPixelRead) || errors.Is(err, ErrPositionUnavailable) {
		t.Errorf("pixel failure: got %v", err)
	}
}

func TestPreview_ConcurrentStoreLoad(t *testing.T) {
	var p Preview
	a := sampleOf(255, 0, 0)
	b := sampleOf(0, 0, 255)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				p.Store(a)
			} else {
				p.Store(b)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			got, ok := p.Load()
			if ok && got != a && got != b {
				t.Errorf("torn read: %+v", got)
				return
			}
		}
	}()
	wg.Wait()
}
