package screen

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/color-detector/internal/colorspace"
)

type stubCursor struct {
	pt     image.Point
	err    error
	closed int
}

func (c *stubCursor) position() (image.Point, error) { return c.pt, c.err }
func (c *stubCursor) close() error                   { c.closed++; return nil }

// fakeDesktop paints every screen pixel with a color derived from its
// coordinates and records the rectangles it was asked for.
type fakeDesktop struct {
	requests []image.Rectangle
	err      error
}

func (d *fakeDesktop) capture(r image.Rectangle) (*image.RGBA, error) {
	d.requests = append(d.requests, r)
	if d.err != nil {
		return nil, d.err
	}
	img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			img.Set(x, y, color.RGBA{uint8(r.Min.X + x), uint8(r.Min.Y + y), 7, 255})
		}
	}
	return img, nil
}

func newTestScreen() (*Screen, *stubCursor, *fakeDesktop) {
	cur := &stubCursor{pt: image.Pt(3, 4)}
	desk := &fakeDesktop{}
	return &Screen{cursor: cur, capture: desk.capture}, cur, desk
}

func TestScreen_CursorPosition(t *testing.T) {
	s, cur, _ := newTestScreen()

	pt, err := s.CursorPosition()
	if err != nil || pt != image.Pt(3, 4) {
		t.Errorf("CursorPosition: got %v, %v", pt, err)
	}

	cur.err = ErrUnsupported
	if _, err := s.CursorPosition(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}

	if err := s.Close(); err != nil || cur.closed != 1 {
		t.Errorf("Close: err %v, closed %d", err, cur.closed)
	}
}

func TestScreen_PixelAt(t *testing.T) {
	s, _, desk := newTestScreen()

	got, err := s.PixelAt(40, 50)
	if err != nil {
		t.Fatalf("PixelAt failed: %v", err)
	}
	if want := (colorspace.RGB{R: 40, G: 50, B: 7}); got != want {
		t.Errorf("PixelAt: got %v, want %v", got, want)
	}
	if len(desk.requests) != 1 || desk.requests[0] != image.Rect(40, 50, 41, 51) {
		t.Errorf("capture requests: %v", desk.requests)
	}
}

func TestScreen_PixelAtError(t *testing.T) {
	s, _, desk := newTestScreen()
	desk.err = errors.New("display busy")

	if _, err := s.PixelAt(1, 1); err == nil {
		t.Error("PixelAt should report the capture error")
	}
}

func TestScreen_CaptureRegion(t *testing.T) {
	s, _, desk := newTestScreen()

	img, err := s.CaptureRegion(image.Rect(10, 10, 30, 20))
	if err != nil {
		t.Fatalf("CaptureRegion failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("size: got %v", img.Bounds())
	}

	if _, err := s.CaptureRegion(image.Rect(5, 5, 5, 9)); err == nil {
		t.Error("empty region should fail")
	}
	if len(desk.requests) != 1 {
		t.Errorf("empty region reached the capturer: %v", desk.requests)
	}
}

func withDisplays(t *testing.T, bounds ...image.Rectangle) {
	t.Helper()
	oldNum, oldBounds := numDisplays, displayBounds
	numDisplays = func() int { return len(bounds) }
	displayBounds = func(i int) image.Rectangle { return bounds[i] }
	t.Cleanup(func() { numDisplays, displayBounds = oldNum, oldBounds })
}

func TestDisplay_Region(t *testing.T) {
	withDisplays(t, image.Rect(0, 0, 1920, 1080), image.Rect(1920, 0, 3840, 1080))

	r, err := PrimaryDisplay.Region()
	if err != nil || r != image.Rect(0, 0, 1920, 1080) {
		t.Errorf("primary: got %v, %v", r, err)
	}
	r, err = Display(1).Region()
	if err != nil || r != image.Rect(1920, 0, 3840, 1080) {
		t.Errorf("second: got %v, %v", r, err)
	}
	if _, err := Display(2).Region(); err == nil {
		t.Error("out-of-range display should fail")
	}

	if got := Displays(); len(got) != 2 {
		t.Errorf("Displays: got %v", got)
	}
}

func TestDisplay_NoDisplays(t *testing.T) {
	withDisplays(t)

	if _, err := PrimaryDisplay.Region(); !errors.Is(err, ErrNoDisplay) {
		t.Errorf("got %v, want ErrNoDisplay", err)
	}
}

func TestFixedRegion(t *testing.T) {
	r, err := FixedRegion(image.Rect(1, 2, 3, 4)).Region()
	if err != nil || r != image.Rect(1, 2, 3, 4) {
		t.Errorf("got %v, %v", r, err)
	}
	if _, err := FixedRegion(image.Rectangle{}).Region(); err == nil {
		t.Error("empty fixed region should fail")
	}
}
