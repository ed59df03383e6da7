package picker

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/ironsheep/color-detector/internal/colorspace"
)

// fakeScreen is a scripted cursor/pixel/region collaborator.
type fakeScreen struct {
	mu sync.Mutex

	pos    image.Point
	posErr error

	pixels   map[image.Point]colorspace.RGB
	pixelErr error

	region    image.Rectangle
	regionErr error

	captureErr error
	captures   int
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{
		pixels: make(map[image.Point]colorspace.RGB),
		region: image.Rect(10, 20, 50, 40),
	}
}

// pointAt moves the cursor to (x, y) and paints that pixel c.
func (f *fakeScreen) pointAt(x, y int, c colorspace.RGB) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pos = image.Pt(x, y)
	f.pixels[f.pos] = c
}

func (f *fakeScreen) CursorPosition() (image.Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.posErr != nil {
		return image.Point{}, f.posErr
	}
	return f.pos, nil
}

func (f *fakeScreen) PixelAt(x, y int) (colorspace.RGB, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pixelErr != nil {
		return colorspace.RGB{}, f.pixelErr
	}
	return f.pixels[image.Pt(x, y)], nil
}

func (f *fakeScreen) Region() (image.Rectangle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.region, f.regionErr
}

func (f *fakeScreen) CaptureRegion(r image.Rectangle) (*image.RGBA, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.captures++
	if f.captureErr != nil {
		return nil, f.captureErr
	}
	img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	return img, nil
}

// fakeClipboard records written images.
type fakeClipboard struct {
	mu     sync.Mutex
	images []image.Image
	err    error
}

func (c *fakeClipboard) WriteImage(img image.Image) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.images = append(c.images, img)
	return nil
}

func (c *fakeClipboard) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

// fakeDispatcher records registrations and lets tests press hotkeys.
type fakeDispatcher struct {
	mu       sync.Mutex
	fail     map[string]error
	handlers map[string]func()
	bindings []*fakeBinding
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{
		fail:     make(map[string]error),
		handlers: make(map[string]func()),
	}
}

func (d *fakeDispatcher) Register(h Hotkey, fn func()) (HotkeyBinding, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fail[h.String()]; err != nil {
		return nil, err
	}
	d.handlers[h.String()] = fn
	b := &fakeBinding{d: d, key: h.String()}
	d.bindings = append(d.bindings, b)
	return b, nil
}

// press invokes the handler for combo, reporting whether one was bound.
func (d *fakeDispatcher) press(combo string) bool {
	d.mu.Lock()
	fn, ok := d.handlers[combo]
	d.mu.Unlock()
	if ok {
		fn()
	}
	return ok
}

type fakeBinding struct {
	d        *fakeDispatcher
	key      string
	releases int
}

func (b *fakeBinding) Release() error {
	b.d.mu.Lock()
	defer b.d.mu.Unlock()
	b.releases++
	delete(b.d.handlers, b.key)
	return nil
}

var errGlitch = errors.New("glitch")
