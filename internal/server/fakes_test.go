package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/ironsheep/color-detector/internal/colorspace"
	"github.com/ironsheep/color-detector/internal/imaging"
	"github.com/ironsheep/color-detector/internal/picker"
)

var errGlitch = errors.New("glitch")

// fakeDesktop is a 100x100 screen split into red, green, blue and white
// quadrants, with a movable cursor.
type fakeDesktop struct {
	mu      sync.Mutex
	cursor  image.Point
	failPos bool
}

func quadrantColor(x, y int) colorspace.RGB {
	switch {
	case x < 50 && y < 50:
		return colorspace.RGB{R: 255}
	case x >= 50 && y < 50:
		return colorspace.RGB{G: 255}
	case x < 50:
		return colorspace.RGB{B: 255}
	default:
		return colorspace.RGB{R: 255, G: 255, B: 255}
	}
}

func (d *fakeDesktop) moveTo(x, y int) {
	d.mu.Lock()
	d.cursor = image.Pt(x, y)
	d.mu.Unlock()
}

func (d *fakeDesktop) CursorPosition() (image.Point, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failPos {
		return image.Point{}, errGlitch
	}
	return d.cursor, nil
}

func (d *fakeDesktop) PixelAt(x, y int) (colorspace.RGB, error) {
	return quadrantColor(x, y), nil
}

func (d *fakeDesktop) Region() (image.Rectangle, error) {
	return image.Rect(0, 0, 100, 100), nil
}

func (d *fakeDesktop) CaptureRegion(r image.Rectangle) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			c := quadrantColor(r.Min.X+x, r.Min.Y+y)
			img.Set(x, y, color.RGBA{c.R, c.G, c.B, 255})
		}
	}
	return img, nil
}

type fakeClipboard struct {
	mu     sync.Mutex
	writes int
	err    error
}

func (c *fakeClipboard) WriteImage(image.Image) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.writes++
	return nil
}

// fakeHotkeys hands out bindings whose callbacks the test triggers with press.
type fakeHotkeys struct {
	mu       sync.Mutex
	handlers map[string]func()
}

func (d *fakeHotkeys) Register(h picker.Hotkey, fn func()) (picker.HotkeyBinding, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.handlers == nil {
		d.handlers = make(map[string]func())
	}
	d.handlers[h.String()] = fn
	return fakeHotkeyBinding{}, nil
}

func (d *fakeHotkeys) press(combo string) {
	d.mu.Lock()
	fn := d.handlers[combo]
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}

type fakeHotkeyBinding struct{}

func (fakeHotkeyBinding) Release() error { return nil }

type testEnv struct {
	srv     *Server
	desktop *fakeDesktop
	clip    *fakeClipboard
	picker  *picker.Picker
	out     *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	desk := &fakeDesktop{cursor: image.Pt(10, 10)}
	clip := &fakeClipboard{}

	p, err := picker.New(picker.Options{
		Cursor:    desk,
		Pixels:    desk,
		Regions:   desk,
		Capture:   desk,
		Clipboard: clip,
	})
	if err != nil {
		t.Fatalf("picker.New failed: %v", err)
	}

	out := &bytes.Buffer{}
	srv, err := New(Options{
		Picker:  p,
		Cache:   imaging.NewScreenshotCache(4),
		Version: "1.2.3",
		In:      &bytes.Buffer{},
		Out:     out,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return &testEnv{srv: srv, desktop: desk, clip: clip, picker: p, out: out}
}

// callTool runs a tools/call request and decodes the text content into
// result. It returns the JSON-RPC error, if any.
func (e *testEnv) callTool(t *testing.T, name string, args interface{}, result interface{}) *MCPError {
	t.Helper()

	params := map[string]interface{}{"name": name}
	if args != nil {
		params["arguments"] = args
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatal(err)
	}

	resp := e.srv.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		return resp.Error
	}

	res, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result should be a map, got %T", resp.Result)
	}
	content, ok := res["content"].([]map[string]interface{})
	if !ok || len(content) != 1 || content[0]["type"] != "text" {
		t.Fatalf("unexpected content: %v", res["content"])
	}
	if result != nil {
		if err := json.Unmarshal([]byte(content[0]["text"].(string)), result); err != nil {
			t.Fatalf("failed to decode tool result: %v", err)
		}
	}
	return nil
}
