package picker

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
)

// Options configures a Picker.
type Options struct {
	Cursor    CursorPositionProvider
	Pixels    PixelColorProvider
	Regions   RegionProvider
	Capture   RegionCapturer
	Clipboard ClipboardWriter // may be nil: screenshots are then only returned

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Picker is the color detector's core. It owns the live preview and the
// sample log and serializes every operation that touches them.
type Picker struct {
	mu sync.Mutex

	sampler     *Sampler
	screenshots *Screenshotter
	clipboard   ClipboardWriter

	preview Preview
	log     *SampleLog

	// lastRefreshErr suppresses repeated identical refresh failures in the log.
	lastRefreshErr string

	hotkeyShots subscribers[*image.RGBA]

	logger *slog.Logger
}

// New creates a Picker. Cursor, Pixels, Regions and Capture are required.
func New(opts Options) (*Picker, error) {
	if opts.Cursor == nil || opts.Pixels == nil {
		return nil, errors.New("picker: cursor and pixel providers are required")
	}
	if opts.Regions == nil || opts.Capture == nil {
		return nil, errors.New("picker: region provider and capturer are required")
	}

	return &Picker{
		sampler:     NewSampler(opts.Cursor, opts.Pixels),
		screenshots: NewScreenshotter(opts.Regions, opts.Capture),
		clipboard:   opts.Clipboard,
		log:         NewSampleLog(),
		logger:      loggerOrNop(opts.Logger),
	}, nil
}

// Preview returns the latest polled sample, or false if none is available yet.
func (p *Picker) Preview() (ColorSample, bool) {
	return p.preview.Load()
}

// Log returns the sample log. Callers should treat it as read-only and use
// CaptureSample and ClearLog to change it.
func (p *Picker) Log() *SampleLog {
	return p.log
}

// Refresh samples the pixel under the cursor and replaces the live preview.
// On failure the previous preview is kept.
func (p *Picker) Refresh() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, err := p.sampler.Sample()
	if err != nil {
		if msg := err.Error(); msg != p.lastRefreshErr {
			p.lastRefreshErr = msg
			p.logger.Debug("preview refresh failed", "error", err)
		}
		return err
	}
	p.lastRefreshErr = ""

	p.preview.Store(s)
	return nil
}

// CaptureSample samples the pixel under the cursor and appends it to the log.
// On failure the log is left unchanged.
func (p *Picker) CaptureSample() (ColorSample, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, err := p.sampler.Sample()
	if err != nil {
		p.logger.Warn("sample capture failed", "error", err)
		return ColorSample{}, err
	}

	p.log.Append(s)
	p.logger.Info("sample captured", "hex", s.Hex, "name", s.Name, "x", s.X, "y", s.Y, "entries", p.log.Len())
	return s, nil
}

// ClearLog empties the sample log and returns how many samples it removed.
func (p *Picker) ClearLog() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	removed := p.log.Len()
	p.log.Clear()
	p.logger.Info("sample log cleared", "removed", removed)
	return removed
}

// CaptureScreenshot captures the configured region and writes it to the
// clipboard. A failed capture never reaches the clipboard. If the capture
// succeeds but the clipboard write fails, the image is returned together with
// an error wrapping ErrClipboardWrite.
func (p *Picker) CaptureScreenshot() (*image.RGBA, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	img, err := p.screenshots.Capture()
	return p.deliverScreenshot(img, err)
}

// CaptureScreenshotRect is CaptureScreenshot for an explicit region r, given
// in screen coordinates, instead of the configured one.
func (p *Picker) CaptureScreenshotRect(r image.Rectangle) (*image.RGBA, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	img, err := p.screenshots.CaptureRect(r)
	return p.deliverScreenshot(img, err)
}

func (p *Picker) deliverScreenshot(img *image.RGBA, err error) (*image.RGBA, error) {
	if err != nil {
		p.logger.Warn("screenshot failed", "error", err)
		return nil, err
	}

	b := img.Bounds()
	if p.clipboard != nil {
		if err := p.clipboard.WriteImage(img); err != nil {
			err = fmt.Errorf("%w: %w", ErrClipboardWrite, err)
			p.logger.Warn("screenshot not copied", "error", err)
			return img, err
		}
	}

	p.logger.Info("screenshot captured", "width", b.Dx(), "height", b.Dy())
	return img, nil
}

// BindHotkeys registers the sample and screenshot hotkeys with d.
//
// A hotkey that cannot be registered is logged once and left inert; the other
// binding is still attempted. The caller must Release the returned Bindings on
// shutdown.
func (p *Picker) BindHotkeys(d HotkeyDispatcher, sample, screenshot Hotkey) *Bindings {
	b := &Bindings{logger: p.logger}

	b.bind(d, "capture-sample", sample, func() {
		_, _ = p.CaptureSample()
	})
	b.bind(d, "capture-screenshot", screenshot, func() {
		// A clipboard failure still yields the image.
		if img, _ := p.CaptureScreenshot(); img != nil {
			p.hotkeyShots.notify(img)
		}
	})

	return b
}

// SubscribeHotkeyScreenshots registers fn to receive every screenshot taken
// with the screenshot hotkey, after the clipboard write. Screenshots taken by
// calling CaptureScreenshot directly are not delivered. fn runs on the hotkey
// goroutine. The returned function removes the subscription.
func (p *Picker) SubscribeHotkeyScreenshots(fn func(*image.RGBA)) (cancel func()) {
	return p.hotkeyShots.add(fn)
}
