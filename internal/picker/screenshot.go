package picker

import (
	"errors"
	"fmt"
	"image"
)

// RegionProvider supplies the screen rectangle a screenshot should cover,
// typically the application window's current bounds.
type RegionProvider interface {
	Region() (image.Rectangle, error)
}

// RegionCapturer grabs the pixels of a screen rectangle.
type RegionCapturer interface {
	CaptureRegion(r image.Rectangle) (*image.RGBA, error)
}

// ClipboardWriter accepts a captured image.
type ClipboardWriter interface {
	WriteImage(img image.Image) error
}

// Screenshotter captures a screen region into an image buffer.
//
// Each Capture performs exactly one capture attempt. It does not touch the
// color pipeline.
type Screenshotter struct {
	regions RegionProvider
	capture RegionCapturer
}

// NewScreenshotter creates a Screenshotter.
func NewScreenshotter(regions RegionProvider, capture RegionCapturer) *Screenshotter {
	return &Screenshotter{regions: regions, capture: capture}
}

// Capture captures the region reported by the RegionProvider.
// Errors wrap ErrRegionCapture.
func (s *Screenshotter) Capture() (*image.RGBA, error) {
	r, err := s.regions.Region()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegionCapture, err)
	}
	return s.CaptureRect(r)
}

// CaptureRect captures r. Errors wrap ErrRegionCapture.
func (s *Screenshotter) CaptureRect(r image.Rectangle) (*image.RGBA, error) {
	if r.Empty() {
		return nil, fmt.Errorf("%w: empty region %v", ErrRegionCapture, r)
	}

	img, err := s.capture.CaptureRegion(r)
	if err != nil {
		return nil, fmt.Errorf("%w: region %v: %w", ErrRegionCapture, r, err)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: region %v: no image returned", ErrRegionCapture, r)
	}
	return img, nil
}

// MultiWriter returns a ClipboardWriter that writes to every w in order.
// All writers are attempted; their errors are joined.
func MultiWriter(writers ...ClipboardWriter) ClipboardWriter {
	return multiWriter(writers)
}

type multiWriter []ClipboardWriter

func (m multiWriter) WriteImage(img image.Image) error {
	var errs []error
	for _, w := range m {
		if err := w.WriteImage(img); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
