// Package clipboard copies screenshots to the system clipboard using
// golang.design/x/clipboard. On Linux this needs cgo and an X11 session.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"golang.design/x/clipboard"
)

// Writer implements picker.ClipboardWriter. The clipboard is initialized on
// the first write; if that fails every later write reports the same error.
type Writer struct {
	once    sync.Once
	initErr error
}

// New returns a Writer.
func New() *Writer {
	return &Writer{}
}

// WriteImage replaces the clipboard contents with img as PNG.
func (w *Writer) WriteImage(img image.Image) error {
	w.once.Do(func() {
		w.initErr = clipboard.Init()
	})
	if w.initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", w.initErr)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	// Write returns nil when the platform rejects the data.
	if changed := clipboard.Write(clipboard.FmtImage, buf.Bytes()); changed == nil {
		return errors.New("clipboard rejected image")
	}
	return nil
}
