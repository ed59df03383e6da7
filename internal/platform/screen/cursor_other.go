//go:build !(linux || freebsd || netbsd || openbsd || windows)

package screen

import "image"

type unsupportedCursor struct{}

func newCursorSource() cursorSource {
	return unsupportedCursor{}
}

func (unsupportedCursor) position() (image.Point, error) {
	return image.Point{}, ErrUnsupported
}

func (unsupportedCursor) close() error { return nil }
