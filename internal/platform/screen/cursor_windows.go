//go:build windows

package screen

import (
	"errors"
	"image"

	"github.com/lxn/win"
)

type win32Cursor struct{}

func newCursorSource() cursorSource {
	return win32Cursor{}
}

func (win32Cursor) position() (image.Point, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return image.Point{}, errors.New("GetCursorPos failed")
	}
	return image.Pt(int(pt.X), int(pt.Y)), nil
}

func (win32Cursor) close() error { return nil }
