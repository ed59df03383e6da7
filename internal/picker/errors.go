package picker

import "errors"

var (
	// ErrPositionUnavailable is returned when the cursor position cannot be read.
	ErrPositionUnavailable = errors.New("cursor position unavailable")

	// ErrPixelRead is returned when the pixel under the cursor cannot be read,
	// for example on a secure desktop or at an off-screen coordinate.
	ErrPixelRead = errors.New("pixel read failed")

	// ErrRegionCapture is returned when a screenshot region cannot be captured.
	ErrRegionCapture = errors.New("region capture failed")

	// ErrClipboardWrite is returned when a captured image cannot be handed to
	// the clipboard.
	ErrClipboardWrite = errors.New("clipboard write failed")

	// ErrHotkeyRegistration is returned when a global hotkey cannot be bound.
	ErrHotkeyRegistration = errors.New("hotkey registration failed")
)
