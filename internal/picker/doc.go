// Package picker implements the color sampling pipeline of the color detector.
//
// A Picker ties together the pieces that turn "whatever is under the cursor"
// into color samples:
//
//   - Sampler reads the cursor position and the pixel beneath it through
//     platform collaborators and builds a ColorSample.
//   - Preview holds the latest sample produced by the polling loop.
//   - SampleLog keeps the samples a user captured explicitly, in order.
//   - Screenshots capture a screen region and hand it to a ClipboardWriter.
//
// # Collaborators
//
// The package never talks to the operating system directly. Cursor position,
// pixel reads, region capture, clipboard and global hotkeys are all small
// interfaces (see CursorPositionProvider, PixelColorProvider, RegionProvider,
// RegionCapturer, ClipboardWriter and HotkeyDispatcher) implemented under
// internal/platform.
//
// # Serialization
//
// Polling ticks, hotkey callbacks and presentation requests arrive on
// different goroutines. Picker runs every operation under one mutex so they
// never overlap. Preview and SampleLog are additionally safe for concurrent
// readers on their own.
//
// # Error Handling
//
// Failures wrap one of the sentinel errors (ErrPositionUnavailable,
// ErrPixelRead, ErrRegionCapture, ErrClipboardWrite, ErrHotkeyRegistration)
// and can be tested with errors.Is. A failed refresh keeps the previous
// preview, a failed capture appends nothing, and a failed screenshot never
// reaches the clipboard. Nothing is retried.
package picker
