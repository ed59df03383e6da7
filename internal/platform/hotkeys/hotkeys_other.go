//go:build !(linux || windows || darwin)

package hotkeys

import (
	"errors"
	"log/slog"

	"github.com/ironsheep/color-detector/internal/picker"
)

// ErrUnsupported is returned by Register on platforms without global hotkeys.
var ErrUnsupported = errors.New("global hotkeys not supported on this platform")

// Dispatcher rejects every registration on this platform.
type Dispatcher struct{}

// New returns a Dispatcher.
func New(*slog.Logger) *Dispatcher { return &Dispatcher{} }

// Register always fails with ErrUnsupported.
func (*Dispatcher) Register(picker.Hotkey, func()) (picker.HotkeyBinding, error) {
	return nil, ErrUnsupported
}
