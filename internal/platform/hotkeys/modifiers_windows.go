package hotkeys

import (
	"golang.design/x/hotkey"

	"github.com/ironsheep/color-detector/internal/picker"
)

var modifiers = map[string]hotkey.Modifier{
	picker.ModAlt:   hotkey.ModAlt,
	picker.ModCtrl:  hotkey.ModCtrl,
	picker.ModShift: hotkey.ModShift,
	picker.ModSuper: hotkey.ModWin,
}
