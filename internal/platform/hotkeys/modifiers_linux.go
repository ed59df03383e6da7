package hotkeys

import (
	"golang.design/x/hotkey"

	"github.com/ironsheep/color-detector/internal/picker"
)

// X11 reports Alt as Mod1 and the Super key as Mod4 on common keymaps.
var modifiers = map[string]hotkey.Modifier{
	picker.ModAlt:   hotkey.Mod1,
	picker.ModCtrl:  hotkey.ModCtrl,
	picker.ModShift: hotkey.ModShift,
	picker.ModSuper: hotkey.Mod4,
}
