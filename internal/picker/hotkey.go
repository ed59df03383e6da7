package picker

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Modifier names accepted in hotkey combinations.
const (
	ModAlt   = "alt"
	ModCtrl  = "ctrl"
	ModShift = "shift"
	ModSuper = "super"
)

// Hotkey is a key combination such as alt+x.
type Hotkey struct {
	Modifiers []string // normalized modifier names, in the order given
	Key       string   // lower-case key name: a-z, 0-9, f1-f12, space, tab, escape, return
}

// String renders the combination as "alt+x".
func (h Hotkey) String() string {
	parts := append(append([]string{}, h.Modifiers...), h.Key)
	return strings.Join(parts, "+")
}

// Equal reports whether h and o are the same combination, ignoring the
// order modifiers were written in.
func (h Hotkey) Equal(o Hotkey) bool {
	if h.Key != o.Key || len(h.Modifiers) != len(o.Modifiers) {
		return false
	}
	for _, m := range h.Modifiers {
		if !slices.Contains(o.Modifiers, m) {
			return false
		}
	}
	return true
}

var modifierAliases = map[string]string{
	"alt":     ModAlt,
	"option":  ModAlt,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"super":   ModSuper,
	"win":     ModSuper,
	"cmd":     ModSuper,
}

// ParseHotkey parses a combination like "alt+x" or "Ctrl+Shift+F5".
// At least one modifier is required so a global binding cannot swallow a
// plain key.
func ParseHotkey(s string) (Hotkey, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	if len(parts) < 2 {
		return Hotkey{}, fmt.Errorf("invalid hotkey %q: want modifier+key", s)
	}

	var h Hotkey
	seen := make(map[string]bool)
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierAliases[strings.TrimSpace(p)]
		if !ok {
			return Hotkey{}, fmt.Errorf("invalid hotkey %q: unknown modifier %q", s, p)
		}
		if seen[mod] {
			return Hotkey{}, fmt.Errorf("invalid hotkey %q: duplicate modifier %q", s, p)
		}
		seen[mod] = true
		h.Modifiers = append(h.Modifiers, mod)
	}

	key := strings.TrimSpace(parts[len(parts)-1])
	if !validKey(key) {
		return Hotkey{}, fmt.Errorf("invalid hotkey %q: unsupported key %q", s, key)
	}
	h.Key = key
	return h, nil
}

func validKey(k string) bool {
	switch k {
	case "space", "tab", "escape", "return":
		return true
	}
	if len(k) == 1 {
		return (k[0] >= 'a' && k[0] <= 'z') || (k[0] >= '0' && k[0] <= '9')
	}
	if len(k) >= 2 && k[0] == 'f' {
		var n int
		if _, err := fmt.Sscanf(k[1:], "%d", &n); err != nil {
			return false
		}
		return n >= 1 && n <= 12 && fmt.Sprintf("f%d", n) == k
	}
	return false
}

// HotkeyBinding is a registered global hotkey. Release unregisters it.
type HotkeyBinding interface {
	Release() error
}

// HotkeyDispatcher registers global hotkeys. The callback runs each time the
// combination is pressed, on a goroutine owned by the dispatcher.
type HotkeyDispatcher interface {
	Register(h Hotkey, fn func()) (HotkeyBinding, error)
}

// Bindings owns the hotkeys bound by Picker.BindHotkeys.
type Bindings struct {
	mu       sync.Mutex
	bindings []HotkeyBinding
	errs     []error
	released bool
	logger   *slog.Logger
}

// Errors returns the registration failures, each wrapping
// ErrHotkeyRegistration. Failed hotkeys stay inert.
func (b *Bindings) Errors() []error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]error(nil), b.errs...)
}

// Active returns the number of bindings currently held.
func (b *Bindings) Active() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.bindings)
}

// Release unregisters every binding. Only the first call has any effect, so
// it is safe to defer alongside an explicit shutdown path.
func (b *Bindings) Release() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.released {
		return nil
	}
	b.released = true

	var errs []error
	for _, hb := range b.bindings {
		if err := hb.Release(); err != nil {
			errs = append(errs, err)
		}
	}
	b.bindings = nil

	if err := errors.Join(errs...); err != nil {
		b.logger.Warn("hotkey release failed", "error", err)
		return err
	}
	return nil
}

func (b *Bindings) bind(d HotkeyDispatcher, name string, h Hotkey, fn func()) {
	hb, err := d.Register(h, fn)
	if err != nil {
		err = fmt.Errorf("%w: %s (%s): %w", ErrHotkeyRegistration, name, h, err)
		b.errs = append(b.errs, err)
		b.logger.Warn("hotkey unavailable", "action", name, "hotkey", h.String(), "error", err)
		return
	}
	b.bindings = append(b.bindings, hb)
	b.logger.Info("hotkey bound", "action", name, "hotkey", h.String())
}
