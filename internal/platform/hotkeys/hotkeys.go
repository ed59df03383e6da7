//go:build linux || windows || darwin

package hotkeys

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.design/x/hotkey"

	"github.com/ironsheep/color-detector/internal/picker"
)

// Dispatcher implements picker.HotkeyDispatcher for the desktop session.
type Dispatcher struct {
	logger *slog.Logger
}

// New returns a Dispatcher. A nil logger discards output.
func New(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{logger: logger}
}

// Register grabs h system-wide and calls fn on every key press until the
// returned binding is released. fn runs on the binding's own goroutine.
func (d *Dispatcher) Register(h picker.Hotkey, fn func()) (picker.HotkeyBinding, error) {
	mods, key, err := translate(h)
	if err != nil {
		return nil, err
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("register %s: %w", h, err)
	}

	b := &Binding{
		name:    h.String(),
		hk:      hk,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		logger:  d.logger,
	}
	go b.listen(fn)
	return b, nil
}

// Binding is an active registration returned by Dispatcher.Register.
type Binding struct {
	name    string
	hk      *hotkey.Hotkey
	done    chan struct{}
	stopped chan struct{}
	logger  *slog.Logger

	once sync.Once
	err  error
}

func (b *Binding) listen(fn func()) {
	defer close(b.stopped)
	for {
		select {
		case <-b.done:
			return
		case _, ok := <-b.hk.Keydown():
			if !ok {
				return
			}
			b.logger.Debug("hotkey pressed", "hotkey", b.name)
			fn()
		}
	}
}

// Release stops the listener and unregisters the hotkey. Only the first call
// has an effect; later calls return the same result. Release must not be
// called from the bound callback.
func (b *Binding) Release() error {
	b.once.Do(func() {
		close(b.done)
		<-b.stopped
		if err := b.hk.Unregister(); err != nil {
			b.err = fmt.Errorf("unregister %s: %w", b.name, err)
		}
	})
	return b.err
}

func translate(h picker.Hotkey) ([]hotkey.Modifier, hotkey.Key, error) {
	key, ok := keys[h.Key]
	if !ok {
		return nil, 0, fmt.Errorf("key %q has no system key code", h.Key)
	}
	mods := make([]hotkey.Modifier, 0, len(h.Modifiers))
	for _, m := range h.Modifiers {
		mod, ok := modifiers[m]
		if !ok {
			return nil, 0, fmt.Errorf("modifier %q is not available on this platform", m)
		}
		mods = append(mods, mod)
	}
	return mods, key, nil
}
