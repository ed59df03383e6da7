package picker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseHotkey(t *testing.T) {
	tests := []struct {
		in   string
		want Hotkey
	}{
		{"alt+x", Hotkey{Modifiers: []string{ModAlt}, Key: "x"}},
		{"Alt+P", Hotkey{Modifiers: []string{ModAlt}, Key: "p"}},
		{"ctrl+shift+f5", Hotkey{Modifiers: []string{ModCtrl, ModShift}, Key: "f5"}},
		{"control + 1", Hotkey{Modifiers: []string{ModCtrl}, Key: "1"}},
		{"cmd+space", Hotkey{Modifiers: []string{ModSuper}, Key: "space"}},
		{"option+f12", Hotkey{Modifiers: []string{ModAlt}, Key: "f12"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHotkey(tt.in)
			if err != nil {
				t.Fatalf("ParseHotkey(%q) failed: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseHotkey_Invalid(t *testing.T) {
	tests := []string{
		"",
		"x",
		"alt+",
		"hyper+x",
		"alt+alt+x",
		"alt+f13",
		"alt+f01",
		"alt+xy",
		"alt+!",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseHotkey(in); err == nil {
				t.Errorf("ParseHotkey(%q) should fail", in)
			}
		})
	}
}

func TestHotkey_String(t *testing.T) {
	h, err := ParseHotkey("Ctrl+Alt+X")
	if err != nil {
		t.Fatal(err)
	}
	if got := h.String(); got != "ctrl+alt+x" {
		t.Errorf("String: got %q, want ctrl+alt+x", got)
	}
}

func TestHotkey_Equal(t *testing.T) {
	a, _ := ParseHotkey("ctrl+shift+x")
	b, _ := ParseHotkey("Shift+Control+X")
	c, _ := ParseHotkey("ctrl+x")
	d, _ := ParseHotkey("ctrl+shift+y")

	if !a.Equal(b) {
		t.Errorf("%s should equal %s", a, b)
	}
	if a.Equal(c) || a.Equal(d) {
		t.Error("different combinations compared equal")
	}
}
