// Package config loads color-detector settings from the environment and the
// command line. Flags override environment variables, which override defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ironsheep/color-detector/internal/picker"
)

// Environment variables read by Load.
const (
	EnvPollInterval     = "COLOR_DETECTOR_POLL_INTERVAL"
	EnvSampleHotkey     = "COLOR_DETECTOR_SAMPLE_HOTKEY"
	EnvScreenshotHotkey = "COLOR_DETECTOR_SCREENSHOT_HOTKEY"
	EnvScreenshotDir    = "COLOR_DETECTOR_SCREENSHOT_DIR"
	EnvRegion           = "COLOR_DETECTOR_REGION"
	EnvLogLevel         = "COLOR_DETECTOR_LOG_LEVEL"
	EnvClipboard        = "COLOR_DETECTOR_CLIPBOARD"
	EnvCacheSize        = "COLOR_DETECTOR_CACHE_SIZE"
)

// Defaults applied before the environment and flags.
const (
	DefaultPollInterval     = 100 * time.Millisecond
	DefaultSampleHotkey     = "alt+x"
	DefaultScreenshotHotkey = "alt+p"
	DefaultCacheSize        = 16
)

// Config holds everything the composition root needs to wire the picker.
type Config struct {
	// PollInterval is how often the live preview samples the cursor.
	PollInterval time.Duration

	SampleHotkey     picker.Hotkey
	ScreenshotHotkey picker.Hotkey

	// ScreenshotDir, when set, receives a PNG of every screenshot in
	// addition to the clipboard.
	ScreenshotDir string

	// Region is the screen area captured by a screenshot. A nil Region
	// means the primary display.
	Region *image.Rectangle

	LogLevel slog.Level

	// Clipboard controls whether screenshots are copied to the clipboard.
	Clipboard bool

	// CacheSize is how many screenshots the MCP server keeps for follow-up
	// requests.
	CacheSize int
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	sample, _ := picker.ParseHotkey(DefaultSampleHotkey)
	shot, _ := picker.ParseHotkey(DefaultScreenshotHotkey)
	return Config{
		PollInterval:     DefaultPollInterval,
		SampleHotkey:     sample,
		ScreenshotHotkey: shot,
		LogLevel:         slog.LevelInfo,
		Clipboard:        true,
		CacheSize:        DefaultCacheSize,
	}
}

// Load builds a Config from the process environment and args (without the
// program name).
func Load(args []string) (Config, error) {
	return load(args, os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	// Raw string values, seeded from the environment and then overridden by
	// flags, so both sources go through the same parsers.
	raw := map[string]string{}
	for _, key := range []string{
		EnvPollInterval, EnvSampleHotkey, EnvScreenshotHotkey, EnvScreenshotDir,
		EnvRegion, EnvLogLevel, EnvClipboard, EnvCacheSize,
	} {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			raw[key] = strings.TrimSpace(v)
		}
	}

	fs := flag.NewFlagSet("color-detector", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	bind := func(name, key, usage string) {
		fs.Func(name, usage, func(v string) error {
			raw[key] = strings.TrimSpace(v)
			return nil
		})
	}
	bind("poll-interval", EnvPollInterval, "live preview sampling interval, e.g. 100ms")
	bind("sample-hotkey", EnvSampleHotkey, "hotkey that captures a color sample, e.g. alt+x")
	bind("screenshot-hotkey", EnvScreenshotHotkey, "hotkey that captures a screenshot, e.g. alt+p")
	bind("screenshot-dir", EnvScreenshotDir, "directory to save screenshots into")
	bind("region", EnvRegion, "screenshot region as x,y,width,height")
	bind("log-level", EnvLogLevel, "debug, info, warn, or error")
	bind("clipboard", EnvClipboard, "copy screenshots to the clipboard (true/false)")
	bind("cache-size", EnvCacheSize, "number of screenshots kept for MCP requests")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("invalid arguments: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	var errs []error
	if v, ok := raw[EnvPollInterval]; ok {
		d, err := time.ParseDuration(v)
		if err == nil && d <= 0 {
			err = errors.New("must be positive")
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("poll interval %q: %w", v, err))
		}
		cfg.PollInterval = d
	}
	if v, ok := raw[EnvSampleHotkey]; ok {
		h, err := picker.ParseHotkey(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("sample hotkey: %w", err))
		}
		cfg.SampleHotkey = h
	}
	if v, ok := raw[EnvScreenshotHotkey]; ok {
		h, err := picker.ParseHotkey(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("screenshot hotkey: %w", err))
		}
		cfg.ScreenshotHotkey = h
	}
	if v, ok := raw[EnvScreenshotDir]; ok {
		cfg.ScreenshotDir = v
	}
	if v, ok := raw[EnvRegion]; ok {
		r, err := ParseRegion(v)
		if err != nil {
			errs = append(errs, err)
		}
		cfg.Region = &r
	}
	if v, ok := raw[EnvLogLevel]; ok {
		lvl, err := ParseLevel(v)
		if err != nil {
			errs = append(errs, err)
		}
		cfg.LogLevel = lvl
	}
	if v, ok := raw[EnvClipboard]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("clipboard %q: expected true or false", v))
		}
		cfg.Clipboard = b
	}
	if v, ok := raw[EnvCacheSize]; ok {
		n, err := strconv.Atoi(v)
		if err == nil && n <= 0 {
			err = errors.New("must be positive")
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("cache size %q: %w", v, err))
		}
		cfg.CacheSize = n
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	if cfg.SampleHotkey.Equal(cfg.ScreenshotHotkey) {
		return Config{}, fmt.Errorf("sample and screenshot hotkeys are both %s", cfg.SampleHotkey)
	}
	return cfg, nil
}

// ParseRegion parses "x,y,width,height" in screen coordinates.
func ParseRegion(s string) (image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("region %q: expected x,y,width,height", s)
	}

	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("region %q: %w", s, err)
		}
		v[i] = n
	}
	if v[2] <= 0 || v[3] <= 0 {
		return image.Rectangle{}, fmt.Errorf("region %q: width and height must be positive", s)
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}

// ParseLevel maps a level name to a slog.Level. Names are case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: expected debug, info, warn, or error", s)
	}
	return lvl, nil
}

// Usage writes the flag and environment reference shown by --help.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v              Print version information")
	fmt.Fprintln(w, "  --help, -h                 Print this help message")
	fmt.Fprintln(w, "  -poll-interval DURATION    Live preview sampling interval (default 100ms)")
	fmt.Fprintln(w, "  -sample-hotkey COMBO       Capture a color sample (default alt+x)")
	fmt.Fprintln(w, "  -screenshot-hotkey COMBO   Capture a screenshot (default alt+p)")
	fmt.Fprintln(w, "  -screenshot-dir DIR        Also save screenshots as PNG files in DIR")
	fmt.Fprintln(w, "  -region X,Y,W,H            Screenshot region (default primary display)")
	fmt.Fprintln(w, "  -log-level LEVEL           debug, info, warn, or error (default info)")
	fmt.Fprintln(w, "  -clipboard BOOL            Copy screenshots to the clipboard (default true)")
	fmt.Fprintln(w, "  -cache-size N              Screenshots kept for MCP requests (default 16)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	for _, key := range []string{
		EnvPollInterval, EnvSampleHotkey, EnvScreenshotHotkey, EnvScreenshotDir,
		EnvRegion, EnvLogLevel, EnvClipboard, EnvCacheSize,
	} {
		fmt.Fprintf(w, "  %s\n", key)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags take precedence over environment variables.")
}
