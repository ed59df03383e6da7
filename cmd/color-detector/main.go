package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.design/x/hotkey/mainthread"
	"golang.org/x/term"

	"github.com/ironsheep/color-detector/internal/config"
	"github.com/ironsheep/color-detector/internal/imaging"
	"github.com/ironsheep/color-detector/internal/picker"
	"github.com/ironsheep/color-detector/internal/platform/clipboard"
	"github.com/ironsheep/color-detector/internal/platform/filesink"
	"github.com/ironsheep/color-detector/internal/platform/hotkeys"
	"github.com/ironsheep/color-detector/internal/platform/screen"
	"github.com/ironsheep/color-detector/internal/schedule"
	"github.com/ironsheep/color-detector/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-detector %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-detector - screen color picker and screenshot tool with an MCP interface")
			fmt.Println()
			fmt.Println("Usage: color-detector [options]")
			fmt.Println()
			config.Usage(os.Stdout)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "color-detector: %v\n", err)
		os.Exit(2)
	}

	// Hotkeys need the main thread on macOS.
	code := 0
	mainthread.Init(func() { code = run(cfg) })
	os.Exit(code)
}

func run(cfg config.Config) int {
	// Logging goes to stderr (stdout is for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	logger.Debug("starting", "version", Version, "built", BuildTime, "commit", GitCommit)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Warn("stdin is a terminal; color-detector expects to be started by an MCP client")
	}

	scr := screen.New()
	defer scr.Close()

	var regions picker.RegionProvider = screen.PrimaryDisplay
	if cfg.Region != nil {
		regions = screen.FixedRegion(*cfg.Region)
	}

	var writers []picker.ClipboardWriter
	if cfg.Clipboard {
		writers = append(writers, clipboard.New())
	}
	if cfg.ScreenshotDir != "" {
		sink, err := filesink.New(cfg.ScreenshotDir)
		if err != nil {
			logger.Error("screenshot directory unusable", "dir", cfg.ScreenshotDir, "error", err)
			return 1
		}
		writers = append(writers, sink)
	}
	var clip picker.ClipboardWriter
	if len(writers) > 0 {
		clip = picker.MultiWriter(writers...)
	}

	p, err := picker.New(picker.Options{
		Cursor:    scr,
		Pixels:    scr,
		Regions:   regions,
		Capture:   scr,
		Clipboard: clip,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("failed to create picker", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	preview, err := schedule.Every(ctx, cfg.PollInterval, func() { _ = p.Refresh() })
	if err != nil {
		logger.Error("failed to start live preview", "error", err)
		return 1
	}
	defer preview.Stop()

	bindings := p.BindHotkeys(hotkeys.New(logger), cfg.SampleHotkey, cfg.ScreenshotHotkey)
	defer func() {
		if err := bindings.Release(); err != nil {
			logger.Warn("failed to release hotkeys", "error", err)
		}
	}()
	if len(bindings.Errors()) > 0 {
		logger.Warn("some hotkeys are unavailable; the MCP tools still work", "active", bindings.Active())
	}

	srv, err := server.New(server.Options{
		Picker:  p,
		Cache:   imaging.NewScreenshotCache(cfg.CacheSize),
		Logger:  logger,
		Version: Version,
	})
	if err != nil {
		logger.Error("failed to create server", "error", err)
		return 1
	}

	logger.Info("color detector ready",
		"poll_interval", cfg.PollInterval,
		"sample_hotkey", cfg.SampleHotkey.String(),
		"screenshot_hotkey", cfg.ScreenshotHotkey.String())

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		return 1
	}
	return 0
}
