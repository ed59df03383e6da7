package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/ironsheep/color-detector/internal/imaging"
	"github.com/ironsheep/color-detector/internal/picker"
)

// SampleLogChanged is the notification sent whenever the sample log is
// appended to or cleared, whether by a tool call or a hotkey.
const SampleLogChanged = "notifications/sample_log/changed"

// ScreenshotCaptured is the notification sent when the screenshot hotkey
// stores a new screenshot in the cache. Its params are an imaging.ImageInfo.
const ScreenshotCaptured = "notifications/screenshot/captured"

// Server handles MCP protocol communication
type Server struct {
	picker  *picker.Picker
	shots   *imaging.ScreenshotCache
	logger  *slog.Logger
	version string

	in io.Reader

	// mu serializes writes: notifications arrive from hotkey goroutines
	// while responses are written by Run.
	mu  sync.Mutex
	enc *json.Encoder
}

// Options configures a Server.
type Options struct {
	Picker *picker.Picker

	// Cache holds screenshots between tool calls. Nil creates one with the
	// default capacity.
	Cache *imaging.ScreenshotCache

	Logger  *slog.Logger
	Version string

	// In and Out default to stdin and stdout.
	In  io.Reader
	Out io.Writer
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MCPNotification represents an outgoing notification (no ID)
type MCPNotification struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// New creates a new MCP server instance
func New(opts Options) (*Server, error) {
	if opts.Picker == nil {
		return nil, errors.New("server: picker is required")
	}
	if opts.Cache == nil {
		opts.Cache = imaging.NewScreenshotCache(imaging.DefaultCacheCapacity)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	return &Server{
		picker:  opts.Picker,
		shots:   opts.Cache,
		logger:  opts.Logger,
		version: opts.Version,
		in:      opts.In,
		enc:     json.NewEncoder(opts.Out),
	}, nil
}

// Run reads requests until the input is exhausted or ctx is cancelled. While
// it runs, sample log changes are pushed to the client as notifications.
//
// The reader goroutine cannot interrupt a blocked read, so after ctx is
// cancelled it stays parked on the input until the next line or EOF arrives.
// Run itself returns immediately; the goroutine exits on its next wake-up
// without handling the line.
func (s *Server) Run(ctx context.Context) error {
	cancel := s.picker.Log().Subscribe(func(ev picker.LogEvent) {
		s.notify(SampleLogChanged, ev)
	})
	defer cancel()

	cancelShots := s.picker.SubscribeHotkeyScreenshots(s.storeHotkeyScreenshot)
	defer cancelShots()

	lines := make(chan []byte)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		// Increase buffer size for large requests
		buf := make([]byte, 0, 64*1024)
		scanner.Buffer(buf, 1024*1024)

		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("scanner error: %w", err)
					}
				default:
				}
				return nil
			}
			s.handleLine(line)
		}
	}
}

// storeHotkeyScreenshot caches a screenshot taken with the hotkey so the
// screenshot_* tools can reach it, then tells the client its id.
func (s *Server) storeHotkeyScreenshot(img *image.RGBA) {
	id := s.shots.Put(img)
	info, err := s.shots.Info(id)
	if err != nil {
		// Evicted already by a concurrent Put.
		s.logger.Debug("hotkey screenshot evicted before notify", "id", id)
		return
	}
	s.notify(ScreenshotCaptured, info)
}

func (s *Server) handleLine(line []byte) {
	if len(line) == 0 {
		return
	}

	var req MCPRequest
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn("failed to parse request", "error", err)
		return
	}

	if resp := s.handleRequest(&req); resp != nil {
		s.write(resp)
	}
}

func (s *Server) write(v interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(v); err != nil {
		s.logger.Warn("failed to encode message", "error", err)
	}
}

func (s *Server) notify(method string, params interface{}) {
	s.write(&MCPNotification{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
	})
}

// handleRequest routes requests to appropriate handlers. Notifications (no
// id) are handled but never answered, not even with an error.
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	resp := s.route(req)
	if req.ID == nil {
		if resp != nil && resp.Error != nil {
			s.logger.Debug("notification failed", "method", req.Method, "error", resp.Error.Message)
		}
		return nil
	}
	return resp
}

func (s *Server) route(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "color-detector",
				"version": s.version,
			},
		},
	}
}
