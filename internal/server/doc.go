// Package server implements the MCP (Model Context Protocol) server for the
// color detector.
//
// It exposes the live color preview, the sample log, and screenshot capture
// to MCP clients so an assistant can read the color under the user's cursor,
// review the colors the user collected with the sample hotkey, and inspect
// screenshots.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses and notifications on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Picking:
//   - color_live_preview: Color under the cursor
//   - color_capture_sample: Sample the cursor into the log
//   - color_sample_log: List captured samples
//   - color_clear_log: Empty the log
//   - color_convert: Convert a hex or RGB color
//
// Screenshots:
//   - screenshot_capture: Capture and copy to the clipboard
//   - screenshot_list: Screenshots kept in memory
//   - screenshot_crop: Extract a region
//   - screenshot_sample_colors: Sample points
//   - screenshot_dominant_colors: Extract a color palette
//
// # Notifications
//
// Hotkeys change the sample log without a request, so every change is pushed
// as a notifications/sample_log/changed message carrying the change kind, the
// new log length, and the appended sample if any. Writes to stdout are
// serialized, so notifications never interleave with responses.
//
// Screenshots taken with the screenshot hotkey are stored in the screenshot
// cache and announced as notifications/screenshot/captured with their id.
//
// Requests without an id are notifications from the client and are never
// answered, even when they fail.
//
// # Screenshot Caching
//
// Captured screenshots are kept in a bounded in-memory cache and addressed by
// id. When the cache is full the oldest screenshot is dropped.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
