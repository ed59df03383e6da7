package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/color-detector/internal/colorspace"
	"github.com/ironsheep/color-detector/internal/imaging"
	"github.com/ironsheep/color-detector/internal/picker"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_capture_sample").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON (missing arguments mean defaults)
//  2. Applies default values for optional parameters
//  3. Calls the picker or loads screenshots from the cache as needed
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Picking
	case "color_live_preview":
		return s.handleLivePreview(args)
	case "color_capture_sample":
		return s.handleCaptureSample(args)
	case "color_sample_log":
		return s.handleSampleLog(args)
	case "color_clear_log":
		return s.handleClearLog(args)
	case "color_convert":
		return s.handleConvert(args)

	// Screenshots
	case "screenshot_capture":
		return s.handleScreenshotCapture(args)
	case "screenshot_list":
		return s.handleScreenshotList(args)
	case "screenshot_crop":
		return s.handleScreenshotCrop(args)
	case "screenshot_sample_colors":
		return s.handleScreenshotSampleColors(args)
	case "screenshot_dominant_colors":
		return s.handleScreenshotDominantColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments into v. Absent arguments leave v at
// its zero value so every field is treated as omitted.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Color Picking Handlers ===

type livePreviewArgs struct {
	Refresh bool `json:"refresh"`
}

type livePreviewResult struct {
	Available bool                `json:"available"`
	Sample    *picker.ColorSample `json:"sample,omitempty"`
	Error     string              `json:"error,omitempty"`
}

func (s *Server) handleLivePreview(args json.RawMessage) (interface{}, error) {
	var a livePreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var res livePreviewResult
	if a.Refresh {
		// A failed refresh still reports the previous preview.
		if err := s.picker.Refresh(); err != nil {
			res.Error = err.Error()
		}
	}
	if sample, ok := s.picker.Preview(); ok {
		res.Available = true
		res.Sample = &sample
	}
	return res, nil
}

func (s *Server) handleCaptureSample(args json.RawMessage) (interface{}, error) {
	sample, err := s.picker.CaptureSample()
	if err != nil {
		return nil, err
	}
	return sample, nil
}

type sampleLogResult struct {
	Count   int                  `json:"count"`
	Samples []picker.ColorSample `json:"samples"`
}

func (s *Server) handleSampleLog(args json.RawMessage) (interface{}, error) {
	samples := s.picker.Log().Samples()
	if samples == nil {
		samples = []picker.ColorSample{}
	}
	return sampleLogResult{Count: len(samples), Samples: samples}, nil
}

func (s *Server) handleClearLog(args json.RawMessage) (interface{}, error) {
	removed := s.picker.ClearLog()
	return map[string]int{"removed": removed, "count": s.picker.Log().Len()}, nil
}

type convertArgs struct {
	Hex string `json:"hex"`
	R   *int   `json:"r"`
	G   *int   `json:"g"`
	B   *int   `json:"b"`
}

func (s *Server) handleConvert(args json.RawMessage) (interface{}, error) {
	var a convertArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	hasRGB := a.R != nil || a.G != nil || a.B != nil
	switch {
	case a.Hex != "" && hasRGB:
		return nil, errors.New("give either hex or r/g/b, not both")
	case a.Hex != "":
		c, err := colorspace.ParseHex(a.Hex)
		if err != nil {
			return nil, err
		}
		return picker.NewColorSample(c), nil
	case hasRGB:
		if a.R == nil || a.G == nil || a.B == nil {
			return nil, errors.New("r, g and b are all required")
		}
		var c [3]uint8
		for i, v := range []int{*a.R, *a.G, *a.B} {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("component %d out of range 0-255", v)
			}
			c[i] = uint8(v)
		}
		return picker.NewColorSample(colorspace.RGB{R: c[0], G: c[1], B: c[2]}), nil
	default:
		return nil, errors.New("hex or r/g/b is required")
	}
}

// === Screenshot Handlers ===

type rectArgs struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// rect rejects non-positive sizes; image.Rect would otherwise swap the
// corners and select an area on the other side of the anchor.
func (r rectArgs) rect() (image.Rectangle, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: region size %dx%d must be positive", picker.ErrRegionCapture, r.Width, r.Height)
	}
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height), nil
}

type screenshotCaptureArgs struct {
	Region       *rectArgs `json:"region"`
	IncludeImage *bool     `json:"include_image"`
	Scale        float64   `json:"scale"`
}

type screenshotCaptureResult struct {
	ID             string                `json:"id"`
	Width          int                   `json:"width"`
	Height         int                   `json:"height"`
	ClipboardError string                `json:"clipboard_error,omitempty"`
	Image          *imaging.EncodeResult `json:"image,omitempty"`
}

func (s *Server) handleScreenshotCapture(args json.RawMessage) (interface{}, error) {
	var a screenshotCaptureArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	var (
		img *image.RGBA
		err error
	)
	if a.Region != nil {
		r, rerr := a.Region.rect()
		if rerr != nil {
			return nil, rerr
		}
		img, err = s.picker.CaptureScreenshotRect(r)
	} else {
		img, err = s.picker.CaptureScreenshot()
	}

	var res screenshotCaptureResult
	switch {
	case errors.Is(err, picker.ErrClipboardWrite) && img != nil:
		res.ClipboardError = err.Error()
	case err != nil:
		return nil, err
	}

	res.ID = s.shots.Put(img)
	res.Width, res.Height = img.Bounds().Dx(), img.Bounds().Dy()

	if a.IncludeImage == nil || *a.IncludeImage {
		enc, err := imaging.Encode(img, a.Scale)
		if err != nil {
			return nil, err
		}
		res.Image = enc
	}
	return res, nil
}

func (s *Server) handleScreenshotList(args json.RawMessage) (interface{}, error) {
	return map[string]interface{}{"screenshots": s.shots.List()}, nil
}

type screenshotCropArgs struct {
	ID    string  `json:"id"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleScreenshotCrop(args json.RawMessage) (interface{}, error) {
	var a screenshotCropArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.shots.Load(a.ID)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, image.Rect(a.X1, a.Y1, a.X2, a.Y2), a.Scale)
}

type screenshotSampleColorsArgs struct {
	ID     string                 `json:"id"`
	Points []imaging.LabeledPoint `json:"points"`
}

type labeledSample struct {
	Label  string             `json:"label,omitempty"`
	X      int                `json:"x"`
	Y      int                `json:"y"`
	Sample picker.ColorSample `json:"sample"`
}

func (s *Server) handleScreenshotSampleColors(args json.RawMessage) (interface{}, error) {
	var a screenshotSampleColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, errors.New("at least one point is required")
	}
	img, err := s.shots.Load(a.ID)
	if err != nil {
		return nil, err
	}

	colors, err := imaging.SampleColors(img, a.Points)
	if err != nil {
		return nil, err
	}

	// Positions here are image coordinates, so the sample's screen position
	// stays zero and the point is reported alongside it.
	out := make([]labeledSample, len(colors))
	for i, c := range colors {
		out[i] = labeledSample{Label: c.Label, X: c.X, Y: c.Y, Sample: picker.NewColorSample(c.RGB)}
	}
	return map[string]interface{}{"samples": out}, nil
}

type screenshotDominantColorsArgs struct {
	ID     string `json:"id"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region"`
}

func (s *Server) handleScreenshotDominantColors(args json.RawMessage) (interface{}, error) {
	var a screenshotDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.shots.Load(a.ID)
	if err != nil {
		return nil, err
	}

	var region *image.Rectangle
	if a.Region != nil {
		r := image.Rect(a.Region.X1, a.Region.Y1, a.Region.X2, a.Region.Y2)
		region = &r
	}
	return imaging.DominantColors(img, a.Count, region)
}
