package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func noArgs() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func screenshotIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Screenshot id returned by screenshot_capture (e.g. shot-1)",
	}
}

func scaleProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Optional scale factor (e.g., 0.5 to halve the size). Default 1.0",
		"default":     1.0,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Picking
		{
			Name:        "color_live_preview",
			Description: "Get the color currently under the mouse cursor as last sampled by the live preview, in RGB, hex, Lab, HSV and HSL with the nearest color name and a complementary foreground color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"refresh": map[string]interface{}{
						"type":        "boolean",
						"description": "Sample the cursor now instead of returning the last polled value. Default false",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "color_capture_sample",
			Description: "Sample the pixel under the mouse cursor and append it to the sample log. Same as pressing the sample hotkey.",
			InputSchema: noArgs(),
		},
		{
			Name:        "color_sample_log",
			Description: "List every captured color sample, oldest first.",
			InputSchema: noArgs(),
		},
		{
			Name:        "color_clear_log",
			Description: "Remove every entry from the sample log.",
			InputSchema: noArgs(),
		},
		{
			Name:        "color_convert",
			Description: "Convert a color given as hex or RGB components into every supported representation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color, #rrggbb or #rgb",
					},
					"r": map[string]interface{}{
						"type":        "integer",
						"description": "Red component (0-255)",
						"minimum":     0,
						"maximum":     255,
					},
					"g": map[string]interface{}{
						"type":        "integer",
						"description": "Green component (0-255)",
						"minimum":     0,
						"maximum":     255,
					},
					"b": map[string]interface{}{
						"type":        "integer",
						"description": "Blue component (0-255)",
						"minimum":     0,
						"maximum":     255,
					},
				},
			},
		},

		// Screenshots
		{
			Name:        "screenshot_capture",
			Description: "Capture the configured screen region (or the given one), copy it to the clipboard, and keep it for follow-up screenshot_* calls. Returns the screenshot id and, by default, the image as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional screen region to capture instead of the configured one",
						"properties": map[string]interface{}{
							"x":      map[string]interface{}{"type": "integer"},
							"y":      map[string]interface{}{"type": "integer"},
							"width":  map[string]interface{}{"type": "integer"},
							"height": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x", "y", "width", "height"},
					},
					"include_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the image data. Default true",
						"default":     true,
					},
					"scale": scaleProperty(),
				},
			},
		},
		{
			Name:        "screenshot_list",
			Description: "List the screenshots kept in memory with their ids, sizes and capture times.",
			InputSchema: noArgs(),
		},
		{
			Name:        "screenshot_crop",
			Description: "Crop a rectangular region from a captured screenshot and return it as base64-encoded PNG. Coordinates are relative to the screenshot.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": screenshotIDProperty(),
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": scaleProperty(),
				},
				"required": []string{"id", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "screenshot_sample_colors",
			Description: "Sample colors at one or more points of a captured screenshot. Each result carries every color representation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": screenshotIDProperty(),
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Points to sample, relative to the screenshot",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"id", "points"},
			},
		},
		{
			Name:        "screenshot_dominant_colors",
			Description: "Find the most common colors in a captured screenshot or a region of it, with hex values and nearest color names.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": screenshotIDProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region of the screenshot to analyze",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x1", "y1", "x2", "y2"},
					},
				},
				"required": []string{"id"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
