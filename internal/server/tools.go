package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// regionNames are the named regions accepted by asset_clip and asset_pixels.
var regionNames = []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "asset_info",
			Description: "Load an image file and report its dimensions, channel count, detected format and buffer origin.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "asset_clip",
			Description: "Clip a rectangle out of an image and report the result's dimensions and corner colors. Coordinates are measured from the bottom-left corner with y growing upward. Pass region instead to clip a named part of the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge (0-based, from bottom)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width of the rectangle in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height of the rectangle in pixels",
					},
					"region": map[string]interface{}{
						"type":        "string",
						"enum":        regionNames,
						"description": "Named region to clip; overrides x, y, width and height",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "asset_resize",
			Description: "Resize an image with nearest-neighbor sampling and report the result's dimensions and top-left pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels",
					},
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "asset_sample_pixel",
			Description: "Get the raw channel values of one pixel along with its hex and HSL color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "asset_pixels",
			Description: "Return the decoded pixel buffer as base64, optionally clipped and resized first. The data is raw packed samples, row 0 at the top, not an encoded image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"clip": map[string]interface{}{
						"type":        "object",
						"description": "Optional rectangle {x, y, width, height} in bottom-left coordinates",
					},
					"region": map[string]interface{}{
						"type":        "string",
						"enum":        regionNames,
						"description": "Optional named region to clip; overrides clip",
					},
					"resize": map[string]interface{}{
						"type":        "object",
						"description": "Optional target size {width, height}, applied after clipping",
					},
				},
				"required": []string{"path"},
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
