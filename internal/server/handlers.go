package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/image-asset/internal/asset"
	"github.com/ironsheep/image-asset/internal/transform"
)

// maxPixelBytes caps the raw buffer size asset_pixels will return.
const maxPixelBytes = 16 << 20

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "asset_info", "asset_clip").
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
		s.log.WithError(err).WithField("tool", params.Name).Debug("tool failed")
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
// Each handler loads its own asset and unloads it before returning, so no
// image outlives a call.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "asset_info":
		return s.handleAssetInfo(args)
	case "asset_clip":
		return s.handleAssetClip(args)
	case "asset_resize":
		return s.handleAssetResize(args)
	case "asset_sample_pixel":
		return s.handleAssetSamplePixel(args)
	case "asset_pixels":
		return s.handleAssetPixels(args)
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// load decodes the file at path into a new asset. The caller must Unload it.
func (s *Server) load(path string) (*asset.Asset, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	a := asset.New(s.opts...)
	if err := a.LoadFile(path); err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return a, nil
}

// clipRect resolves a named region or an explicit rectangle against a.
func clipRect(a *asset.Asset, region string, rect transform.Rect) (transform.Rect, error) {
	if region == "" {
		return rect, nil
	}
	return transform.Region(region, int(a.Width()), int(a.Height()))
}

func applyClip(a *asset.Asset, r transform.Rect) error {
	if err := a.Clip(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height)); err != nil {
		return fmt.Errorf("clip (%d,%d) %dx%d on %dx%d image: %w",
			r.X, r.Y, r.Width, r.Height, a.Width(), a.Height(), err)
	}
	return nil
}

func samplePixel(a *asset.Asset, x, y int32) (ColorResult, error) {
	p, err := a.Pixel(x, y)
	if err != nil {
		return ColorResult{}, err
	}
	return describeColor(p), nil
}

// === asset_info ===

type assetPathArgs struct {
	Path string `json:"path"`
}

// AssetInfo describes a loaded image.
type AssetInfo struct {
	Path     string `json:"path"`
	Width    int32  `json:"width"`
	Height   int32  `json:"height"`
	Channels int32  `json:"channels"`
	Format   string `json:"format"`
	Origin   string `json:"origin"`
	Bytes    int    `json:"bytes"`
}

func describeAsset(path string, a *asset.Asset) (*AssetInfo, error) {
	format, err := a.Format()
	if err != nil {
		return nil, err
	}
	origin, err := a.Origin()
	if err != nil {
		return nil, err
	}
	w, h, c := a.Width(), a.Height(), a.ChannelCount()
	return &AssetInfo{
		Path:     path,
		Width:    w,
		Height:   h,
		Channels: c,
		Format:   format.String(),
		Origin:   origin.String(),
		Bytes:    int(w) * int(h) * int(c),
	}, nil
}

func (s *Server) handleAssetInfo(args json.RawMessage) (interface{}, error) {
	var p assetPathArgs
	if err := json.Unmarshal(args, &p); err != nil {
		return nil, err
	}
	a, err := s.load(p.Path)
	if err != nil {
		return nil, err
	}
	defer a.Unload()

	return describeAsset(p.Path, a)
}

// === asset_clip ===

type assetClipArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Region string `json:"region"`
}

// ClipResult reports the outcome of a clip.
type ClipResult struct {
	Rect     transform.Rect         `json:"rect"`
	Width    int32                  `json:"width"`
	Height   int32                  `json:"height"`
	Channels int32                  `json:"channels"`
	Corners  map[string]ColorResult `json:"corners"`
}

func (s *Server) handleAssetClip(args json.RawMessage) (interface{}, error) {
	var p assetClipArgs
	if err := json.Unmarshal(args, &p); err != nil {
		return nil, err
	}
	a, err := s.load(p.Path)
	if err != nil {
		return nil, err
	}
	defer a.Unload()

	rect, err := clipRect(a, p.Region, transform.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height})
	if err != nil {
		return nil, err
	}
	if err := applyClip(a, rect); err != nil {
		return nil, err
	}

	w, h := a.Width(), a.Height()
	corners := map[string][2]int32{
		"top-left":     {0, 0},
		"top-right":    {w - 1, 0},
		"bottom-left":  {0, h - 1},
		"bottom-right": {w - 1, h - 1},
	}
	result := &ClipResult{
		Rect:     rect,
		Width:    w,
		Height:   h,
		Channels: a.ChannelCount(),
		Corners:  make(map[string]ColorResult, len(corners)),
	}
	for name, pt := range corners {
		c, err := samplePixel(a, pt[0], pt[1])
		if err != nil {
			return nil, err
		}
		result.Corners[name] = c
	}
	return result, nil
}

// === asset_resize ===

type assetResizeArgs struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ResizeResult reports the outcome of a resize.
type ResizeResult struct {
	Width    int32       `json:"width"`
	Height   int32       `json:"height"`
	Channels int32       `json:"channels"`
	TopLeft  ColorResult `json:"top_left"`
}

func (s *Server) handleAssetResize(args json.RawMessage) (interface{}, error) {
	var p assetResizeArgs
	if err := json.Unmarshal(args, &p); err != nil {
		return nil, err
	}
	a, err := s.load(p.Path)
	if err != nil {
		return nil, err
	}
	defer a.Unload()

	if err := a.Resize(int32(p.Width), int32(p.Height)); err != nil {
		return nil, fmt.Errorf("resize to %dx%d: %w", p.Width, p.Height, err)
	}

	tl, err := samplePixel(a, 0, 0)
	if err != nil {
		return nil, err
	}
	return &ResizeResult{
		Width:    a.Width(),
		Height:   a.Height(),
		Channels: a.ChannelCount(),
		TopLeft:  tl,
	}, nil
}

// === asset_sample_pixel ===

type assetSamplePixelArgs struct {
	Path string `json:"path"`
	X    int32  `json:"x"`
	Y    int32  `json:"y"`
}

// PixelResult is one sampled pixel.
type PixelResult struct {
	X     int32       `json:"x"`
	Y     int32       `json:"y"`
	Color ColorResult `json:"color"`
}

func (s *Server) handleAssetSamplePixel(args json.RawMessage) (interface{}, error) {
	var p assetSamplePixelArgs
	if err := json.Unmarshal(args, &p); err != nil {
		return nil, err
	}
	a, err := s.load(p.Path)
	if err != nil {
		return nil, err
	}
	defer a.Unload()

	c, err := samplePixel(a, p.X, p.Y)
	if err != nil {
		return nil, fmt.Errorf("sample (%d,%d): %w", p.X, p.Y, err)
	}
	return &PixelResult{X: p.X, Y: p.Y, Color: c}, nil
}

// === asset_pixels ===

type resizeTarget struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type assetPixelsArgs struct {
	Path   string          `json:"path"`
	Clip   *transform.Rect `json:"clip"`
	Region string          `json:"region"`
	Resize *resizeTarget   `json:"resize"`
}

// PixelsResult carries a raw packed buffer.
type PixelsResult struct {
	Width    int32  `json:"width"`
	Height   int32  `json:"height"`
	Channels int32  `json:"channels"`
	Encoding string `json:"encoding"`
	Data     string `json:"data"`
}

func (s *Server) handleAssetPixels(args json.RawMessage) (interface{}, error) {
	var p assetPixelsArgs
	if err := json.Unmarshal(args, &p); err != nil {
		return nil, err
	}
	a, err := s.load(p.Path)
	if err != nil {
		return nil, err
	}
	defer a.Unload()

	if p.Clip != nil || p.Region != "" {
		var rect transform.Rect
		if p.Clip != nil {
			rect = *p.Clip
		}
		if rect, err = clipRect(a, p.Region, rect); err != nil {
			return nil, err
		}
		if err := applyClip(a, rect); err != nil {
			return nil, err
		}
	}
	if p.Resize != nil {
		if err := a.Resize(int32(p.Resize.Width), int32(p.Resize.Height)); err != nil {
			return nil, fmt.Errorf("resize to %dx%d: %w", p.Resize.Width, p.Resize.Height, err)
		}
	}

	w, h, c := a.Width(), a.Height(), a.ChannelCount()
	size := int(w) * int(h) * int(c)
	if size > maxPixelBytes {
		return nil, fmt.Errorf("pixel data is %d bytes, limit is %d; clip or resize first", size, maxPixelBytes)
	}

	buf := make([]byte, size)
	if _, err := a.CopyTo(buf); err != nil {
		return nil, err
	}
	return &PixelsResult{
		Width:    w,
		Height:   h,
		Channels: c,
		Encoding: "base64",
		Data:     base64.StdEncoding.EncodeToString(buf),
	}, nil
}
