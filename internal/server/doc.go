// Package server implements the MCP (Model Context Protocol) server that
// exposes image assets as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - asset_info: Load an image and report dimensions, channels, format and buffer origin
//   - asset_clip: Clip a rectangle (bottom-left coordinates) or a named region
//   - asset_resize: Nearest-neighbor resize
//   - asset_sample_pixel: Raw channels, hex and HSL of one pixel (top-left coordinates)
//   - asset_pixels: The packed pixel buffer as base64, optionally clipped and resized
//
// # Asset Lifetime
//
// Every tool call loads its own asset and unloads it before responding.
// Nothing is cached between calls; released buffers return to the pixel
// buffer pool.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.Config{AutoOrient: true})
//	if err := srv.Run(); err != nil {
//	    logrus.Fatal(err)
//	}
package server
