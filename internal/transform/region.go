package transform

import "fmt"

// Rect is a clip rectangle in bottom-left coordinates, ready for Clip.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FromTopLeft converts a top-left based region (x1, y1 inclusive, x2, y2
// exclusive) of an image with the given height into Clip coordinates.
func FromTopLeft(x1, y1, x2, y2, height int) Rect {
	return Rect{X: x1, Y: height - y2, Width: x2 - x1, Height: y2 - y1}
}

// Region returns the Clip rectangle of a named region of a w x h image.
// Names follow how the image is viewed: "top-left" is the visually
// top-left quarter.
func Region(name string, w, h int) (Rect, error) {
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int

	switch name {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		// Center 50% of the image
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return Rect{}, fmt.Errorf("unknown region: %s", name)
	}

	return FromTopLeft(x1, y1, x2, y2, h), nil
}
