package server

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-asset/internal/pixbuf"
)

// RGBAColor represents an RGBA color with 8-bit components.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult describes the color of one pixel in several representations.
// Samples holds the raw channel values as stored in the buffer.
type ColorResult struct {
	Samples []int     `json:"samples"`
	Hex     string    `json:"hex"`
	RGBA    RGBAColor `json:"rgba"`
	HSL     HSLColor  `json:"hsl"`
}

// describeColor interprets packed samples of any channel count and converts
// them with go-colorful. Hex excludes alpha.
func describeColor(samples []byte) ColorResult {
	c := pixbuf.Color(samples)

	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, l := cf.Hsl()

	raw := make([]int, len(samples))
	for i, v := range samples {
		raw[i] = int(v)
	}

	return ColorResult{
		Samples: raw,
		Hex:     cf.Hex(),
		RGBA:    RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}
