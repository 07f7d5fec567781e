// Package transform implements the geometric operations on packed pixel
// buffers: sub-rectangle extraction and nearest-neighbor resizing.
//
// Buffers are always top-down (see package pixbuf). Clip coordinates are
// the exception: they are given from the bottom-left corner with y growing
// upward, and Clip converts them to buffer rows.
package transform

import (
	"errors"

	"github.com/ironsheep/image-asset/internal/pixbuf"
)

var (
	// ErrRangeExceeded is returned when a clip rectangle leaves the image.
	ErrRangeExceeded = errors.New("range exceeds image size")
	// ErrInvalidSize is returned for image dimensions that are non-positive
	// or too large to address.
	ErrInvalidSize = errors.New("invalid image size")
)

// Clip copies the cw x ch rectangle whose bottom-left corner is (x, y) out
// of src, a width x height buffer with channels samples per pixel.
//
// Buffer rows [height-y-ch, height-y) and columns [x, x+cw) are copied. All
// four bounds must lie within the image and the rectangle must not be
// empty; otherwise ErrRangeExceeded is returned and nothing is allocated.
func Clip(src []byte, width, height, channels, x, y, cw, ch int) (pixbuf.Buffer, error) {
	startLine := height - y - ch
	endLine := height - y
	startPixel := x
	endPixel := x + cw

	if cw <= 0 || ch <= 0 ||
		startLine < 0 || startLine > height ||
		endLine < 0 || endLine > height ||
		startPixel < 0 || startPixel > width ||
		endPixel < 0 || endPixel > width {
		return pixbuf.Buffer{}, ErrRangeExceeded
	}

	srcStride := width * channels
	dstStride := cw * channels

	dst := pixbuf.Allocate(dstStride * ch)
	out := dst.Bytes()
	for iy := 0; iy < ch; iy++ {
		off := srcStride*(startLine+iy) + startPixel*channels
		copy(out[dstStride*iy:dstStride*(iy+1)], src[off:off+dstStride])
	}

	return dst, nil
}
