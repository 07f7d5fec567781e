package transform

import "github.com/ironsheep/image-asset/internal/pixbuf"

// Resize scales src, a width x height buffer with channels samples per
// pixel, to dw x dh using nearest-neighbor sampling. Destination pixel
// (ix, iy) takes source pixel (floor(ix*width/dw), floor(iy*height/dh)).
// Any positive channel count is supported.
func Resize(src []byte, width, height, channels, dw, dh int) (pixbuf.Buffer, error) {
	n, ok := pixbuf.Size(dw, dh, channels)
	if !ok {
		return pixbuf.Buffer{}, ErrInvalidSize
	}

	dst := pixbuf.Allocate(n)
	out := dst.Bytes()

	// Column offsets are the same for every row.
	cols := make([]int, dw)
	for ix := range cols {
		cols[ix] = ix * width / dw * channels
	}

	srcStride := width * channels
	dstStride := dw * channels
	for iy := 0; iy < dh; iy++ {
		srcRow := src[(iy*height/dh)*srcStride:]
		dstRow := out[iy*dstStride : (iy+1)*dstStride]
		for ix, sx := range cols {
			copy(dstRow[ix*channels:(ix+1)*channels], srcRow[sx:sx+channels])
		}
	}

	return dst, nil
}
