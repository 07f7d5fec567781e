package pixbuf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"runtime"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// NativeChannels returns the channel count an image carries in its source
// encoding: 1 for gray, 4 when the model has alpha, 3 otherwise.
func NativeChannels(img image.Image) int {
	switch src := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return 4
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range src.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}

	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// AdoptImage returns the image's own pixel slice as a decoder-owned buffer
// when it already matches the packed top-down layout for channels.
func AdoptImage(img image.Image, channels int) (Buffer, bool) {
	var (
		pix    []byte
		stride int
		rect   image.Rectangle
		bpp    int
	)
	switch src := img.(type) {
	case *image.NRGBA:
		pix, stride, rect, bpp = src.Pix, src.Stride, src.Rect, 4
	case *image.Gray:
		pix, stride, rect, bpp = src.Pix, src.Stride, src.Rect, 1
	default:
		return Buffer{}, false
	}

	w, h := rect.Dx(), rect.Dy()
	if bpp != channels || rect.Min != (image.Point{}) || stride != w*bpp || len(pix) < w*h*bpp {
		return Buffer{}, false
	}
	return Adopt(pix[:w*h*bpp]), true
}

// FromImage converts img into a new self-owned packed buffer with the given
// channel count (1, 3 or 4). order is the row order img is stored in; the
// result is always top-down. Row bands are converted in parallel.
func FromImage(img image.Image, channels int, order RowOrder) (Buffer, error) {
	if channels != 1 && channels != 3 && channels != 4 {
		return Buffer{}, fmt.Errorf("unsupported channel count %d", channels)
	}

	src := normalize(img, channels)
	pix, stride, bpp := planes(src)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return Buffer{}, fmt.Errorf("image has no pixels (%dx%d)", w, h)
	}

	rowBytes := w * channels
	dst := Allocate(rowBytes * h)
	rows := NewRowWriter(dst.Bytes(), h, rowBytes, order)

	convertRow := func(y int) {
		srcRow := pix[y*stride : y*stride+w*bpp]
		dstRow := rows.Row(y)
		if bpp == channels {
			copy(dstRow, srcRow)
			return
		}
		// bpp 4 -> 3: drop alpha
		for x, i := 0, 0; x < w; x, i = x+1, i+4 {
			copy(dstRow[x*3:x*3+3], srcRow[i:i+3])
		}
	}

	var g errgroup.Group
	procs := runtime.GOMAXPROCS(0)
	g.SetLimit(procs)
	band := (h + procs - 1) / procs
	for start := 0; start < h; start += band {
		start, end := start, min(start+band, h)
		g.Go(func() error {
			for y := start; y < end; y++ {
				convertRow(y)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		dst.Release()
		return Buffer{}, err
	}

	return dst, nil
}

// normalize returns an image backed by 1- or 4-byte pixels whose first
// channels bytes are the requested samples, with bounds starting at 0,0.
func normalize(img image.Image, channels int) image.Image {
	if img.Bounds().Min == (image.Point{}) {
		switch src := img.(type) {
		case *image.NRGBA:
			return src
		case *image.Gray:
			if channels == 1 {
				return src
			}
		case *image.RGBA:
			// Premultiplied samples equal straight ones when opaque.
			if src.Opaque() {
				return src
			}
		case *image.YCbCr:
			if channels != 1 {
				return clone.AsShallowRGBA(src)
			}
		}
	}

	if channels == 1 {
		b := img.Bounds()
		gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
		return gray
	}

	return imaging.Clone(img)
}

func planes(img image.Image) (pix []byte, stride, bpp int) {
	switch src := img.(type) {
	case *image.NRGBA:
		return src.Pix, src.Stride, 4
	case *image.RGBA:
		return src.Pix, src.Stride, 4
	case *image.Gray:
		return src.Pix, src.Stride, 1
	}
	panic(fmt.Sprintf("pixbuf: unexpected normalized image %T", img))
}

// Pixel returns the samples of pixel (x, y) in a packed top-down buffer.
func Pixel(pix []byte, width, channels, x, y int) []byte {
	off := (y*width + x) * channels
	return pix[off : off+channels]
}

// Color converts packed samples into a color.NRGBA. Gray samples repeat
// across R, G and B; missing alpha is opaque.
func Color(samples []byte) color.NRGBA {
	switch len(samples) {
	case 0:
		return color.NRGBA{}
	case 1:
		return color.NRGBA{R: samples[0], G: samples[0], B: samples[0], A: 0xff}
	case 2:
		return color.NRGBA{R: samples[0], G: samples[0], B: samples[0], A: samples[1]}
	case 3:
		return color.NRGBA{R: samples[0], G: samples[1], B: samples[2], A: 0xff}
	default:
		return color.NRGBA{R: samples[0], G: samples[1], B: samples[2], A: samples[3]}
	}
}
